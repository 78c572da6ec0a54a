package physics

// WalkLine visits every cell on the Bresenham line from (x1,y1) to (x2,y2),
// excluding the start cell and including the end cell. Iteration stops early
// when visit returns false; WalkLine then returns false as well.
func WalkLine(x1, y1, x2, y2 int, visit func(x, y int) bool) bool {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for x1 != x2 || y1 != y2 {
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}

		if !visit(x1, y1) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
