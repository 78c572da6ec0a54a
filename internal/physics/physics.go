// Package physics provides integer grid geometry for the charge field.
package physics

import "math"

// Distance calculates the Euclidean distance between two grid cells.
func Distance(x1, y1, x2, y2 int) float64 {
	return math.Sqrt(float64(DistanceSquared(x1, y1, x2, y2)))
}

// DistanceSquared calculates the squared distance between two grid cells.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// WithinRadius reports whether a cell lies strictly inside a circle centered on
// another cell. A cell exactly radius away is outside.
func WithinRadius(px, py, cx, cy int, radius float64) bool {
	if radius <= 0 {
		return false
	}
	return float64(DistanceSquared(px, py, cx, cy)) < radius*radius
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// PushVector returns the per-axis unit step that moves (x,y) away from (fromX,fromY).
// An axis with zero delta contributes no push.
func PushVector(x, y, fromX, fromY int) (dx, dy int) {
	return Sign(x - fromX), Sign(y - fromY)
}
