// Package grid holds the static per-level occupancy map.
package grid

import (
	"strings"

	"github.com/tomz197/electroblast/internal/physics"
)

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// String returns the single-character map notation of the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "#"
	default:
		return "."
	}
}

// Position is an x,y grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a width x height occupancy map whose outer ring is always Wall.
// Cells are mutated only while a level is generated.
type Grid struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]
}

// New creates a grid of open cells enclosed by a wall ring.
func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for x := 0; x < width; x++ {
		g.cells[x] = Wall
		g.cells[(height-1)*width+x] = Wall
	}
	for y := 0; y < height; y++ {
		g.cells[y*width] = Wall
		g.cells[y*width+width-1] = Wall
	}
	return g
}

// Parse builds a grid from rows of '#' (wall) and any other rune (open).
// The border is forced to Wall regardless of the layout.
func Parse(rows []string) *Grid {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := New(width, height)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.SetWall(x, y)
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x,y). Out-of-bounds cells read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsOpen reports whether (x,y) is in bounds and walkable.
func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// IsBorder reports whether (x,y) lies on the outer ring.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// SetWall turns an in-bounds cell into a wall.
func (g *Grid) SetWall(x, y int) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = Wall
	}
}

// Clear opens an interior cell. Border cells stay Wall.
func (g *Grid) Clear(x, y int) {
	if g.InBounds(x, y) && !g.IsBorder(x, y) {
		g.cells[y*g.width+x] = Open
	}
}

// LineOfSight reports whether no Wall lies on the discrete line from
// (fromX,fromY) to (toX,toY). The starting cell itself is not tested.
func (g *Grid) LineOfSight(fromX, fromY, toX, toY int) bool {
	return physics.WalkLine(fromX, fromY, toX, toY, func(x, y int) bool {
		return g.At(x, y) != Wall
	})
}

// Rows renders the grid one string per row using Cell.String notation.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			b.WriteString(g.At(x, y).String())
		}
		rows[y] = b.String()
	}
	return rows
}

// Equal reports whether two grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
