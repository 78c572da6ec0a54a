package draw

import (
	"io"
	"strings"
)

// Terminal control sequences.
const (
	EscClear      = "\033[H\033[2J"
	EscHideCursor = "\033[?25l"
	EscShowCursor = "\033[?25h"
)

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) { io.WriteString(w, EscClear) }

func HideCursor(w io.Writer) { io.WriteString(w, EscHideCursor) }

func ShowCursor(w io.Writer) { io.WriteString(w, EscShowCursor) }

// Cell is one terminal character cell.
type Cell struct {
	Ch    rune
	Style Style
}

var blank = Cell{Ch: ' ', Style: StyleDefault}

// Canvas is a frame buffer of terminal cells. Render only emits the cells
// that changed since the previous frame, so the screen is never cleared
// between frames.
type Canvas struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]
	prev   []Cell // Cells as last written to the terminal
	force  bool   // Redraw every cell on the next Render
}

// NewCanvas creates a blank canvas of the given size in terminal cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the canvas if the size changed. A resized canvas is
// fully redrawn on the next Render.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]Cell, width*height)
	c.prev = make([]Cell, width*height)
	c.Clear()
	c.force = true
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.force = true
}

// Clear blanks every cell of the current frame.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// Set writes a character at 0-based canvas coordinates. Out of range writes
// are dropped.
func (c *Canvas) Set(x, y int, ch rune, style Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Ch: ch, Style: style}
}

// At returns the cell at x,y of the current frame.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y*c.width+x]
}

// Text writes s starting at x,y, one rune per column, and returns the column
// after the last rune.
func (c *Canvas) Text(x, y int, s string, style Style) int {
	for _, r := range s {
		c.Set(x, y, r, style)
		x++
	}
	return x
}

// TextCentered writes s horizontally centered on row y.
func (c *Canvas) TextCentered(y int, s string, style Style) {
	n := len([]rune(s))
	c.Text((c.width-n)/2, y, s, style)
}

// Render writes the changed cells to cw. Cursor moves and style changes are
// only emitted when the next changed cell needs them. Call cw.Flush after.
func (c *Canvas) Render(cw *FrameWriter) {
	lastX, lastY := -1, -1
	lastStyle := Style(255)

	for y := 0; y < c.height; y++ {
		row := y * c.width
		for x := 0; x < c.width; x++ {
			i := row + x
			cell := c.cells[i]
			if !c.force && cell == c.prev[i] {
				continue
			}
			if x != lastX+1 || y != lastY {
				cw.MoveCursor(x+1, y+1)
			}
			if cell.Style != lastStyle {
				cw.WriteString(cell.Style.Code())
				lastStyle = cell.Style
			}
			cw.WriteRune(cell.Ch)
			lastX, lastY = x, y
		}
	}

	if lastStyle != Style(255) {
		cw.WriteString(StyleDefault.Code())
	}
	copy(c.prev, c.cells)
	c.force = false
}

// RenderBorder draws a box one cell outside the canvas. It needs the writer
// offset to leave at least one free row and column around the canvas.
func (c *Canvas) RenderBorder(cw *FrameWriter) {
	horizontal := strings.Repeat("─", c.width)
	cw.WriteString(StyleDim.Code())
	cw.WriteAt(0, 0, "┌"+horizontal+"┐")
	for row := 1; row <= c.height; row++ {
		cw.WriteAt(0, row, "│")
		cw.WriteAt(c.width+1, row, "│")
	}
	cw.WriteAt(0, c.height+1, "└"+horizontal+"┘")
	cw.WriteString(StyleDefault.Code())
}
