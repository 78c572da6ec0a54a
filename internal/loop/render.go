package loop

import (
	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/draw"
	"github.com/tomz197/electroblast/internal/grid"
	"github.com/tomz197/electroblast/internal/object"
	"github.com/tomz197/electroblast/internal/physics"
)

// Layout constants
const (
	tileWidth      = 2  // Terminal columns per grid cell
	hudRows        = 2  // Rows above the board
	footerRows     = 2  // Rows below the board
	minCanvasWidth = 52 // Room for the menu and HUD text
	blinkPeriod    = 10 // Ticks per blink cycle
	expiryWarning  = 30 // Active charges blink during their last ticks
)

// layout places the board inside the fixed-size canvas.
type layout struct {
	width, height  int // Canvas size
	boardX, boardY int // Canvas position of grid cell 0,0
}

func newLayout(rules config.Rules) layout {
	boardWidth := rules.GridWidth * tileWidth
	width := max(boardWidth, minCanvasWidth)
	return layout{
		width:  width,
		height: hudRows + rules.GridHeight + footerRows,
		boardX: (width - boardWidth) / 2,
		boardY: hudRows,
	}
}

// tile writes a two-column glyph for grid cell x,y.
func (s *session) tile(x, y int, left, right rune, style draw.Style) {
	cx := s.layout.boardX + x*tileWidth
	cy := s.layout.boardY + y
	s.canvas.Set(cx, cy, left, style)
	s.canvas.Set(cx+1, cy, right, style)
}

// drawPlaying draws the HUD, the board and everything on it. Later layers
// overwrite earlier ones: floor, field, power-ups, charges, enemies, player.
func (s *session) drawPlaying() {
	st := s.state
	s.drawHUD()
	if st.Grid == nil {
		return
	}

	field := fieldCells(st.Grid, st.Player.Charges, st.Player.FieldRange())
	for y := 0; y < st.Grid.Height(); y++ {
		for x := 0; x < st.Grid.Width(); x++ {
			switch {
			case !st.Grid.IsOpen(x, y):
				s.tile(x, y, draw.BlockFull, draw.BlockFull, draw.StyleWall)
			case field[grid.Position{X: x, Y: y}]:
				s.tile(x, y, draw.BlockLight, draw.BlockLight, draw.StyleField)
			default:
				s.tile(x, y, draw.Dot, ' ', draw.StyleFloor)
			}
		}
	}

	for _, pu := range st.PowerUps {
		sym := []rune(pu.Kind.Symbol())
		s.tile(pu.X, pu.Y, sym[0], sym[1], draw.StylePowerUp)
	}

	for _, c := range st.Player.Charges {
		s.drawCharge(c)
	}

	for _, e := range st.Enemies {
		style := polarityStyle(e.Polarity)
		if e.Stunned > 0 {
			style = draw.StyleDim
		}
		s.tile(e.X, e.Y, 'E', e.Polarity.Symbol(), style)
	}

	p := st.Player
	if object.ShouldRenderBlink(p.Invincible, blinkPeriod) {
		s.tile(p.X, p.Y, '[', ']', draw.StylePlayer)
	}
}

// drawCharge shows the polarity and the seconds left in the current phase.
// Active charges flash before they expire.
func (s *session) drawCharge(c *object.Charge) {
	remaining := c.Remaining()
	if c.Active && remaining <= expiryWarning && !object.ShouldRenderBlink(remaining, blinkPeriod) {
		return
	}

	style := draw.StyleDormant
	if c.Active {
		style = polarityStyle(c.Polarity)
	}
	s.tile(c.X, c.Y, c.Polarity.Symbol(), secondsDigit(remaining, s.opts.Rules.TickRate), style)
}

// secondsDigit renders a tick count as whole seconds rounded up, capped at 9.
func secondsDigit(ticks, tickRate int) rune {
	if tickRate <= 0 {
		tickRate = config.DefaultTickRate
	}
	secs := (ticks + tickRate - 1) / tickRate
	return rune('0' + min(max(secs, 0), 9))
}

func polarityStyle(p object.Polarity) draw.Style {
	switch p {
	case object.Positive:
		return draw.StylePositive
	case object.Negative:
		return draw.StyleNegative
	default:
		return draw.StyleDipole
	}
}

// fieldCells returns the open cells an enemy standing there would feel an
// active charge from: within radius and with a clear line of sight.
func fieldCells(g *grid.Grid, charges []*object.Charge, radius float64) map[grid.Position]bool {
	cells := make(map[grid.Position]bool)
	r := int(radius)
	for _, c := range charges {
		if !c.Active {
			continue
		}
		for y := c.Y - r; y <= c.Y+r; y++ {
			for x := c.X - r; x <= c.X+r; x++ {
				if !g.IsOpen(x, y) || !physics.WithinRadius(x, y, c.X, c.Y, radius) {
					continue
				}
				if g.LineOfSight(x, y, c.X, c.Y) {
					cells[grid.Position{X: x, Y: y}] = true
				}
			}
		}
	}
	return cells
}
