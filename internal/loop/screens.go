package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/electroblast/internal/draw"
	"github.com/tomz197/electroblast/internal/game"
)

var title = []string{
	"E L E C T R O B L A S T",
	"charge the field, blast the swarm",
}

var controls = []string{
	"Move        WASD / HJKL / Arrows",
	"Charge      Q or 1 = (+)   E or 2 = (-)",
	"Pause       ESC or P",
	"Menu        M        Quit   Shift+Q / Ctrl+C",
}

var legend = []string{
	"Opposite charges destroy, like charges repel",
	"E± dipoles flip to the other pole of a charge",
}

// drawHUD draws the two status rows above the board and the message line.
func (s *session) drawHUD() {
	p := s.state.Player
	w := s.canvas.Width()

	s.canvas.Text(0, 0, fmt.Sprintf("Level %d", s.state.Level), draw.StyleTitle)
	score := fmt.Sprintf("Score %07d", p.Score)
	s.canvas.Text(w-len(score), 0, score, draw.StyleDefault)

	lives := "Lives " + strings.Repeat("♥", p.Lives)
	s.canvas.Text(0, 1, lives, draw.StyleAlert)
	charges := fmt.Sprintf("Charges %d/%d  Field x%.1f r%.1f",
		p.AvailableCharges(), p.MaxCharges, p.FieldStrength, p.FieldRange())
	s.canvas.TextCentered(1, charges, draw.StyleDefault)
	enemies := fmt.Sprintf("Enemies %d", len(s.state.Enemies))
	s.canvas.Text(w-len(enemies), 1, enemies, draw.StyleDefault)

	footer := s.layout.boardY + s.opts.Rules.GridHeight
	if p.Message != "" {
		s.canvas.TextCentered(footer, p.Message, draw.StylePowerUp)
	}
	s.canvas.TextCentered(footer+1, "ESC pause  M menu  Shift+Q quit", draw.StyleDim)
}

// drawMenu draws the title screen.
func (s *session) drawMenu() {
	y := max(0, (s.canvas.Height()-len(controls)-len(legend)-6)/2)

	s.canvas.TextCentered(y, title[0], draw.StyleTitle)
	s.canvas.TextCentered(y+1, title[1], draw.StyleDim)
	y += 3

	for i, line := range controls {
		s.canvas.TextCentered(y+i, fmt.Sprintf("%-44s", line), draw.StyleDefault)
	}
	y += len(controls) + 1

	for i, line := range legend {
		s.canvas.TextCentered(y+i, line, draw.StyleDim)
	}
	y += len(legend) + 1

	// Blink the prompt twice a second
	if (s.frame/(s.opts.Rules.TickRate/2+1))%2 == 0 {
		s.canvas.TextCentered(y, "Press ENTER to start", draw.StylePowerUp)
	}
}

// overlay draws a boxed block of centered lines over the middle of the board.
func (s *session) overlay(style draw.Style, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4

	top := s.layout.boardY + (s.opts.Rules.GridHeight-len(lines)-2)/2
	blank := strings.Repeat(" ", width)
	s.canvas.TextCentered(top, blank, style)
	for i, l := range lines {
		s.canvas.TextCentered(top+1+i, blank, style)
		s.canvas.TextCentered(top+1+i, l, style)
	}
	s.canvas.TextCentered(top+1+len(lines), blank, style)
}

func (s *session) drawPaused() {
	s.overlay(draw.StyleTitle, "PAUSED", "ESC to resume, M for menu")
}

func (s *session) drawLevelComplete(snap game.Snapshot) {
	s.overlay(draw.StylePowerUp,
		fmt.Sprintf("LEVEL %d COMPLETE!", snap.Level),
		fmt.Sprintf("Score %d", snap.Player.Score),
		"ENTER for the next level",
	)
}

func (s *session) drawGameOver(snap game.Snapshot) {
	s.overlay(draw.StyleAlert,
		"GAME OVER",
		fmt.Sprintf("Final score %d on level %d", snap.Player.Score, snap.Level),
		"ENTER for the menu",
	)
}

func (s *session) drawIdleWarning() {
	s.overlay(draw.StyleAlert, "Still there?", "Press any key or you will be disconnected")
}
