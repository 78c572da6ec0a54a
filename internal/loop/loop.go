// Package loop runs one terminal game session at a fixed tick rate:
// Input → game.Tick → audio → Draw.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/electroblast/internal/audio"
	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/draw"
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/game"
	"github.com/tomz197/electroblast/internal/input"
)

// Options configures a session.
type Options struct {
	Rules        config.Rules
	Seed         int64             // Zero picks a time-based seed
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Audio        audio.Player      // Defaults to audio.Nop
	Logger       *zap.Logger       // Defaults to a no-op logger
	Session      string            // Identifies the session in logs

	// IdleWarn and IdleTimeout disconnect sessions without key presses.
	// Zero disables the check.
	IdleWarn    time.Duration
	IdleTimeout time.Duration
}

// session holds the per-connection presentation state around a game.State.
type session struct {
	opts   Options
	log    *zap.Logger
	state  *game.State
	stream *input.Stream
	canvas *draw.Canvas
	cw     *draw.FrameWriter
	layout layout

	termWidth  int
	termHeight int
	border     bool // Draw the frame border on the next render

	frame     int // Rendered frames, drives menu blinking
	lastInput time.Time
	idle      bool
	started   time.Time
}

// Run plays one session until the player quits, the input stream ends, the
// session idles out or ctx is cancelled. Returns the first terminal write error.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	s := newSession(r, w, opts)
	s.log.Info("session started", zap.Int64("seed", opts.Seed))

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	err := s.run(ctx)

	draw.ClearScreen(w)
	s.log.Info("session ended",
		zap.Int("score", s.state.Player.Score),
		zap.Int("level", s.state.Level),
		zap.Duration("duration", time.Since(s.started)),
	)
	return err
}

func newSession(r *bufio.Reader, w io.Writer, opts Options) *session {
	l := newLayout(opts.Rules)
	now := time.Now()
	return &session{
		opts:      opts,
		log:       opts.Logger.With(zap.String("session", opts.Session)),
		state:     game.New(opts.Rules, rand.New(rand.NewSource(opts.Seed))),
		stream:    input.StartStream(r),
		canvas:    draw.NewCanvas(l.width, l.height),
		cw:        draw.NewFrameWriter(w),
		layout:    l,
		lastInput: now,
		started:   now,
	}
}

func (s *session) run(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.Rules.TickDuration())
	defer ticker.Stop()

	for {
		// ===== INPUT PHASE =====
		frame := input.ReadInput(s.stream)
		if frame.Quit {
			return nil
		}
		if s.checkIdle(len(frame.Intents) > 0) {
			s.log.Info("session idle, disconnecting")
			return nil
		}

		// ===== UPDATE PHASE =====
		s.state.Tick(frame.Intents)
		s.dispatch(s.state.Events.Drain())

		// ===== DRAW PHASE =====
		s.updateScreen()
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// checkIdle tracks key activity. Returns true once the session should be dropped.
func (s *session) checkIdle(active bool) bool {
	if active {
		s.lastInput = time.Now()
		s.idle = false
		return false
	}
	if s.opts.IdleTimeout <= 0 {
		return false
	}
	idleFor := time.Since(s.lastInput)
	if idleFor > s.opts.IdleTimeout {
		return true
	}
	s.idle = s.opts.IdleWarn > 0 && idleFor > s.opts.IdleWarn
	return false
}

// dispatch hands this tick's events to audio and logs the notable ones.
func (s *session) dispatch(events []event.Event) {
	audio.PlayAll(s.opts.Audio, events)

	for _, ev := range events {
		switch ev.Type {
		case event.LevelStarted:
			s.log.Info("level started", zap.Int("level", ev.Value))
		case event.LevelComplete:
			s.log.Info("level complete",
				zap.Int("level", s.state.Level),
				zap.Int("bonus", ev.Value),
				zap.Int("score", s.state.Player.Score),
			)
		case event.GameOver:
			s.log.Info("game over",
				zap.Int("level", s.state.Level),
				zap.Int("score", ev.Value),
			)
		case event.PlayerHit:
			s.log.Debug("player hit", zap.Int("lives", ev.Value))
		}
	}
}

// updateScreen recenters the canvas when the terminal size changes. Any
// change clears the terminal so nothing from the old position lingers.
func (s *session) updateScreen() {
	width, height, err := s.opts.TermSizeFunc()
	if err != nil || (width == s.termWidth && height == s.termHeight) {
		return
	}
	s.termWidth, s.termHeight = width, height

	offCol := max(0, (width-s.layout.width)/2)
	offRow := max(0, (height-s.layout.height)/2)
	s.cw.SetOffset(offCol, offRow)
	s.cw.WriteString(draw.EscClear)
	s.canvas.ForceRedraw()
	s.border = offCol >= 1 && offRow >= 1 && width >= s.layout.width+2 && height >= s.layout.height+2
}

// drawFrame composes the frame for the current phase and flushes the changes.
func (s *session) drawFrame() error {
	s.canvas.Clear()
	s.frame++

	snap := s.state.Snapshot()
	switch s.state.Phase {
	case game.PhaseMenu:
		s.drawMenu()
	case game.PhasePlaying:
		s.drawPlaying()
		if s.state.Paused {
			s.drawPaused()
		}
	case game.PhaseLevelComplete:
		s.drawPlaying()
		s.drawLevelComplete(snap)
	case game.PhaseGameOver:
		s.drawPlaying()
		s.drawGameOver(snap)
	}
	if s.idle {
		s.drawIdleWarning()
	}

	if s.border {
		s.canvas.RenderBorder(s.cw)
		s.border = false
	}
	s.canvas.Render(s.cw)
	return s.cw.Flush()
}
