// Package game runs a round: the fixed per-tick update order and the
// top-level Menu/Playing/LevelComplete/GameOver state machine.
package game

import (
	"math/rand"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/grid"
	"github.com/tomz197/electroblast/internal/level"
	"github.com/tomz197/electroblast/internal/object"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu          Phase = iota // Title screen, nothing in play
	PhasePlaying                    // Ticking a level
	PhaseLevelComplete              // Level cleared, waiting for confirm
	PhaseGameOver                   // Lives exhausted, waiting for confirm
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is everything one game session owns. Sessions never share a State.
type State struct {
	Rules  config.Rules
	Phase  Phase
	Paused bool
	Level  int // Current level number, 0 in the menu

	Grid     *grid.Grid
	Player   *object.Player
	Enemies  []*object.Enemy
	PowerUps []*object.PowerUp

	Events event.Queue

	rng *rand.Rand
}

// New creates a session sitting in the menu. All randomness is drawn from rng.
func New(rules config.Rules, rng *rand.Rand) *State {
	s := &State{Rules: rules, rng: rng}
	s.toMenu()
	return s
}

// toMenu discards all progress. The menu holds a fresh player so renderers
// always have one to read.
func (s *State) toMenu() {
	s.Phase = PhaseMenu
	s.Paused = false
	s.Level = 0
	s.Grid = nil
	s.Enemies = nil
	s.PowerUps = nil
	s.Player = object.NewPlayer(0, 0, s.Rules)
}

// startGame begins a new game at level 1.
func (s *State) startGame() {
	s.Player = object.NewPlayer(0, 0, s.Rules)
	s.loadLevel(1)
}

// loadLevel generates level n and puts the player on its start cell. Score
// and upgrades carry over; placed charges do not.
func (s *State) loadLevel(n int) {
	lvl := level.Generate(n, s.Rules, s.rng)
	s.Level = n
	s.Grid = lvl.Grid
	s.Enemies = lvl.Enemies
	s.PowerUps = lvl.PowerUps
	s.Player.StartLevel(lvl.Start.X, lvl.Start.Y)
	s.Phase = PhasePlaying
	s.Paused = false
	s.Events.Push(event.Event{Type: event.LevelStarted, X: lvl.Start.X, Y: lvl.Start.Y, Value: n})
}

// updateContext builds the view of the round an enemy update needs.
func (s *State) updateContext() object.UpdateContext {
	return object.UpdateContext{
		Grid:    s.Grid,
		Charges: s.Player.Charges,
		Radius:  s.Player.FieldRange(),
		Rand:    s.rng,
		Rules:   &s.Rules,
		Events:  &s.Events,
	}
}
