// Package object defines the entities of a round: the player, their charges,
// enemies and power-ups. Entities hold state and rules only; drawing happens
// in the presentation layer.
package object

import (
	"math/rand"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/grid"
)

// Polarity is the electrostatic sign of a charge or enemy.
// Dipole is transitional and only ever held by enemies.
type Polarity int8

const (
	Positive Polarity = iota
	Negative
	Dipole
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Dipole:
		return "dipole"
	default:
		return "unknown"
	}
}

// Symbol returns the one-character glyph for the polarity.
func (p Polarity) Symbol() rune {
	switch p {
	case Positive:
		return '+'
	case Negative:
		return '-'
	case Dipole:
		return '±'
	default:
		return '?'
	}
}

// Opposite returns the opposite pole. Dipole has no opposite and maps to itself.
func (p Polarity) Opposite() Polarity {
	switch p {
	case Positive:
		return Negative
	case Negative:
		return Positive
	default:
		return p
	}
}

// Reaction is what an active charge does to an enemy inside its field.
type Reaction int

const (
	Convert Reaction = iota // Dipole takes the pole opposite the charge
	Attract                 // Opposite poles: the enemy is eliminated
	Repel                   // Like poles: the enemy is pushed away
)

// Interact resolves the reaction of an enemy polarity to a charge polarity.
func Interact(enemy, charge Polarity) Reaction {
	switch {
	case enemy == Dipole:
		return Convert
	case enemy == charge:
		return Repel
	default:
		return Attract
	}
}

// Directions are the four axis-aligned random-walk steps.
var Directions = [4]grid.Position{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// UpdateContext provides everything an enemy needs during its update.
type UpdateContext struct {
	Grid    *grid.Grid
	Charges []*Charge // Player charges in placement order; dormant ones are skipped
	Radius  float64   // Effective field radius in cells
	Rand    *rand.Rand
	Rules   *config.Rules
	Events  *event.Queue
}

// Destructible is implemented by round entities removed by mark-and-sweep.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the end of the tick.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}

// ShouldRenderBlink returns true if an entity with remaining protection ticks
// should be drawn this frame. Always true when nothing remains.
func ShouldRenderBlink(remainingTicks, period int) bool {
	if remainingTicks <= 0 || period <= 0 {
		return true
	}
	return remainingTicks%period >= period/2
}
