package object

import (
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/physics"
)

// Enemy is an autonomous grid walker carrying a polarity.
type Enemy struct {
	X, Y     int
	Polarity Polarity
	Health   int
	Stunned  int // Ticks left during which the enemy is frozen

	moveCounter int // Ticks since the last random-walk attempt
}

// NewEnemy creates an enemy at full health.
func NewEnemy(x, y int, polarity Polarity, health int) *Enemy {
	return &Enemy{X: x, Y: y, Polarity: polarity, Health: health}
}

// Dead reports whether the enemy has run out of health.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// MarkDestroyed implements Destructible.
func (e *Enemy) MarkDestroyed() { e.Health = 0 }

// IsDestroyed implements Destructible.
func (e *Enemy) IsDestroyed() bool { return e.Dead() }

// Update advances the enemy by one tick. Returns true if the enemy died and
// must be swept from the level.
//
// A stunned enemy only counts its stun down. Otherwise it takes a paced random
// step, then reacts to the nearest active charge that reaches it.
func (e *Enemy) Update(ctx UpdateContext) bool {
	if e.Stunned > 0 {
		e.Stunned--
		return false
	}

	e.moveCounter++
	if e.moveCounter >= ctx.Rules.EnemyMoveTicks {
		e.moveCounter = 0
		e.randomStep(ctx)
	}

	if c := e.AffectingCharge(ctx); c != nil {
		e.react(c, ctx)
	}

	return e.Dead()
}

// randomStep tries one uniformly chosen axis step. A blocked step is not retried.
func (e *Enemy) randomStep(ctx UpdateContext) {
	d := Directions[ctx.Rand.Intn(len(Directions))]
	nx, ny := e.X+d.X, e.Y+d.Y
	if ctx.Grid.IsOpen(nx, ny) {
		e.X, e.Y = nx, ny
	}
}

// AffectingCharge returns the active charge whose field reaches the enemy this
// tick, or nil. A charge reaches the enemy when it is within the field radius
// and no wall lies on the line between them. When several qualify the nearest
// wins; equal distances go to the earliest placed.
func (e *Enemy) AffectingCharge(ctx UpdateContext) *Charge {
	var best *Charge
	bestDist := 0

	for _, c := range ctx.Charges {
		if !c.Active {
			continue
		}
		if !physics.WithinRadius(e.X, e.Y, c.X, c.Y, ctx.Radius) {
			continue
		}
		if !ctx.Grid.LineOfSight(e.X, e.Y, c.X, c.Y) {
			continue
		}
		d := physics.DistanceSquared(e.X, e.Y, c.X, c.Y)
		if best == nil || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (e *Enemy) react(c *Charge, ctx UpdateContext) {
	switch Interact(e.Polarity, c.Polarity) {
	case Convert:
		e.Polarity = c.Polarity.Opposite()
		if ctx.Events != nil {
			ctx.Events.Push(event.Event{Type: event.DipoleConverted, X: e.X, Y: e.Y})
		}
	case Attract:
		e.Health = 0
	case Repel:
		e.repel(c, ctx)
	}
}

// repel pushes the enemy one step away from the charge on each axis with a
// non-zero delta. A push into a wall fails; under the wall-push-damage rule it
// also hurts and stuns the enemy.
func (e *Enemy) repel(c *Charge, ctx UpdateContext) {
	dx, dy := physics.PushVector(e.X, e.Y, c.X, c.Y)
	if dx == 0 && dy == 0 {
		return
	}

	nx, ny := e.X+dx, e.Y+dy
	if ctx.Grid.IsOpen(nx, ny) {
		e.X, e.Y = nx, ny
		return
	}

	if ctx.Rules.WallPushDamage {
		e.Health -= ctx.Rules.PushDamageAmount
		e.Stunned = ctx.Rules.PushStunTicks
	}
}

// ScoreValue returns the points awarded for eliminating the enemy in its
// current polarity.
func (e *Enemy) ScoreValue(scoreEnemy, scoreDipole int) int {
	if e.Polarity == Dipole {
		return scoreDipole
	}
	return scoreEnemy
}
