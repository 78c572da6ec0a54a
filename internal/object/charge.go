package object

// Charge is a player-placed field source. It waits dormant, then projects its
// field for a fixed number of ticks and expires.
type Charge struct {
	X, Y     int
	Polarity Polarity

	Active      bool
	Timer       int // Dormant ticks remaining
	ActiveTimer int // Active ticks remaining, set on activation

	activeTicks int
}

// NewCharge creates a dormant charge.
func NewCharge(x, y int, polarity Polarity, dormantTicks, activeTicks int) *Charge {
	return &Charge{
		X:           x,
		Y:           y,
		Polarity:    polarity,
		Timer:       dormantTicks,
		activeTicks: activeTicks,
	}
}

// Update advances the charge by one tick. activated is true on the tick the
// dormant countdown runs out; expired is true on the tick the active
// countdown runs out and the charge must be discarded.
func (c *Charge) Update() (activated, expired bool) {
	if !c.Active {
		c.Timer--
		if c.Timer <= 0 {
			c.Timer = 0
			c.Active = true
			c.ActiveTimer = c.activeTicks
			return true, false
		}
		return false, false
	}

	c.ActiveTimer--
	if c.ActiveTimer <= 0 {
		c.ActiveTimer = 0
		return false, true
	}
	return false, false
}

// Remaining returns the ticks left in the current phase.
func (c *Charge) Remaining() int {
	if c.Active {
		return c.ActiveTimer
	}
	return c.Timer
}
