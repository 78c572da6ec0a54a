package object

import (
	"fmt"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/grid"
)

// Player is the neutral agent: position, placed charges and progression.
type Player struct {
	X, Y int

	Score      int
	Lives      int
	Invincible int // Ticks of contact immunity remaining

	FieldStrength float64
	FieldRadius   float64 // Base radius in cells, scaled by FieldStrength
	MaxCharges    int
	Charges       []*Charge // Placement order

	Message      string
	MessageTimer int

	rules config.Rules
}

// NewPlayer creates a player with the starting stats of the rules.
func NewPlayer(x, y int, rules config.Rules) *Player {
	return &Player{
		X:             x,
		Y:             y,
		Lives:         rules.StartLives,
		FieldStrength: rules.FieldStrength,
		FieldRadius:   rules.FieldRadius,
		MaxCharges:    rules.StartMaxCharges,
		rules:         rules,
	}
}

// Move steps the player by (dx,dy) if the target cell is open.
// Returns false and leaves the player in place otherwise.
func (p *Player) Move(dx, dy int, g *grid.Grid) bool {
	nx, ny := p.X+dx, p.Y+dy
	if !g.IsOpen(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// PlaceCharge drops a dormant charge on the player's cell.
// Fails when the placed-charge capacity is used up or the polarity is Dipole.
func (p *Player) PlaceCharge(polarity Polarity) bool {
	if polarity == Dipole {
		return false
	}
	if len(p.Charges) >= p.MaxCharges {
		return false
	}
	p.Charges = append(p.Charges, NewCharge(p.X, p.Y, polarity, p.rules.DormantTicks, p.rules.ActiveTicks))
	return true
}

// AvailableCharges returns how many more charges may be placed.
func (p *Player) AvailableCharges() int {
	n := p.MaxCharges - len(p.Charges)
	if n < 0 {
		return 0
	}
	return n
}

// Update runs once per tick: it counts timers down and advances every placed
// charge, dropping those that expire.
func (p *Player) Update(events *event.Queue) {
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.MessageTimer > 0 {
		p.MessageTimer--
		if p.MessageTimer == 0 {
			p.Message = ""
		}
	}

	kept := p.Charges[:0]
	for _, c := range p.Charges {
		activated, expired := c.Update()
		if activated && events != nil {
			events.Push(event.Event{Type: event.ChargeActivated, X: c.X, Y: c.Y})
		}
		if expired {
			if events != nil {
				events.Push(event.Event{Type: event.ChargeExpired, X: c.X, Y: c.Y})
			}
			continue
		}
		kept = append(kept, c)
	}
	clear(p.Charges[len(kept):])
	p.Charges = kept
}

// FieldRange returns the effective field radius in cells.
func (p *Player) FieldRange() float64 {
	return p.FieldRadius * p.FieldStrength
}

// TakeHit applies contact damage unless the player is invincible.
// Returns true if a life was lost.
func (p *Player) TakeHit() bool {
	if p.Invincible > 0 {
		return false
	}
	p.Lives--
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Invincible = p.rules.InvincibleTicks
	return true
}

// Alive reports whether the player has lives left.
func (p *Player) Alive() bool {
	return p.Lives > 0
}

// AddScore adds points. Negative amounts are ignored so the score never drops.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// ShowMessage sets the transient on-screen message.
func (p *Player) ShowMessage(msg string) {
	p.Message = msg
	p.MessageTimer = p.rules.MessageTicks
}

// Apply grants the permanent effect of a power-up and returns its message.
func (p *Player) Apply(kind PowerUpKind) string {
	switch kind {
	case FieldStrength:
		p.FieldStrength += p.rules.StrengthStep
		return fmt.Sprintf("+%.1f Field Strength!", p.rules.StrengthStep)
	case ExtraCharge:
		p.MaxCharges++
		return "+1 Max Charge!"
	case ExtraLife:
		if p.Lives < p.rules.MaxLives {
			p.Lives++
		}
		return "+1 Life!"
	default:
		return ""
	}
}

// StartLevel moves the player to a new level's start cell and clears placed
// charges and timers. Score and upgrades carry over.
func (p *Player) StartLevel(x, y int) {
	p.X, p.Y = x, y
	clear(p.Charges)
	p.Charges = p.Charges[:0]
	p.Invincible = 0
	p.Message = ""
	p.MessageTimer = 0
}
