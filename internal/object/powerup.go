package object

// PowerUpKind is the permanent upgrade a power-up grants.
type PowerUpKind int

const (
	FieldStrength PowerUpKind = iota
	ExtraCharge
	ExtraLife
)

func (k PowerUpKind) String() string {
	switch k {
	case FieldStrength:
		return "field_strength"
	case ExtraCharge:
		return "extra_charge"
	case ExtraLife:
		return "extra_life"
	default:
		return "unknown"
	}
}

// Symbol returns the two-character map label.
func (k PowerUpKind) Symbol() string {
	switch k {
	case FieldStrength:
		return "S+"
	case ExtraCharge:
		return "C+"
	case ExtraLife:
		return "L+"
	default:
		return "??"
	}
}

// PowerUp is a pickup lying on the grid.
type PowerUp struct {
	X, Y   int
	Kind   PowerUpKind
	Active bool
}

// NewPowerUp creates an active power-up.
func NewPowerUp(x, y int, kind PowerUpKind) *PowerUp {
	return &PowerUp{X: x, Y: y, Kind: kind, Active: true}
}

// Collect deactivates the power-up. Returns false if it was already taken.
func (p *PowerUp) Collect() bool {
	if !p.Active {
		return false
	}
	p.Active = false
	return true
}

// MarkDestroyed implements Destructible.
func (p *PowerUp) MarkDestroyed() { p.Active = false }

// IsDestroyed implements Destructible.
func (p *PowerUp) IsDestroyed() bool { return !p.Active }
