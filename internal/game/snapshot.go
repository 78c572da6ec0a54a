package game

// Snapshot is the read-only view of a session handed to renderers once per tick.
type Snapshot struct {
	Phase  string `json:"phase"`
	Paused bool   `json:"paused"`
	Level  int    `json:"level"`

	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows,omitempty"`

	Player   PlayerView    `json:"player"`
	Enemies  []EnemyView   `json:"enemies"`
	PowerUps []PowerUpView `json:"powerups"`
}

// PlayerView is the renderer's view of the player.
type PlayerView struct {
	X             int          `json:"x"`
	Y             int          `json:"y"`
	Score         int          `json:"score"`
	Lives         int          `json:"lives"`
	Invincible    int          `json:"invincible"`
	FieldStrength float64      `json:"field_strength"`
	FieldRadius   float64      `json:"field_radius"`
	MaxCharges    int          `json:"max_charges"`
	Message       string       `json:"message,omitempty"`
	Charges       []ChargeView `json:"charges"`
}

// ChargeView is one placed charge. Timer counts the ticks left in its phase.
type ChargeView struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Polarity string `json:"polarity"`
	Active   bool   `json:"active"`
	Timer    int    `json:"timer"`
}

// EnemyView is one enemy. Stunned counts the ticks it stays frozen.
type EnemyView struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Polarity string `json:"polarity"`
	Health   int    `json:"health"`
	Stunned  int    `json:"stunned"`
}

// PowerUpView is one uncollected power-up.
type PowerUpView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// Snapshot copies the current session state. The result shares nothing with
// the session and stays valid after further ticks.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.Phase.String(),
		Paused:   s.Paused,
		Level:    s.Level,
		Enemies:  make([]EnemyView, 0, len(s.Enemies)),
		PowerUps: make([]PowerUpView, 0, len(s.PowerUps)),
	}
	if s.Grid != nil {
		snap.Width = s.Grid.Width()
		snap.Height = s.Grid.Height()
		snap.Rows = s.Grid.Rows()
	}

	p := s.Player
	snap.Player = PlayerView{
		X:             p.X,
		Y:             p.Y,
		Score:         p.Score,
		Lives:         p.Lives,
		Invincible:    p.Invincible,
		FieldStrength: p.FieldStrength,
		FieldRadius:   p.FieldRadius,
		MaxCharges:    p.MaxCharges,
		Message:       p.Message,
		Charges:       make([]ChargeView, 0, len(p.Charges)),
	}
	for _, c := range p.Charges {
		snap.Player.Charges = append(snap.Player.Charges, ChargeView{
			X:        c.X,
			Y:        c.Y,
			Polarity: c.Polarity.String(),
			Active:   c.Active,
			Timer:    c.Remaining(),
		})
	}

	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			X:        e.X,
			Y:        e.Y,
			Polarity: e.Polarity.String(),
			Health:   e.Health,
			Stunned:  e.Stunned,
		})
	}
	for _, pu := range s.PowerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{X: pu.X, Y: pu.Y, Kind: pu.Kind.String()})
	}
	return snap
}
