package game

// Intent is one discrete, edge-triggered player action for a tick.
type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
	MoveUp
	MoveDown
	PlacePositive
	PlaceNegative
	PauseToggle
	Confirm
	Abort
)

var intentNames = [...]string{
	MoveLeft:      "move_left",
	MoveRight:     "move_right",
	MoveUp:        "move_up",
	MoveDown:      "move_down",
	PlacePositive: "place_positive",
	PlaceNegative: "place_negative",
	PauseToggle:   "pause",
	Confirm:       "confirm",
	Abort:         "abort",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// ParseIntent looks up an intent by its wire name.
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return 0, false
}

// direction returns the step of a movement intent.
func (i Intent) direction() (dx, dy int, ok bool) {
	switch i {
	case MoveLeft:
		return -1, 0, true
	case MoveRight:
		return 1, 0, true
	case MoveUp:
		return 0, -1, true
	case MoveDown:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
