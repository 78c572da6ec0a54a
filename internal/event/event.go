// Package event carries discrete simulation events out of the tick so that
// collaborators (audio, logging, transports) react without the core doing I/O.
package event

// Type identifies an event.
type Type int

const (
	ChargeActivated Type = iota
	ChargeExpired
	EnemyKilled
	DipoleConverted
	PlayerHit
	PowerUpCollected
	LevelStarted
	LevelComplete
	GameOver
)

var typeNames = [...]string{
	ChargeActivated:  "charge_activated",
	ChargeExpired:    "charge_expired",
	EnemyKilled:      "enemy_killed",
	DipoleConverted:  "dipole_converted",
	PlayerHit:        "player_hit",
	PowerUpCollected: "powerup_collected",
	LevelStarted:     "level_started",
	LevelComplete:    "level_complete",
	GameOver:         "game_over",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Event is one occurrence. X/Y locate it on the grid where meaningful;
// Value carries the score awarded or the level number.
type Event struct {
	Type  Type `json:"type"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Value int  `json:"value,omitempty"`
}

// Queue collects the events of one or more ticks until drained.
// Not safe for concurrent use; the owning loop is the only producer and consumer.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns pending events in FIFO order and empties the queue.
// Each event is returned by exactly one Drain call.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Reset discards pending events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
