// Package audio turns simulation events into sound. The simulation only
// queues events; a Player drains them after each tick, fire and forget.
package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/tomz197/electroblast/internal/event"
)

// Player plays the sound for an event type. Implementations must not block
// the game loop.
type Player interface {
	Play(t event.Type)
}

// PlayAll plays every drained event in order.
func PlayAll(p Player, events []event.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		p.Play(ev.Type)
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Play(event.Type) {}

// Bell rings the terminal bell for the events worth a beep. Used for SSH
// sessions, where the server has no speaker to play to.
type Bell struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for charge activations, hits and level ends. After a failed
// write the bell stays silent; Err returns the failure.
func (b *Bell) Play(t event.Type) {
	switch t {
	case event.ChargeActivated, event.PlayerHit, event.LevelComplete, event.GameOver:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.err = fmt.Errorf("ring bell: %w", err)
	}
}

// Err returns the first write error, if any.
func (b *Bell) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
