package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/event"
)

// Synth plays synthesized sound effects on the local speaker.
type Synth struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewSynth initializes the speaker and starts an always-running mixer that
// effects are added to.
func NewSynth(cfg config.AudioConfig) (*Synth, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}

	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Synth{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes in the effect for t. Silent event types are ignored.
func (s *Synth) Play(t event.Type) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	effect := SoundEffect(t, s.rate, s.volume)
	if effect == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(effect)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
