package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/electroblast/internal/event"
)

// Wave is the shape of a note.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// Note timings
const (
	chargeDuration = 180 * time.Millisecond
	killDuration   = 120 * time.Millisecond
	hitDuration    = 250 * time.Millisecond
	noteDuration   = 110 * time.Millisecond
	fadeIn         = 5 * time.Millisecond
	fadeOut        = 60 * time.Millisecond
)

// source returns an endless stream of w at freq.
func source(w Wave, freq float64, rate beep.SampleRate) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch w {
	case Sine:
		s, err = generators.SineTone(rate, freq)
	case Square:
		s, err = generators.SquareTone(rate, freq)
	case Saw:
		s, err = generators.SawtoothTone(rate, freq)
	case Noise:
		return noise()
	default:
		return silence()
	}
	if err != nil {
		// freq at or above half the sample rate
		return silence()
	}
	return s
}

func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func silence() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		return len(samples), true
	})
}

// glide is a sine whose pitch slides linearly from one frequency to another over d.
func glide(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		i := 0
		for ; i < len(samples) && pos < total; i++ {
			v := math.Sin(2 * math.Pi * phase)
			samples[i] = [2]float64{v, v}

			freq := from + (to-from)*float64(pos)/float64(total)
			phase = math.Mod(phase+freq/float64(rate), 1)
			pos++
		}
		return i, i > 0
	})
}

// shape cuts s to d, ramping the level up over fadeIn and down over the last fadeOut.
func shape(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	up, down := rate.N(fadeIn), rate.N(fadeOut)
	clipped := beep.Take(total, s)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := clipped.Stream(samples)
		for i := 0; i < n; i++ {
			g := level(pos, total, up, down)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// level is the gain at sample pos of a note lasting total samples.
func level(pos, total, up, down int) float64 {
	g := 1.0
	if up > 0 && pos < up {
		g = float64(pos) / float64(up)
	}
	if left := total - pos; down > 0 && left < down {
		g = math.Min(g, float64(left)/float64(down))
	}
	return g
}

func tone(w Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return shape(source(w, freq, rate), d, rate)
}

// arpeggio plays one short note per frequency.
func arpeggio(rate beep.SampleRate, w Wave, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(w, f, noteDuration, rate)
	}
	return beep.Seq(notes...)
}

// newVolume scales s by vol in [0, 1]. effects.Volume works in powers of
// Base, so zero maps to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SoundEffect returns the streamer for an event, or nil for silent events.
func SoundEffect(t event.Type, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch t {
	case event.ChargeActivated:
		s = shape(glide(220, 880, chargeDuration, rate), chargeDuration, rate)
	case event.ChargeExpired:
		s = newVolume(tone(Sine, 330, killDuration, rate), 0.4)
	case event.EnemyKilled:
		s = beep.Mix(
			newVolume(tone(Noise, 0, killDuration, rate), 0.6),
			newVolume(tone(Square, 110, killDuration, rate), 0.4),
		)
	case event.DipoleConverted:
		s = arpeggio(rate, Sine, 660, 440)
	case event.PlayerHit:
		s = tone(Saw, 90, hitDuration, rate)
	case event.PowerUpCollected:
		s = arpeggio(rate, Square, 987.77, 1318.51)
	case event.LevelStarted:
		s = arpeggio(rate, Sine, 523.25, 659.25)
	case event.LevelComplete:
		s = arpeggio(rate, Square, 523.25, 659.25, 783.99, 1046.50)
	case event.GameOver:
		s = arpeggio(rate, Saw, 392, 311.13, 261.63)
	default:
		return nil
	}
	return newVolume(s, volume)
}
