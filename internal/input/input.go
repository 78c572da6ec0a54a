// Package input turns a raw terminal byte stream into per-tick game intents.
package input

import (
	"bufio"

	"github.com/tomz197/electroblast/internal/game"
)

// Frame is the input collected for one tick.
type Frame struct {
	Intents []game.Intent // In key-press order, one per press
	Quit    bool          // Ctrl-C, 'Q' or end of the stream
}

// escapeWait is how many drains a trailing ESC or ESC [ is held back while
// the rest of an arrow key sequence arrives.
const escapeWait = 2

// Stream delivers input bytes via a channel filled by a reader goroutine.
type Stream struct {
	ch     chan byte
	closed bool

	pending []byte // Unfinished escape sequence from earlier drains
	waited  int
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking and
// parses them. Every key press yields exactly one intent; holding a key
// relies on terminal auto-repeat. A sequence split across drains is held back
// until it completes, or until escapeWait drains pass and it counts as a lone ESC.
func ReadInput(s *Stream) Frame {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if n := unfinishedEscape(buf); n > 0 && !s.closed && s.waited < escapeWait {
		s.pending = append([]byte(nil), buf[len(buf)-n:]...)
		s.waited++
		buf = buf[:len(buf)-n]
	} else {
		s.waited = 0
	}

	f := Parse(buf)
	if s.closed {
		f.Quit = true
	}
	return f
}

// Parse maps a chunk of terminal bytes to intents. Arrow keys arrive as
// CSI sequences (ESC [ A..D); a lone ESC toggles pause.
func Parse(buf []byte) Frame {
	var f Frame
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if in, ok := arrow(buf[i+2]); ok {
				f.Intents = append(f.Intents, in)
				i += 2
				continue
			}
		}

		switch b {
		case '\x03', 'Q':
			f.Quit = true
			continue
		}
		if in, ok := key(b); ok {
			f.Intents = append(f.Intents, in)
		}
	}
	return f
}

// unfinishedEscape returns the length of a trailing ESC or ESC [ in buf.
func unfinishedEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

func arrow(code byte) (game.Intent, bool) {
	switch code {
	case 'A':
		return game.MoveUp, true
	case 'B':
		return game.MoveDown, true
	case 'C':
		return game.MoveRight, true
	case 'D':
		return game.MoveLeft, true
	}
	return 0, false
}

// key maps a single byte to an intent.
func key(b byte) (game.Intent, bool) {
	switch b {
	case 'a', 'A', 'h', 'H':
		return game.MoveLeft, true
	case 'd', 'D', 'l', 'L':
		return game.MoveRight, true
	case 'w', 'W', 'k', 'K':
		return game.MoveUp, true
	case 's', 'S', 'j', 'J':
		return game.MoveDown, true
	case 'q', '1', '+':
		return game.PlacePositive, true
	case 'e', 'E', '2', '-':
		return game.PlaceNegative, true
	case '\x1b', 'p', 'P':
		return game.PauseToggle, true
	case '\n', '\r', ' ':
		return game.Confirm, true
	case 'm', 'M', '\b', '\x7f':
		return game.Abort, true
	}
	return 0, false
}
