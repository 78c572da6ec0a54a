package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/electroblast/internal/game"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     []game.Intent
		wantQuit bool
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []game.Intent{game.MoveUp, game.MoveDown, game.MoveRight, game.MoveLeft}, false},
		{"wasd", "wasd", []game.Intent{game.MoveUp, game.MoveLeft, game.MoveDown, game.MoveRight}, false},
		{"hjkl", "hjkl", []game.Intent{game.MoveLeft, game.MoveDown, game.MoveUp, game.MoveRight}, false},
		{"place positive", "q1+", []game.Intent{game.PlacePositive, game.PlacePositive, game.PlacePositive}, false},
		{"place negative", "e2-", []game.Intent{game.PlaceNegative, game.PlaceNegative, game.PlaceNegative}, false},
		{"lone escape pauses", "\x1b", []game.Intent{game.PauseToggle}, false},
		{"p pauses", "p", []game.Intent{game.PauseToggle}, false},
		{"confirm", "\r \n", []game.Intent{game.Confirm, game.Confirm, game.Confirm}, false},
		{"abort", "m\x7f", []game.Intent{game.Abort, game.Abort}, false},
		{"ctrl-c quits", "a\x03", []game.Intent{game.MoveLeft}, true},
		{"capital Q quits", "Q", nil, true},
		{"unmapped bytes", "xyz9", nil, false},
		{"repeated press", "ddd", []game.Intent{game.MoveRight, game.MoveRight, game.MoveRight}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.in))
			if got.Quit != tt.wantQuit {
				t.Errorf("Quit = %v, want %v", got.Quit, tt.wantQuit)
			}
			if len(got.Intents) != len(tt.want) {
				t.Fatalf("Intents = %v, want %v", got.Intents, tt.want)
			}
			for i := range tt.want {
				if got.Intents[i] != tt.want[i] {
					t.Errorf("Intents[%d] = %v, want %v", i, got.Intents[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadInput_ClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.After(time.Second)
	var intents []game.Intent
	for {
		f := ReadInput(s)
		intents = append(intents, f.Intents...)
		if f.Quit {
			break
		}
		select {
		case <-deadline:
			t.Fatal("stream never reported end of input")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if len(intents) != 1 || intents[0] != game.MoveRight {
		t.Errorf("intents = %v, want [move_right]", intents)
	}
	if f := ReadInput(s); !f.Quit {
		t.Error("ReadInput() after close: Quit = false, want true")
	}
}

// feed returns a stream that reads only what the test pushes.
func feed() *Stream {
	return &Stream{ch: make(chan byte, 16)}
}

func (s *Stream) push(data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInput_SplitEscapeSequence(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []game.Intent
	}{
		{"ESC then [A", []string{"\x1b", "[A"}, []game.Intent{game.MoveUp}},
		{"ESC [ then D", []string{"\x1b[", "D"}, []game.Intent{game.MoveLeft}},
		{"key then split arrow", []string{"w\x1b", "[C"}, []game.Intent{game.MoveUp, game.MoveRight}},
		{"ESC then a key", []string{"\x1b", "d"}, []game.Intent{game.PauseToggle, game.MoveRight}},
		{"ESC then nothing", []string{"\x1b", "", "", ""}, []game.Intent{game.PauseToggle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := feed()
			var got []game.Intent
			for _, chunk := range tt.chunks {
				s.push(chunk)
				got = append(got, ReadInput(s).Intents...)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("intents = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("intents[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadInput_PendingEscapeFlushedOnClose(t *testing.T) {
	s := feed()
	s.push("\x1b")
	if f := ReadInput(s); len(f.Intents) != 0 {
		t.Fatalf("intents = %v, want ESC held back", f.Intents)
	}

	close(s.ch)
	f := ReadInput(s)
	if !f.Quit {
		t.Error("Quit = false, want true")
	}
	if len(f.Intents) != 1 || f.Intents[0] != game.PauseToggle {
		t.Errorf("intents = %v, want [pause]", f.Intents)
	}
}
