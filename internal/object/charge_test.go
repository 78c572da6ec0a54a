package object

import "testing"

func TestCharge_Lifecycle(t *testing.T) {
	const dormant, active = 180, 60
	c := NewCharge(1, 1, Positive, dormant, active)

	for tick := 1; tick < dormant; tick++ {
		activated, expired := c.Update()
		if activated || expired || c.Active {
			t.Fatalf("tick %d: activated=%v expired=%v active=%v, want still dormant", tick, activated, expired, c.Active)
		}
	}

	activated, expired := c.Update()
	if !activated || expired || !c.Active {
		t.Fatalf("tick %d: activated=%v expired=%v, want activation", dormant, activated, expired)
	}
	if c.ActiveTimer != active {
		t.Errorf("ActiveTimer = %d, want %d", c.ActiveTimer, active)
	}

	for tick := dormant + 1; tick < dormant+active; tick++ {
		if _, expired := c.Update(); expired {
			t.Fatalf("tick %d: expired early", tick)
		}
	}

	if _, expired := c.Update(); !expired {
		t.Errorf("tick %d: expired = false, want true", dormant+active)
	}
}

func TestCharge_Remaining(t *testing.T) {
	c := NewCharge(0, 0, Negative, 2, 5)
	if got := c.Remaining(); got != 2 {
		t.Errorf("Remaining() dormant = %d, want 2", got)
	}
	c.Update()
	c.Update()
	if got := c.Remaining(); got != 5 {
		t.Errorf("Remaining() after activation = %d, want 5", got)
	}
}

func TestInteract(t *testing.T) {
	tests := []struct {
		name   string
		enemy  Polarity
		charge Polarity
		want   Reaction
	}{
		{"dipole near positive", Dipole, Positive, Convert},
		{"dipole near negative", Dipole, Negative, Convert},
		{"positive near negative", Positive, Negative, Attract},
		{"negative near positive", Negative, Positive, Attract},
		{"positive near positive", Positive, Positive, Repel},
		{"negative near negative", Negative, Negative, Repel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interact(tt.enemy, tt.charge); got != tt.want {
				t.Errorf("Interact(%v, %v) = %v, want %v", tt.enemy, tt.charge, got, tt.want)
			}
		})
	}
}

func TestPolarityOpposite(t *testing.T) {
	if Positive.Opposite() != Negative || Negative.Opposite() != Positive {
		t.Error("Opposite() does not swap Positive and Negative")
	}
	if Dipole.Opposite() != Dipole {
		t.Error("Dipole.Opposite() changed polarity")
	}
}

func TestShouldRenderBlink(t *testing.T) {
	if !ShouldRenderBlink(0, 10) {
		t.Error("ShouldRenderBlink(0) = false, want true when unprotected")
	}
	visible := 0
	for tick := 1; tick <= 10; tick++ {
		if ShouldRenderBlink(tick, 10) {
			visible++
		}
	}
	if visible != 5 {
		t.Errorf("visible frames per period = %d, want 5", visible)
	}
}
