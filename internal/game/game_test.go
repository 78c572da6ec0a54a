package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/grid"
	"github.com/tomz197/electroblast/internal/object"
)

var corridor = []string{
	"#######",
	"#.....#",
	"#.....#",
	"#######",
}

// playing builds a session already in a level laid out by rows.
func playing(rules config.Rules, rows []string, px, py int, enemies ...*object.Enemy) *State {
	s := New(rules, rand.New(rand.NewSource(1)))
	s.Phase = PhasePlaying
	s.Level = 1
	s.Grid = grid.Parse(rows)
	s.Player = object.NewPlayer(px, py, rules)
	s.Enemies = enemies
	return s
}

// frozen returns an enemy that stays put for the whole test.
func frozen(x, y int, p object.Polarity) *object.Enemy {
	e := object.NewEnemy(x, y, p, 100)
	e.Stunned = 1 << 20
	return e
}

func eventTypes(events []event.Event) map[event.Type]int {
	m := make(map[event.Type]int)
	for _, ev := range events {
		m[ev.Type]++
	}
	return m
}

func TestTick_KillThenClearScores600(t *testing.T) {
	rules := config.DefaultRules()
	rules.DormantTicks = 1
	s := playing(rules, corridor, 1, 1, object.NewEnemy(2, 1, object.Positive, 100))

	s.Tick([]Intent{PlaceNegative})

	if len(s.Enemies) != 0 {
		t.Fatalf("enemies = %d, want 0 after opposite exposure", len(s.Enemies))
	}
	if s.Player.Score != 600 {
		t.Errorf("Score = %d, want 100 + 500*1 = 600", s.Player.Score)
	}
	if s.Phase != PhaseLevelComplete {
		t.Errorf("Phase = %v, want level_complete", s.Phase)
	}

	got := eventTypes(s.Events.Drain())
	for _, want := range []event.Type{event.ChargeActivated, event.EnemyKilled, event.LevelComplete} {
		if got[want] != 1 {
			t.Errorf("%v events = %d, want 1", want, got[want])
		}
	}
}

func TestTick_DipoleKillScore(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 2, object.NewEnemy(5, 1, object.Dipole, 100), frozen(1, 2, object.Negative))
	s.Player.Invincible = 1 << 20
	s.Player.Charges = []*object.Charge{activeCharge(4, 1, object.Positive)}

	// The dipole converts to negative first, so it no longer scores as a dipole.
	s.Tick(nil)
	if s.Enemies[0].Polarity != object.Negative {
		t.Fatalf("Polarity = %v, want negative after conversion", s.Enemies[0].Polarity)
	}
	s.Tick(nil)
	if len(s.Enemies) != 1 {
		t.Fatalf("enemies = %d, want converted dipole killed", len(s.Enemies))
	}
	if s.Player.Score != rules.ScoreEnemy {
		t.Errorf("Score = %d, want %d for a converted dipole", s.Player.Score, rules.ScoreEnemy)
	}
}

func activeCharge(x, y int, p object.Polarity) *object.Charge {
	c := object.NewCharge(x, y, p, 1, 1<<20)
	c.Update()
	return c
}

func TestTick_ContactInvincibility(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 2, 1, frozen(2, 1, object.Positive))

	s.Tick(nil)
	if s.Player.Lives != rules.StartLives-1 {
		t.Fatalf("Lives = %d, want %d after contact", s.Player.Lives, rules.StartLives-1)
	}
	if s.Player.Invincible != rules.InvincibleTicks {
		t.Errorf("Invincible = %d, want %d", s.Player.Invincible, rules.InvincibleTicks)
	}

	for i := 1; i < rules.InvincibleTicks; i++ {
		s.Tick(nil)
		if s.Player.Lives != rules.StartLives-1 {
			t.Fatalf("tick %d of invincibility: Lives = %d", i, s.Player.Lives)
		}
	}

	s.Tick(nil)
	if s.Player.Lives != rules.StartLives-2 {
		t.Errorf("Lives = %d after invincibility ran out, want %d", s.Player.Lives, rules.StartLives-2)
	}
}

func TestTick_GameOverEndsTick(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 2, 1, frozen(2, 1, object.Negative))
	s.Player.Lives = 1
	s.PowerUps = []*object.PowerUp{object.NewPowerUp(2, 1, object.ExtraLife)}

	s.Tick(nil)

	if s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, want game_over", s.Phase)
	}
	if len(s.PowerUps) != 1 || !s.PowerUps[0].Active || s.Player.Score != 0 {
		t.Errorf("power-up step ran after game over: powerups=%d score=%d", len(s.PowerUps), s.Player.Score)
	}
	if got := eventTypes(s.Events.Drain()); got[event.GameOver] != 1 {
		t.Errorf("GameOver events = %d, want 1", got[event.GameOver])
	}

	s.Tick(nil)
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %v without confirm, want game_over", s.Phase)
	}

	s.Tick([]Intent{Confirm})
	if s.Phase != PhaseMenu {
		t.Fatalf("Phase = %v after confirm, want menu", s.Phase)
	}
	if s.Player.Score != 0 || s.Player.Lives != rules.StartLives || s.Level != 0 {
		t.Errorf("progress kept after game over: score=%d lives=%d level=%d", s.Player.Score, s.Player.Lives, s.Level)
	}
}

func TestTick_PowerUpPickup(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 1, frozen(5, 2, object.Positive))
	s.PowerUps = []*object.PowerUp{
		object.NewPowerUp(2, 1, object.ExtraCharge),
		object.NewPowerUp(4, 2, object.FieldStrength),
	}

	s.Tick([]Intent{MoveRight})

	if s.Player.MaxCharges != rules.StartMaxCharges+1 {
		t.Errorf("MaxCharges = %d, want %d", s.Player.MaxCharges, rules.StartMaxCharges+1)
	}
	if s.Player.Score != rules.ScorePowerUp {
		t.Errorf("Score = %d, want %d", s.Player.Score, rules.ScorePowerUp)
	}
	if s.Player.Message != "+1 Max Charge!" {
		t.Errorf("Message = %q, want %q", s.Player.Message, "+1 Max Charge!")
	}
	if len(s.PowerUps) != 1 || s.PowerUps[0].Kind != object.FieldStrength {
		t.Errorf("PowerUps = %+v, want only the untouched one left", s.PowerUps)
	}
}

func TestTick_RejectedActionsAreNoOps(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 1, frozen(5, 2, object.Positive))

	s.Tick([]Intent{MoveUp, MoveLeft, PlacePositive, PlaceNegative})

	if s.Player.X != 1 || s.Player.Y != 1 {
		t.Errorf("position = (%d,%d), want (1,1)", s.Player.X, s.Player.Y)
	}
	if len(s.Player.Charges) != 1 || s.Player.Charges[0].Polarity != object.Positive {
		t.Errorf("Charges = %+v, want only the first placement", s.Player.Charges)
	}
}

func TestTick_MenuStartsLevelOne(t *testing.T) {
	s := New(config.DefaultRules(), rand.New(rand.NewSource(5)))

	s.Tick([]Intent{MoveRight, PlacePositive})
	if s.Phase != PhaseMenu {
		t.Fatalf("Phase = %v, want menu until confirm", s.Phase)
	}

	s.Tick([]Intent{Confirm})
	if s.Phase != PhasePlaying || s.Level != 1 || s.Grid == nil {
		t.Fatalf("after confirm: phase=%v level=%d grid=%v", s.Phase, s.Level, s.Grid != nil)
	}
	if !s.Grid.IsOpen(s.Player.X, s.Player.Y) {
		t.Errorf("player starts on a wall at (%d,%d)", s.Player.X, s.Player.Y)
	}
	if got := eventTypes(s.Events.Drain()); got[event.LevelStarted] != 1 {
		t.Errorf("LevelStarted events = %d, want 1", got[event.LevelStarted])
	}
}

func TestTick_NextLevelKeepsProgress(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 1)
	s.Player.Score = 1234
	s.Player.Apply(object.ExtraCharge)
	s.Player.Apply(object.FieldStrength)
	s.Player.PlaceCharge(object.Positive)

	s.Tick(nil) // no enemies left
	if s.Phase != PhaseLevelComplete {
		t.Fatalf("Phase = %v, want level_complete", s.Phase)
	}
	score := s.Player.Score

	s.Tick([]Intent{Confirm})
	if s.Phase != PhasePlaying || s.Level != 2 {
		t.Fatalf("phase=%v level=%d, want playing level 2", s.Phase, s.Level)
	}
	if s.Player.Score != score {
		t.Errorf("Score = %d, want %d kept", s.Player.Score, score)
	}
	if s.Player.MaxCharges != rules.StartMaxCharges+1 || s.Player.FieldStrength != rules.FieldStrength+rules.StrengthStep {
		t.Errorf("upgrades lost: maxCharges=%d strength=%v", s.Player.MaxCharges, s.Player.FieldStrength)
	}
	if len(s.Player.Charges) != 0 {
		t.Errorf("Charges = %d, want cleared on new level", len(s.Player.Charges))
	}
	if s.Grid.Width() != rules.GridWidth || s.Grid.Height() != rules.GridHeight {
		t.Errorf("grid = %dx%d, want generated %dx%d", s.Grid.Width(), s.Grid.Height(), rules.GridWidth, rules.GridHeight)
	}
}

func TestTick_PauseFreezesSimulation(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 1, frozen(5, 2, object.Positive))
	s.Player.PlaceCharge(object.Positive)
	timer := s.Player.Charges[0].Timer

	s.Tick([]Intent{PauseToggle})
	if !s.Paused {
		t.Fatal("Paused = false after toggle")
	}
	for i := 0; i < 10; i++ {
		s.Tick([]Intent{MoveRight, PlaceNegative})
	}
	if s.Player.X != 1 || s.Player.Charges[0].Timer != timer {
		t.Errorf("paused tick changed state: x=%d timer=%d", s.Player.X, s.Player.Charges[0].Timer)
	}

	s.Tick([]Intent{PauseToggle})
	if s.Paused {
		t.Fatal("Paused = true after second toggle")
	}
	if s.Player.Charges[0].Timer != timer-1 {
		t.Errorf("Timer = %d, want %d after resuming", s.Player.Charges[0].Timer, timer-1)
	}
}

func TestTick_AbortReturnsToMenu(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
	}{
		{"while playing", false},
		{"while paused", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playing(config.DefaultRules(), corridor, 1, 1, frozen(5, 2, object.Positive))
			s.Paused = tt.paused
			s.Player.Score = 300

			s.Tick([]Intent{Abort})
			if s.Phase != PhaseMenu || s.Paused {
				t.Errorf("phase=%v paused=%v, want unpaused menu", s.Phase, s.Paused)
			}
			if s.Player.Score != 0 || s.Grid != nil {
				t.Errorf("menu kept progress: score=%d", s.Player.Score)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	rules := config.DefaultRules()
	s := playing(rules, corridor, 1, 1, frozen(3, 2, object.Dipole))
	s.PowerUps = []*object.PowerUp{object.NewPowerUp(5, 1, object.ExtraLife)}
	s.Player.PlaceCharge(object.Negative)

	snap := s.Snapshot()
	if snap.Phase != "playing" || snap.Level != 1 {
		t.Errorf("phase=%q level=%d", snap.Phase, snap.Level)
	}
	if snap.Width != 7 || snap.Height != 4 || len(snap.Rows) != 4 || snap.Rows[1] != "#.....#" {
		t.Errorf("grid view = %dx%d %v", snap.Width, snap.Height, snap.Rows)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].Polarity != "dipole" {
		t.Errorf("Enemies = %+v", snap.Enemies)
	}
	if len(snap.PowerUps) != 1 || snap.PowerUps[0].Kind != "extra_life" {
		t.Errorf("PowerUps = %+v", snap.PowerUps)
	}
	if len(snap.Player.Charges) != 1 || snap.Player.Charges[0].Timer != rules.DormantTicks {
		t.Errorf("Charges = %+v", snap.Player.Charges)
	}

	s.Enemies[0].X = 4
	if snap.Enemies[0].X != 3 {
		t.Error("snapshot aliases live enemy state")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"phase", "rows", "player", "enemies", "powerups"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
}

func TestParseIntent(t *testing.T) {
	for i := MoveLeft; i <= Abort; i++ {
		got, ok := ParseIntent(i.String())
		if !ok || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, ok)
		}
	}
	if _, ok := ParseIntent("jump"); ok {
		t.Error("ParseIntent(jump) ok = true, want false")
	}
}
