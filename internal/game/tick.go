package game

import (
	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/object"
)

// Tick advances the session by exactly one step, consuming this tick's intents.
func (s *State) Tick(intents []Intent) {
	switch s.Phase {
	case PhaseMenu:
		if has(intents, Confirm) {
			s.startGame()
		}
	case PhasePlaying:
		s.tickPlaying(intents)
	case PhaseLevelComplete:
		switch {
		case has(intents, Abort):
			s.toMenu()
		case has(intents, Confirm):
			s.loadLevel(s.Level + 1)
		}
	case PhaseGameOver:
		if has(intents, Confirm) || has(intents, Abort) {
			s.toMenu()
		}
	}
}

// tickPlaying runs the fixed update order of a playing tick.
func (s *State) tickPlaying(intents []Intent) {
	for _, in := range intents {
		switch in {
		case Abort:
			s.toMenu()
			return
		case PauseToggle:
			s.Paused = !s.Paused
		}
	}
	if s.Paused {
		return
	}

	s.applyIntents(intents)
	s.Player.Update(&s.Events)
	s.updateEnemies()
	if s.checkContact() {
		return
	}
	s.collectPowerUps()
	s.checkLevelComplete()
}

// applyIntents moves the player and places charges. Rejected actions are no-ops.
func (s *State) applyIntents(intents []Intent) {
	for _, in := range intents {
		if dx, dy, ok := in.direction(); ok {
			s.Player.Move(dx, dy, s.Grid)
			continue
		}
		switch in {
		case PlacePositive:
			s.Player.PlaceCharge(object.Positive)
		case PlaceNegative:
			s.Player.PlaceCharge(object.Negative)
		}
	}
}

// updateEnemies advances every enemy, then sweeps the dead ones and awards
// their score in one compaction pass.
func (s *State) updateEnemies() {
	ctx := s.updateContext()
	for _, e := range s.Enemies {
		e.Update(ctx)
	}

	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.IsDestroyed() {
			kept = append(kept, e)
			continue
		}
		points := e.ScoreValue(s.Rules.ScoreEnemy, s.Rules.ScoreDipoleEnemy)
		s.Player.AddScore(points)
		s.Events.Push(event.Event{Type: event.EnemyKilled, X: e.X, Y: e.Y, Value: points})
	}
	clear(s.Enemies[len(kept):])
	s.Enemies = kept
}

// checkContact damages the player if an enemy shares their cell.
// Returns true when the hit ended the game.
func (s *State) checkContact() bool {
	p := s.Player
	for _, e := range s.Enemies {
		if e.X != p.X || e.Y != p.Y {
			continue
		}
		if p.TakeHit() {
			s.Events.Push(event.Event{Type: event.PlayerHit, X: p.X, Y: p.Y, Value: p.Lives})
		}
		break
	}

	if p.Alive() {
		return false
	}
	s.Phase = PhaseGameOver
	s.Events.Push(event.Event{Type: event.GameOver, X: p.X, Y: p.Y, Value: p.Score})
	return true
}

// collectPowerUps applies and removes any power-up on the player's cell.
func (s *State) collectPowerUps() {
	p := s.Player
	for _, pu := range s.PowerUps {
		if pu.X != p.X || pu.Y != p.Y || !pu.Collect() {
			continue
		}
		p.ShowMessage(p.Apply(pu.Kind))
		p.AddScore(s.Rules.ScorePowerUp)
		s.Events.Push(event.Event{Type: event.PowerUpCollected, X: pu.X, Y: pu.Y, Value: s.Rules.ScorePowerUp})
	}

	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		if !pu.IsDestroyed() {
			kept = append(kept, pu)
		}
	}
	clear(s.PowerUps[len(kept):])
	s.PowerUps = kept
}

// checkLevelComplete awards the clear bonus once no enemy is left.
func (s *State) checkLevelComplete() {
	if len(s.Enemies) > 0 {
		return
	}
	bonus := s.Rules.ScoreLevelBonus * s.Level
	s.Player.AddScore(bonus)
	s.Phase = PhaseLevelComplete
	s.Events.Push(event.Event{Type: event.LevelComplete, Value: bonus})
}

func has(intents []Intent, want Intent) bool {
	for _, in := range intents {
		if in == want {
			return true
		}
	}
	return false
}
