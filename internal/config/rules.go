package config

import (
	"errors"
	"fmt"
	"time"
)

// Board
const (
	DefaultGridWidth  = 16 // 800px screen / 50px cells
	DefaultGridHeight = 12 // 600px screen / 50px cells
	DefaultTickRate   = 60 // Ticks per second
)

// Charges (durations in ticks)
const (
	DefaultDormantTicks = 180
	DefaultActiveTicks  = 60
)

// Player
const (
	DefaultStartLives       = 3
	DefaultMaxLives         = 5
	DefaultStartMaxCharges  = 1
	DefaultFieldStrength    = 1.0
	DefaultFieldRadius      = 2.0 // Cells
	DefaultStrengthStep     = 0.5
	DefaultInvincibleTicks  = 60
	DefaultMessageTicks     = 120
	DefaultEnemyMoveTicks   = 30
	DefaultEnemyHealth      = 100
	DefaultPushDamageAmount = 20
	DefaultPushStunTicks    = 30
)

// Scoring
const (
	ScoreEnemy       = 100
	ScoreDipoleEnemy = 150
	ScorePowerUp     = 50
	ScoreLevelBonus  = 500 // Multiplied by the level number
)

// Level generation
const (
	DefaultBaseWalls         = 10
	DefaultWallsPerLevel     = 2
	DefaultBaseEnemies       = 3
	DefaultEnemiesPerLevel   = 1
	DefaultExtraLifeChance   = 0.2
	DefaultPlacementAttempts = 100
)

// Enemy polarity spawn weights.
const (
	WeightPositive = 5
	WeightNegative = 3
	WeightDipole   = 2
)

// Rules holds every tunable of the simulation. Durations are expressed in ticks.
type Rules struct {
	GridWidth  int `toml:"grid_width"`
	GridHeight int `toml:"grid_height"`
	TickRate   int `toml:"tick_rate"`

	DormantTicks int `toml:"dormant_ticks"`
	ActiveTicks  int `toml:"active_ticks"`

	StartLives      int     `toml:"start_lives"`
	MaxLives        int     `toml:"max_lives"`
	StartMaxCharges int     `toml:"start_max_charges"`
	FieldStrength   float64 `toml:"field_strength"`
	FieldRadius     float64 `toml:"field_radius"`
	StrengthStep    float64 `toml:"strength_step"`
	InvincibleTicks int     `toml:"invincible_ticks"`
	MessageTicks    int     `toml:"message_ticks"`

	EnemyMoveTicks int `toml:"enemy_move_ticks"`
	EnemyHealth    int `toml:"enemy_health"`

	// WallPushDamage enables the harder variant where a repulsion push blocked
	// by a wall hurts and stuns the enemy instead of simply failing.
	WallPushDamage   bool `toml:"wall_push_damage"`
	PushDamageAmount int  `toml:"push_damage_amount"`
	PushStunTicks    int  `toml:"push_stun_ticks"`

	ScoreEnemy       int `toml:"score_enemy"`
	ScoreDipoleEnemy int `toml:"score_dipole_enemy"`
	ScorePowerUp     int `toml:"score_powerup"`
	ScoreLevelBonus  int `toml:"score_level_bonus"`

	BaseWalls         int     `toml:"base_walls"`
	WallsPerLevel     int     `toml:"walls_per_level"`
	BaseEnemies       int     `toml:"base_enemies"`
	EnemiesPerLevel   int     `toml:"enemies_per_level"`
	ExtraLifeChance   float64 `toml:"extra_life_chance"`
	PlacementAttempts int     `toml:"placement_attempts"`

	WeightPositive int `toml:"weight_positive"`
	WeightNegative int `toml:"weight_negative"`
	WeightDipole   int `toml:"weight_dipole"`
}

// DefaultRules returns the stock game rules.
func DefaultRules() Rules {
	return Rules{
		GridWidth:  DefaultGridWidth,
		GridHeight: DefaultGridHeight,
		TickRate:   DefaultTickRate,

		DormantTicks: DefaultDormantTicks,
		ActiveTicks:  DefaultActiveTicks,

		StartLives:      DefaultStartLives,
		MaxLives:        DefaultMaxLives,
		StartMaxCharges: DefaultStartMaxCharges,
		FieldStrength:   DefaultFieldStrength,
		FieldRadius:     DefaultFieldRadius,
		StrengthStep:    DefaultStrengthStep,
		InvincibleTicks: DefaultInvincibleTicks,
		MessageTicks:    DefaultMessageTicks,

		EnemyMoveTicks: DefaultEnemyMoveTicks,
		EnemyHealth:    DefaultEnemyHealth,

		PushDamageAmount: DefaultPushDamageAmount,
		PushStunTicks:    DefaultPushStunTicks,

		ScoreEnemy:       ScoreEnemy,
		ScoreDipoleEnemy: ScoreDipoleEnemy,
		ScorePowerUp:     ScorePowerUp,
		ScoreLevelBonus:  ScoreLevelBonus,

		BaseWalls:         DefaultBaseWalls,
		WallsPerLevel:     DefaultWallsPerLevel,
		BaseEnemies:       DefaultBaseEnemies,
		EnemiesPerLevel:   DefaultEnemiesPerLevel,
		ExtraLifeChance:   DefaultExtraLifeChance,
		PlacementAttempts: DefaultPlacementAttempts,

		WeightPositive: WeightPositive,
		WeightNegative: WeightNegative,
		WeightDipole:   WeightDipole,
	}
}

// TickDuration returns the wall-clock length of one tick.
func (r Rules) TickDuration() time.Duration {
	if r.TickRate <= 0 {
		return time.Second / DefaultTickRate
	}
	return time.Second / time.Duration(r.TickRate)
}

// Validate reports the first rule that would break the simulation.
func (r Rules) Validate() error {
	switch {
	case r.GridWidth < 3 || r.GridHeight < 3:
		return fmt.Errorf("grid %dx%d too small, need at least 3x3", r.GridWidth, r.GridHeight)
	case r.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", r.TickRate)
	case r.DormantTicks <= 0 || r.ActiveTicks <= 0:
		return errors.New("dormant_ticks and active_ticks must be positive")
	case r.EnemyMoveTicks <= 0:
		return fmt.Errorf("enemy_move_ticks must be positive, got %d", r.EnemyMoveTicks)
	case r.StartLives <= 0 || r.MaxLives < r.StartLives:
		return fmt.Errorf("invalid lives: start %d, max %d", r.StartLives, r.MaxLives)
	case r.StartMaxCharges <= 0:
		return fmt.Errorf("start_max_charges must be positive, got %d", r.StartMaxCharges)
	case r.FieldRadius <= 0 || r.FieldStrength <= 0:
		return errors.New("field_radius and field_strength must be positive")
	case r.ExtraLifeChance < 0 || r.ExtraLifeChance > 1:
		return fmt.Errorf("extra_life_chance %.2f outside [0,1]", r.ExtraLifeChance)
	case r.PlacementAttempts <= 0:
		return fmt.Errorf("placement_attempts must be positive, got %d", r.PlacementAttempts)
	case r.WeightPositive < 0 || r.WeightNegative < 0 || r.WeightDipole < 0:
		return errors.New("spawn weights must not be negative")
	case r.WeightPositive+r.WeightNegative+r.WeightDipole == 0:
		return errors.New("at least one spawn weight must be positive")
	}
	return nil
}
