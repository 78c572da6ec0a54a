// Package level builds the procedurally generated boards a round is played on.
package level

import (
	"math/rand"

	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/grid"
	"github.com/tomz197/electroblast/internal/object"
)

// Level is the freshly generated content of one level.
type Level struct {
	Number   int
	Grid     *grid.Grid
	Start    grid.Position
	Enemies  []*object.Enemy
	PowerUps []*object.PowerUp
}

// Generate builds level number n from the rules, drawing every random choice
// from rng. The same seed and level number always give the same level.
func Generate(n int, rules config.Rules, rng *rand.Rand) *Level {
	g := grid.New(rules.GridWidth, rules.GridHeight)

	walls := rules.BaseWalls + n*rules.WallsPerLevel
	for i := 0; i < walls; i++ {
		x, y := randomInterior(g, rng)
		g.SetWall(x, y)
	}

	lvl := &Level{Number: n, Grid: g}

	enemies := rules.BaseEnemies + n*rules.EnemiesPerLevel
	for i := 0; i < enemies; i++ {
		polarity := spawnPolarity(rules, rng)
		x, y, ok := openCell(g, rng, rules.PlacementAttempts)
		if !ok {
			continue
		}
		lvl.Enemies = append(lvl.Enemies, object.NewEnemy(x, y, polarity, rules.EnemyHealth))
	}

	kinds := []object.PowerUpKind{object.FieldStrength, object.ExtraCharge}
	powerups := []object.PowerUpKind{kinds[rng.Intn(len(kinds))]}
	if rng.Float64() < rules.ExtraLifeChance {
		powerups = append(powerups, object.ExtraLife)
	}
	for _, kind := range powerups {
		x, y, ok := openCell(g, rng, rules.PlacementAttempts)
		if !ok {
			continue
		}
		lvl.PowerUps = append(lvl.PowerUps, object.NewPowerUp(x, y, kind))
	}

	lvl.Start = startCell(g)
	return lvl
}

// randomInterior returns a uniformly chosen non-border cell.
func randomInterior(g *grid.Grid, rng *rand.Rand) (int, int) {
	x := 1 + rng.Intn(g.Width()-2)
	y := 1 + rng.Intn(g.Height()-2)
	return x, y
}

// openCell samples interior cells until it hits an open one, giving up after
// the given number of attempts.
func openCell(g *grid.Grid, rng *rand.Rand, attempts int) (int, int, bool) {
	for i := 0; i < attempts; i++ {
		x, y := randomInterior(g, rng)
		if g.IsOpen(x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// spawnPolarity draws an enemy polarity from the weighted distribution.
func spawnPolarity(rules config.Rules, rng *rand.Rand) object.Polarity {
	total := rules.WeightPositive + rules.WeightNegative + rules.WeightDipole
	if total <= 0 {
		return object.Positive
	}
	r := rng.Intn(total)
	switch {
	case r < rules.WeightPositive:
		return object.Positive
	case r < rules.WeightPositive+rules.WeightNegative:
		return object.Negative
	default:
		return object.Dipole
	}
}

// startCell scans row by row from (1,1) for the first open cell. A board with
// no open interior gets (1,1) carved out.
func startCell(g *grid.Grid) grid.Position {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if g.IsOpen(x, y) {
				return grid.Position{X: x, Y: y}
			}
		}
	}
	g.Clear(1, 1)
	return grid.Position{X: 1, Y: 1}
}
