package config

import "math"

// Difficulty is the per-level profile of tunable gameplay constants.
type Difficulty struct {
	Speed       float64
	Gravity     float64
	TokenSpin   float64
	TokenFloat  float64
	BoxCount    int
	TokenTarget int
	PushForce   float64
}

// LevelDef holds the static parameters of a single level.
type LevelDef struct {
	Duration     float64 // countdown seconds
	TokenSpin    float64
	TokenFloat   float64
	BoxCount     int
	TokenTarget  int
	PushForce    float64
	DrawDistance float64
}

// LevelsConfig contains the level table and the difficulty scaling bases.
type LevelsConfig struct {
	SpeedBase     float64
	GravityBase   float64
	SpeedStep     float64 // speed multiplier added per level above the first
	GravityStep   float64
	HardTier      int     // first level counted as hard
	HardSpeedBump float64 // extra speed multiplier on hard levels
	HardGravBump  float64
	Defs          []LevelDef // index 0 is level 1
}

var Levels LevelsConfig

func init() {
	Levels = LevelsConfig{
		SpeedBase:     10,
		GravityBase:   30,
		SpeedStep:     0.15,
		GravityStep:   0.07,
		HardTier:      3,
		HardSpeedBump: 0.05,
		HardGravBump:  0.04,
		Defs: []LevelDef{
			{Duration: 60, TokenSpin: 1.0, TokenFloat: 0.16, BoxCount: 14, TokenTarget: 10, PushForce: 3.8, DrawDistance: 85},
			{Duration: 55, TokenSpin: 1.3, TokenFloat: 0.19, BoxCount: 20, TokenTarget: 13, PushForce: 4.2, DrawDistance: 92},
			{Duration: 50, TokenSpin: 1.6, TokenFloat: 0.22, BoxCount: 28, TokenTarget: 18, PushForce: 4.8, DrawDistance: 100},
		},
	}
}

// MaxLevel is the final tier.
func MaxLevel() int {
	return len(Levels.Defs)
}

// LevelFor returns the static definition for level, clamped to the table.
func LevelFor(level int) LevelDef {
	return Levels.Defs[clampLevel(level)-1]
}

// IsHardest reports whether level is the final tier.
func IsHardest(level int) bool {
	return clampLevel(level) == MaxLevel()
}

// DifficultyFor derives the difficulty profile for level.
func DifficultyFor(level int) Difficulty {
	level = clampLevel(level)
	def := Levels.Defs[level-1]
	hard := level >= Levels.HardTier

	speedMult := 1 + Levels.SpeedStep*float64(level-1)
	gravMult := 1 + Levels.GravityStep*float64(level-1)
	if hard {
		speedMult += Levels.HardSpeedBump
		gravMult += Levels.HardGravBump
	}

	return Difficulty{
		Speed:       Levels.SpeedBase * speedMult,
		Gravity:     Levels.GravityBase * gravMult,
		TokenSpin:   def.TokenSpin,
		TokenFloat:  def.TokenFloat,
		BoxCount:    def.BoxCount,
		TokenTarget: def.TokenTarget,
		PushForce:   def.PushForce,
	}
}

// BackfillThreshold is the uncollected token count below which the hardest
// tier injects more tokens.
func BackfillThreshold(level int) int {
	return int(math.Floor(float64(DifficultyFor(level).TokenTarget) * Token.BackfillRatio))
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > len(Levels.Defs) {
		return len(Levels.Defs)
	}
	return level
}
