package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of gameplay constants that can be overridden from a
// YAML file. Fields missing from the file keep their current values.
type Tuning struct {
	Difficulty DifficultyTuning `yaml:"difficulty"`
	Player     PlayerTuning     `yaml:"player"`
	Session    SessionTuning    `yaml:"session"`
	Levels     []LevelTuning    `yaml:"levels"`
}

type DifficultyTuning struct {
	SpeedBase   float64 `yaml:"speed_base"`
	GravityBase float64 `yaml:"gravity_base"`
	SpeedStep   float64 `yaml:"speed_step"`
	GravityStep float64 `yaml:"gravity_step"`
}

type PlayerTuning struct {
	JumpSpeed  float64 `yaml:"jump_speed"`
	CoyoteTime float64 `yaml:"coyote_time"`
}

type SessionTuning struct {
	WinScore       int `yaml:"win_score"`
	LevelScoreStep int `yaml:"level_score_step"`
}

type LevelTuning struct {
	Duration    float64 `yaml:"duration"`
	BoxCount    int     `yaml:"box_count"`
	TokenTarget int     `yaml:"token_target"`
	PushForce   float64 `yaml:"push_force"`
}

// CurrentTuning snapshots the active values.
func CurrentTuning() Tuning {
	t := Tuning{
		Difficulty: DifficultyTuning{
			SpeedBase:   Levels.SpeedBase,
			GravityBase: Levels.GravityBase,
			SpeedStep:   Levels.SpeedStep,
			GravityStep: Levels.GravityStep,
		},
		Player: PlayerTuning{
			JumpSpeed:  Player.JumpSpeed,
			CoyoteTime: Player.CoyoteTime,
		},
		Session: SessionTuning{
			WinScore:       Session.WinScore,
			LevelScoreStep: Session.LevelScoreStep,
		},
	}
	for _, def := range Levels.Defs {
		t.Levels = append(t.Levels, LevelTuning{
			Duration:    def.Duration,
			BoxCount:    def.BoxCount,
			TokenTarget: def.TokenTarget,
			PushForce:   def.PushForce,
		})
	}
	return t
}

// LoadTuning decodes a YAML document over the current values and applies it.
func LoadTuning(r io.Reader) error {
	t := CurrentTuning()
	if err := yaml.NewDecoder(r).Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.apply()
	return nil
}

// LoadTuningFile is LoadTuning over a file on disk.
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading tuning file: %w", err)
	}
	defer f.Close()
	return LoadTuning(f)
}

// WriteYAML writes t as YAML, for use as a starting point for overrides.
func (t Tuning) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}
	return enc.Close()
}

func (t Tuning) validate() error {
	if len(t.Levels) != len(Levels.Defs) {
		return fmt.Errorf("tuning: expected %d levels, got %d", len(Levels.Defs), len(t.Levels))
	}
	if t.Difficulty.SpeedBase <= 0 || t.Difficulty.GravityBase <= 0 {
		return errors.New("tuning: speed and gravity bases must be positive")
	}
	if t.Session.WinScore <= 0 || t.Session.LevelScoreStep <= 0 {
		return errors.New("tuning: score thresholds must be positive")
	}
	if t.Difficulty.SpeedStep < 0 || t.Difficulty.GravityStep < 0 {
		return errors.New("tuning: speed and gravity steps must not be negative")
	}
	for i, l := range t.Levels {
		if l.Duration <= 0 || l.TokenTarget <= 0 || l.BoxCount < 0 {
			return fmt.Errorf("tuning: level %d has invalid values", i+1)
		}
		if i == 0 {
			continue
		}
		prev := t.Levels[i-1]
		if l.BoxCount < prev.BoxCount || l.TokenTarget < prev.TokenTarget {
			return fmt.Errorf("tuning: level %d has fewer boxes or tokens than level %d", i+1, i)
		}
	}
	return nil
}

func (t Tuning) apply() {
	Levels.SpeedBase = t.Difficulty.SpeedBase
	Levels.GravityBase = t.Difficulty.GravityBase
	Levels.SpeedStep = t.Difficulty.SpeedStep
	Levels.GravityStep = t.Difficulty.GravityStep
	Player.JumpSpeed = t.Player.JumpSpeed
	Player.CoyoteTime = t.Player.CoyoteTime
	Session.WinScore = t.Session.WinScore
	Session.LevelScoreStep = t.Session.LevelScoreStep
	for i, l := range t.Levels {
		Levels.Defs[i].Duration = l.Duration
		Levels.Defs[i].BoxCount = l.BoxCount
		Levels.Defs[i].TokenTarget = l.TokenTarget
		Levels.Defs[i].PushForce = l.PushForce
	}
}
