package config

import (
	"math"
	"testing"
)

func TestDifficultyMonotonic(t *testing.T) {
	for level := 2; level <= MaxLevel(); level++ {
		prev := DifficultyFor(level - 1)
		cur := DifficultyFor(level)
		if cur.Speed < prev.Speed {
			t.Errorf("level %d speed %v < level %d speed %v", level, cur.Speed, level-1, prev.Speed)
		}
		if cur.Gravity < prev.Gravity {
			t.Errorf("level %d gravity %v < level %d gravity %v", level, cur.Gravity, level-1, prev.Gravity)
		}
		if cur.BoxCount < prev.BoxCount {
			t.Errorf("level %d boxes %d < level %d boxes %d", level, cur.BoxCount, level-1, prev.BoxCount)
		}
		if cur.TokenTarget < prev.TokenTarget {
			t.Errorf("level %d token target %d < level %d target %d", level, cur.TokenTarget, level-1, prev.TokenTarget)
		}
	}
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		level   int
		speed   float64
		gravity float64
		boxes   int
		target  int
		push    float64
	}{
		{1, 10, 30, 14, 10, 3.8},
		{2, 11.5, 32.1, 20, 13, 4.2},
		{3, 13.5, 35.4, 28, 18, 4.8},
	}

	for _, tt := range tests {
		d := DifficultyFor(tt.level)
		if math.Abs(d.Speed-tt.speed) > 1e-9 {
			t.Errorf("level %d speed = %v, want %v", tt.level, d.Speed, tt.speed)
		}
		if math.Abs(d.Gravity-tt.gravity) > 1e-9 {
			t.Errorf("level %d gravity = %v, want %v", tt.level, d.Gravity, tt.gravity)
		}
		if d.BoxCount != tt.boxes || d.TokenTarget != tt.target || d.PushForce != tt.push {
			t.Errorf("level %d = %+v, want boxes %d target %d push %v", tt.level, d, tt.boxes, tt.target, tt.push)
		}
	}
}

func TestDifficultyClampsLevel(t *testing.T) {
	if DifficultyFor(0) != DifficultyFor(1) {
		t.Errorf("level 0 should clamp to level 1")
	}
	if DifficultyFor(9) != DifficultyFor(MaxLevel()) {
		t.Errorf("level 9 should clamp to the final tier")
	}
}

func TestLevelDurations(t *testing.T) {
	want := []float64{60, 55, 50}
	for i, w := range want {
		if got := LevelFor(i + 1).Duration; got != w {
			t.Errorf("level %d duration = %v, want %v", i+1, got, w)
		}
	}
}

func TestBackfillThreshold(t *testing.T) {
	if got := BackfillThreshold(3); got != 10 {
		t.Errorf("BackfillThreshold(3) = %d, want 10", got)
	}
}
