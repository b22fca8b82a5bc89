package animations

import (
	"testing"

	cfg "github.com/automoto/lostpath/config"
)

const frame = 1.0 / 60

// run advances m by whole frames for secs seconds and returns the clips
// reported as finished.
func run(m *Machine, secs float64) []cfg.ClipID {
	var finished []cfg.ClipID
	for t := 0.0; t < secs; t += frame {
		if c, ok := m.Update(frame); ok {
			finished = append(finished, c)
		}
	}
	return finished
}

func TestRequestSwapsLoopsWhenFree(t *testing.T) {
	m := NewMachine(cfg.ClipIdle)

	if !m.Request(cfg.ClipJog) {
		t.Fatalf("Request(jog) on a free machine should change the clip")
	}
	if m.Current() != cfg.ClipJog {
		t.Fatalf("Current = %v, want jog", m.Current())
	}
	if m.Request(cfg.ClipJog) {
		t.Errorf("requesting the active clip should not restart it")
	}
	if !m.Request(cfg.ClipWalkLeft) || m.Current() != cfg.ClipWalkLeft {
		t.Errorf("Current = %v, want walk-left", m.Current())
	}
}

func TestOneShotBlocksLoopingTransitions(t *testing.T) {
	m := NewMachine(cfg.ClipIdle)
	m.PlayOnce(cfg.ClipTake)

	if m.State() != Locked {
		t.Fatalf("State = %v, want locked", m.State())
	}

	// Movement input while the one-shot plays must not change the clip.
	for i := 0; i < 30; i++ {
		if m.Request(cfg.ClipJog) {
			t.Fatalf("Request accepted while locked")
		}
		m.Update(frame)
		if m.Current() != cfg.ClipTake {
			t.Fatalf("frame %d: Current = %v, want take", i, m.Current())
		}
	}
}

func TestOneShotFallsBackToCurrentIntent(t *testing.T) {
	m := NewMachine(cfg.ClipIdle)
	m.PlayOnce(cfg.ClipJump)
	m.Request(cfg.ClipJog)
	m.Request(cfg.ClipWalkRight)

	finished := run(m, cfg.Clips[cfg.ClipJump].Duration+2*frame)
	if len(finished) != 1 || finished[0] != cfg.ClipJump {
		t.Fatalf("finished = %v, want [jump]", finished)
	}
	if m.State() != Free {
		t.Errorf("State = %v, want free", m.State())
	}
	if m.Current() != cfg.ClipWalkRight {
		t.Errorf("Current = %v, want the latest intent walk-right", m.Current())
	}
}

func TestOneShotReplacesOneShot(t *testing.T) {
	m := NewMachine(cfg.ClipIdle)
	m.PlayOnce(cfg.ClipJump)
	run(m, 0.5)
	m.PlayOnce(cfg.ClipTake)

	finished := run(m, cfg.Clips[cfg.ClipTake].Duration+2*frame)
	if len(finished) != 1 || finished[0] != cfg.ClipTake {
		t.Fatalf("finished = %v, want only [take]", finished)
	}
	if m.Current() != cfg.ClipIdle {
		t.Errorf("Current = %v, want idle", m.Current())
	}
}

func TestLoopingClipNeverReportsFinished(t *testing.T) {
	m := NewMachine(cfg.ClipJog)
	if finished := run(m, 5*cfg.Clips[cfg.ClipJog].Duration); len(finished) != 0 {
		t.Errorf("looping clip reported finished: %v", finished)
	}
}

func TestCrossfadeWeights(t *testing.T) {
	m := NewMachine(cfg.ClipIdle)
	m.Request(cfg.ClipJog)

	cur, prev, w := m.Weights()
	if cur != cfg.ClipJog || prev != cfg.ClipIdle || w != 0 {
		t.Fatalf("Weights = %v %v %v, want jog idle 0", cur, prev, w)
	}

	fade := cfg.Clips[cfg.ClipJog].FadeIn
	m.Update(fade / 2)
	_, _, w = m.Weights()
	if w <= 0.4 || w >= 0.6 {
		t.Errorf("mid-fade weight = %v, want about 0.5", w)
	}

	m.Update(fade)
	cur, prev, w = m.Weights()
	if cur != cfg.ClipJog || prev != cfg.ClipNone || w != 1 {
		t.Errorf("after fade Weights = %v %v %v, want jog none 1", cur, prev, w)
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(cfg.ClipStrong)
	a.Update(cfg.Clips[cfg.ClipStrong].Duration + 1)
	if !a.Looped || a.Progress() != 1 {
		t.Errorf("one-shot should hold its last pose, progress %v", a.Progress())
	}

	loop := NewAnimation(cfg.ClipJog)
	loop.Update(cfg.Clips[cfg.ClipJog].Duration * 1.5)
	if !loop.Looped || loop.Progress() >= 1 {
		t.Errorf("loop should wrap, progress %v", loop.Progress())
	}
}
