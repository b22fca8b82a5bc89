package systems

import (
	"errors"
	"testing"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

const frameDT = 1.0 / 60

func TestStartSessionRequiresAssets(t *testing.T) {
	g := game.New(1)
	err := StartSession(g)
	if !errors.Is(err, ErrAssetsNotReady) {
		t.Fatalf("StartSession without a level = %v, want ErrAssetsNotReady", err)
	}

	h := newHarness(t)
	h.g.LoadErr = errors.New("arena.tmx: no such file")
	if err := StartSession(h.g); !errors.Is(err, ErrAssetsNotReady) {
		t.Fatalf("StartSession after a load error = %v, want ErrAssetsNotReady", err)
	}
	if h.session().State != cfg.SessionMenu {
		t.Errorf("state = %v, want menu", h.session().State)
	}
}

func TestStartSessionResetsState(t *testing.T) {
	h := newHarness(t)
	s := h.session()
	s.Score = 900
	s.Level = 3

	if err := StartSession(h.g); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if s.State != cfg.SessionPlaying || s.Score != 0 || s.Level != 1 || s.TimeRemaining != 60 {
		t.Errorf("session = %+v, want playing, score 0, level 1, 60s", *s)
	}
	if got := UncollectedTokens(h.g); got != 10 {
		t.Errorf("tokens = %d, want 10", got)
	}
	if got := BoxCount(h.g); got != 14 {
		t.Errorf("boxes = %d, want 14", got)
	}
	if h.machineClip() != cfg.ClipStrong {
		t.Errorf("clip = %v, want the strong gesture", h.machineClip())
	}
	if !h.ui.hud || h.ui.timer != "01:00" || h.audio.background != 1 {
		t.Errorf("presenter hud=%v timer=%q, background plays=%d", h.ui.hud, h.ui.timer, h.audio.background)
	}
}

func TestCountdownLosesExactlyOnce(t *testing.T) {
	h := started(t)
	s := h.session()
	s.Score = 1200
	s.TimeRemaining = 0.05

	h.frame(0.1)

	if s.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %v, want 0", s.TimeRemaining)
	}
	if s.State != cfg.SessionFinished || s.Outcome != cfg.OutcomeLose {
		t.Fatalf("state = %v outcome = %v, want finished/lose", s.State, s.Outcome)
	}
	if len(h.ui.victory) != 1 || h.ui.victory[0] != loseText || h.ui.final != 1200 {
		t.Errorf("overlay = %v final %d, want [%q] 1200", h.ui.victory, h.ui.final, loseText)
	}
	if h.audio.gameOver != 1 || !h.audio.ducked {
		t.Errorf("game over sound %d, ducked %v", h.audio.gameOver, h.audio.ducked)
	}

	for i := 0; i < 10; i++ {
		h.frame(frameDT)
	}
	if len(h.scores.recorded) != 1 {
		t.Fatalf("recorded %d scores, want 1", len(h.scores.recorded))
	}
	if got := h.scores.recorded[0]; got.Score != 1200 || got.Level != 1 || !got.At.Equal(testNow) {
		t.Errorf("recorded %+v", got)
	}
	if s.TimeRemaining < 0 {
		t.Errorf("TimeRemaining went negative: %v", s.TimeRemaining)
	}
}

func TestCountdownNeverNegative(t *testing.T) {
	h := started(t)
	s := h.session()
	s.TimeRemaining = 3
	for i := 0; i < 200 && s.State == cfg.SessionPlaying; i++ {
		h.frame(0.07)
		if s.TimeRemaining < 0 {
			t.Fatalf("frame %d: TimeRemaining = %v", i, s.TimeRemaining)
		}
	}
	if s.State != cfg.SessionFinished {
		t.Errorf("state = %v, want finished", s.State)
	}
}

func TestLevelUpRegeneratesLevel(t *testing.T) {
	h := started(t)
	s := h.session()
	s.Score = 750
	s.TimeRemaining = 12

	CollectToken(h.g, h.token(r3.Vec{X: 30}, cfg.TokenPotion))

	if s.Score != 800 {
		t.Fatalf("score = %d, want 800", s.Score)
	}
	if s.Level != 2 || s.TimeRemaining != 55 {
		t.Fatalf("level %d time %v, want level 2 with 55s", s.Level, s.TimeRemaining)
	}
	if got := UncollectedTokens(h.g); got != 13 {
		t.Errorf("tokens = %d, want 13", got)
	}
	if got := BoxCount(h.g); got != 20 {
		t.Errorf("boxes = %d, want 20", got)
	}

	fixed := 0
	for _, spot := range loadArena(t).Spots(2) {
		for _, pos := range tokenPositions(h) {
			if pos.X == spot.X && pos.Z == spot.Z {
				fixed++
				break
			}
		}
	}
	if fixed != 8 {
		t.Errorf("tokens on level-2 spots = %d, want 8", fixed)
	}

	if h.machineClip() != cfg.ClipStrong {
		t.Errorf("clip = %v, want strong gesture", h.machineClip())
	}
	if h.ui.level != 2 || h.ui.banner != "Level 2" || h.ui.distance != cfg.LevelFor(2).DrawDistance {
		t.Errorf("presenter level=%d banner=%q distance=%v", h.ui.level, h.ui.banner, h.ui.distance)
	}
	UpdateAudio(h.g)
	if h.audio.levelUp != 1 {
		t.Errorf("level-up sounds = %d, want 1", h.audio.levelUp)
	}
}

func TestLevelUpHoldsCountdown(t *testing.T) {
	h := started(t)
	LevelUp(h.g)
	s := h.session()

	h.frame(0.1)
	if s.TimeRemaining != 55 {
		t.Errorf("TimeRemaining during the banner = %v, want 55", s.TimeRemaining)
	}

	frames := 1
	for s.InLevelUp() && frames < 40 {
		h.frame(0.1)
		frames++
	}
	if s.InLevelUp() || h.ui.banner != "" {
		t.Fatalf("banner still showing after %d frames", frames)
	}
	if frames < 17 || frames > 19 {
		t.Errorf("banner held for %d frames of 0.1s, want about %v s", frames, cfg.Session.LevelUpHoldTime)
	}
	if s.TimeRemaining != 55 {
		t.Errorf("TimeRemaining after the banner = %v, want 55", s.TimeRemaining)
	}

	h.frame(0.1)
	if s.TimeRemaining >= 55 {
		t.Errorf("countdown did not resume: %v", s.TimeRemaining)
	}
}

func TestWinTakesPriorityOverLevelUp(t *testing.T) {
	h := started(t)
	s := h.session()
	s.Score = 2250

	CollectToken(h.g, h.token(r3.Vec{X: 30}, cfg.TokenGem))

	if s.Score != 2500 {
		t.Fatalf("score = %d, want 2500", s.Score)
	}
	if s.State != cfg.SessionFinished || s.Outcome != cfg.OutcomeWin {
		t.Fatalf("state = %v outcome = %v, want finished/win", s.State, s.Outcome)
	}
	if s.Level != 1 {
		t.Errorf("level = %d, a win must not also level up", s.Level)
	}

	CheckThresholds(h.g)
	FinishSession(h.g, cfg.OutcomeWin)
	if len(h.scores.recorded) != 1 {
		t.Errorf("recorded %d scores, want 1", len(h.scores.recorded))
	}
	if len(h.ui.victory) != 1 || h.ui.victory[0] != winText {
		t.Errorf("overlay = %v, want [%q]", h.ui.victory, winText)
	}
	if h.machineClip() != cfg.ClipCelebrate {
		t.Errorf("clip = %v, want celebrate", h.machineClip())
	}
}

func TestWinIgnoresRemainingTime(t *testing.T) {
	h := started(t)
	s := h.session()
	s.Level = 3
	s.Score = 2450
	s.TimeRemaining = 40

	CollectToken(h.g, h.token(r3.Vec{X: 30}, cfg.TokenPotion))

	if s.State != cfg.SessionFinished || s.Outcome != cfg.OutcomeWin {
		t.Errorf("state = %v outcome = %v, want finished/win", s.State, s.Outcome)
	}
}

func TestTogglePause(t *testing.T) {
	h := started(t)
	s := h.session()

	TogglePause(h.g)
	if s.State != cfg.SessionPaused || h.ui.pauses != 1 || !h.audio.paused {
		t.Fatalf("after pause: state %v, pauses %d, music paused %v", s.State, h.ui.pauses, h.audio.paused)
	}
	before := s.TimeRemaining
	h.frame(0.1)
	if s.TimeRemaining != before {
		t.Errorf("countdown moved while paused: %v -> %v", before, s.TimeRemaining)
	}

	TogglePause(h.g)
	if s.State != cfg.SessionPlaying || h.audio.paused {
		t.Errorf("after resume: state %v, music paused %v", s.State, h.audio.paused)
	}

	FinishSession(h.g, cfg.OutcomeLose)
	TogglePause(h.g)
	if s.State != cfg.SessionFinished {
		t.Errorf("pause from finished changed state to %v", s.State)
	}
}

func TestControlsDriveSession(t *testing.T) {
	h := newHarness(t)
	s := h.session()

	h.input.held[cfg.ActionMenuSelect] = true
	h.frame(frameDT)
	if s.State != cfg.SessionPlaying {
		t.Fatalf("state = %v, want playing after menu select", s.State)
	}
	h.input.held[cfg.ActionMenuSelect] = false

	h.input.held[cfg.ActionPause] = true
	h.frame(frameDT)
	h.frame(frameDT) // still held: no second toggle
	if s.State != cfg.SessionPaused {
		t.Fatalf("state = %v, want paused", s.State)
	}
	h.input.held[cfg.ActionPause] = false
	h.frame(frameDT)

	h.input.held[cfg.ActionMenuBack] = true
	h.frame(frameDT)
	if s.State != cfg.SessionMenu || h.ui.menus != 1 {
		t.Errorf("state = %v menus = %d, want menu", s.State, h.ui.menus)
	}

	h.input.held[cfg.ActionMute] = true
	h.frame(frameDT)
	if !s.Muted || !h.audio.muted {
		t.Errorf("mute toggle: session %v audio %v", s.Muted, h.audio.muted)
	}
}

func TestSubsteps(t *testing.T) {
	tests := []struct {
		dt   float64
		want int
	}{
		{0, 1},
		{0.005, 1},
		{0.006, 2},
		{1.0 / 60, 4},
		{0.1, 20},
	}
	for _, tt := range tests {
		if got := Substeps(tt.dt); got != tt.want {
			t.Errorf("Substeps(%v) = %d, want %d", tt.dt, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{60, "01:00"},
		{59.99, "00:59"},
		{9.5, "00:09"},
		{0, "00:00"},
		{-3, "00:00"},
		{125, "02:05"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func tokenPositions(h *harness) []r3.Vec {
	var out []r3.Vec
	components.Token.Each(h.g.World, func(e *donburi.Entry) {
		out = append(out, components.Token.Get(e).Position)
	})
	return out
}
