package systems

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/systems/factory"
)

// ErrAssetsNotReady is returned when a session is started before the arena
// has loaded.
var ErrAssetsNotReady = errors.New("assets not ready")

const (
	winText  = "Congratulations, traveler!"
	loseText = "Game Over"
)

// StartSession resets the session, the player and the level-1 entities and
// moves to the playing state.
func StartSession(g *game.Game) error {
	if !Ready(g) {
		if g.LoadErr != nil {
			return fmt.Errorf("start session: %w: %v", ErrAssetsNotReady, g.LoadErr)
		}
		return fmt.Errorf("start session: %w", ErrAssetsNotReady)
	}
	s := sessionOf(g)
	level := levelOf(g)
	def := cfg.LevelFor(1)

	*s = components.SessionData{
		State:         cfg.SessionPlaying,
		Level:         1,
		TimeRemaining: def.Duration,
		Muted:         s.Muted,
	}

	if pe, ok := playerEntry(g); ok {
		p := components.Player.Get(pe)
		factory.ResetPlayer(p, level.Arena.Spawn)
		p.Yaw = 0
		factory.SyncProbe(g.World, p, components.Object.Get(pe).Object)
		m := components.Animation.Get(pe).Machine
		m.Reset(cfg.ClipIdle)
		m.PlayOnce(cfg.ClipStrong)
	}
	if cam := cameraOf(g); cam != nil {
		*cam = components.CameraData{}
	}

	SpawnTokens(g, 1)
	SpawnBoxes(g, 1)
	level.DrawDistance = def.DrawDistance

	g.UI.HideAll()
	g.UI.SetHUDVisible(true)
	g.UI.SetScore(0)
	g.UI.SetLevel(1)
	publishTimer(g, s)
	for t := cfg.TokenType(0); t < cfg.TokenTypeCount; t++ {
		g.UI.SetTokenCount(t, 0)
	}
	g.UI.SetLevelBanner("")
	g.UI.SetDrawDistance(level.DrawDistance)
	g.Audio.PlayBackground()
	return nil
}

// TogglePause switches between playing and paused. Other states ignore it.
func TogglePause(g *game.Game) {
	s := sessionOf(g)
	if s == nil {
		return
	}
	switch s.State {
	case cfg.SessionPlaying:
		s.State = cfg.SessionPaused
		g.UI.ShowPause()
		g.Audio.PauseBackground(true)
	case cfg.SessionPaused:
		s.State = cfg.SessionPlaying
		g.UI.HideAll()
		g.UI.SetHUDVisible(true)
		g.Audio.PauseBackground(false)
	}
}

// GoHome returns to the menu from any state.
func GoHome(g *game.Game) {
	s := sessionOf(g)
	if s == nil {
		return
	}
	s.State = cfg.SessionMenu
	s.Level = 1
	s.TimeRemaining = cfg.LevelFor(1).Duration
	s.LevelUpHold = 0

	if pe, ok := playerEntry(g); ok {
		components.Animation.Get(pe).Machine.Reset(cfg.ClipIdle)
	}

	g.UI.HideAll()
	g.UI.SetHUDVisible(false)
	g.UI.SetLevelBanner("")
	g.UI.SetLevel(1)
	publishTimer(g, s)
	g.UI.ShowMenu()
	g.Audio.PauseBackground(false)
}

// UpdateSession runs one frame of play: the countdown, the physics
// substeps and the token pass.
func UpdateSession(g *game.Game, dt float64) {
	s := sessionOf(g)
	if s == nil || s.State != cfg.SessionPlaying {
		return
	}
	dt = math.Max(0, math.Min(dt, cfg.Session.MaxFrameDelta))

	if s.InLevelUp() {
		s.LevelUpHold -= dt
		if !s.InLevelUp() {
			s.LevelUpHold = 0
			g.UI.SetLevelBanner("")
		}
		return
	}

	s.TimeRemaining -= dt
	if s.TimeRemaining <= 0 {
		s.TimeRemaining = 0
		publishTimer(g, s)
		FinishSession(g, cfg.OutcomeLose)
		return
	}
	publishTimer(g, s)

	steps := Substeps(dt)
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		s.Clock += h
		UpdatePlayer(g, h)
		UpdateBoxes(g, h)
	}

	UpdateTokens(g, dt)
	CheckThresholds(g)
}

// Substeps is the number of equal physics steps dt is split into so that
// none is longer than the configured maximum.
func Substeps(dt float64) int {
	return max(1, int(math.Ceil(dt/cfg.Session.MaxSubstep)))
}

// CheckThresholds applies the score gates. Winning takes priority over a
// level-up reached by the same score.
func CheckThresholds(g *game.Game) {
	s := sessionOf(g)
	if s == nil || s.State != cfg.SessionPlaying {
		return
	}
	if s.Score >= cfg.Session.WinScore {
		FinishSession(g, cfg.OutcomeWin)
		return
	}
	if s.Level < cfg.MaxLevel() && s.Score >= cfg.Session.LevelScoreStep*s.Level {
		LevelUp(g)
	}
}

// LevelUp advances to the next tier and rebuilds its tokens and boxes.
func LevelUp(g *game.Game) {
	s := sessionOf(g)
	if s == nil || s.Level >= cfg.MaxLevel() {
		return
	}
	s.Level++
	def := cfg.LevelFor(s.Level)
	s.TimeRemaining = def.Duration
	s.LevelUpHold = cfg.Session.LevelUpHoldTime

	SpawnTokens(g, s.Level)
	SpawnBoxes(g, s.Level)
	if pe, ok := playerEntry(g); ok {
		components.Animation.Get(pe).Machine.PlayOnce(cfg.ClipStrong)
	}
	PlaySFX(g, cfg.SoundLevelUp)

	g.UI.SetLevel(s.Level)
	publishTimer(g, s)
	g.UI.SetLevelBanner(fmt.Sprintf("Level %d", s.Level))
	if level := levelOf(g); level != nil {
		level.DrawDistance = def.DrawDistance
		g.UI.SetDrawDistance(def.DrawDistance)
	}
}

// FinishSession ends the session once; later calls are ignored so a score
// is never recorded twice.
func FinishSession(g *game.Game, outcome cfg.Outcome) {
	s := sessionOf(g)
	if s == nil || s.State == cfg.SessionFinished {
		return
	}
	s.State = cfg.SessionFinished
	s.Outcome = outcome
	s.LevelUpHold = 0

	g.UI.SetHUDVisible(false)
	g.UI.SetLevelBanner("")
	g.UI.HideAll()

	text := loseText
	if outcome == cfg.OutcomeWin {
		text = winText
		if pe, ok := playerEntry(g); ok {
			components.Animation.Get(pe).Machine.PlayOnce(cfg.ClipCelebrate)
		}
	} else {
		PlaySFX(g, cfg.SoundGameOver)
		g.Audio.DuckBackground()
	}
	g.UI.ShowVictory(text, s.Score)

	if err := g.Scores.RecordScore(s.Score, s.Level, g.Now()); err != nil {
		log.Printf("Warning: Could not record score: %v", err)
	}
}

// FormatClock renders seconds as mm:ss, rounding down.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func publishTimer(g *game.Game, s *components.SessionData) {
	g.UI.SetTimer(FormatClock(s.TimeRemaining), s.TimeRemaining <= cfg.Session.UrgentTime)
}
