package game

import (
	"time"

	cfg "github.com/automoto/lostpath/config"
)

// Presenter is the HUD and overlay surface. The core only writes to it.
type Presenter interface {
	SetScore(score int)
	SetLevel(level int)
	SetTimer(clock string, urgent bool)
	SetTokenCount(t cfg.TokenType, n int)
	ShowMenu()
	ShowPause()
	ShowVictory(text string, score int)
	HideAll()
	SetHUDVisible(visible bool)
	SetLevelBanner(text string)
	SetDrawDistance(d float64)
}

// Audio triggers are fire and forget.
type Audio interface {
	PlayBackground()
	PlayTake()
	PlayLevelUp()
	PlayPush()
	PlayGameOver()
	SetMuted(muted bool)
	PauseBackground(paused bool)
	DuckBackground()
}

// ScoreEntry is one row of the high score list.
type ScoreEntry struct {
	Score int       `json:"score" csv:"score"`
	Level int       `json:"level" csv:"level"`
	At    time.Time `json:"at" csv:"at"`
}

// ScoreBoard keeps the capped, descending high score list.
type ScoreBoard interface {
	RecordScore(score, level int, at time.Time) error
	ListScores() ([]ScoreEntry, error)
}

// InputSource reports the held state of each action and the pointer
// movement since the previous poll.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
	PointerDelta() (dx, dy float64)
}

type nopPresenter struct{}

func (nopPresenter) SetScore(int)                     {}
func (nopPresenter) SetLevel(int)                     {}
func (nopPresenter) SetTimer(string, bool)            {}
func (nopPresenter) SetTokenCount(cfg.TokenType, int) {}
func (nopPresenter) ShowMenu()                        {}
func (nopPresenter) ShowPause()                       {}
func (nopPresenter) ShowVictory(string, int)          {}
func (nopPresenter) HideAll()                         {}
func (nopPresenter) SetHUDVisible(bool)               {}
func (nopPresenter) SetLevelBanner(string)            {}
func (nopPresenter) SetDrawDistance(float64)          {}

type nopAudio struct{}

func (nopAudio) PlayBackground()      {}
func (nopAudio) PlayTake()            {}
func (nopAudio) PlayLevelUp()         {}
func (nopAudio) PlayPush()            {}
func (nopAudio) PlayGameOver()        {}
func (nopAudio) SetMuted(bool)        {}
func (nopAudio) PauseBackground(bool) {}
func (nopAudio) DuckBackground()      {}

type nopScores struct{}

func (nopScores) RecordScore(int, int, time.Time) error { return nil }
func (nopScores) ListScores() ([]ScoreEntry, error)     { return nil, nil }

type nopInput struct{}

func (nopInput) Pressed(cfg.ActionID) bool        { return false }
func (nopInput) PointerDelta() (float64, float64) { return 0, 0 }
