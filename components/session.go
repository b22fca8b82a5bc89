package components

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/yohamta/donburi"
)

// SessionData stores the current session state and score.
// This is a singleton component - only one session exists at a time.
type SessionData struct {
	State         cfg.SessionState
	Outcome       cfg.Outcome
	Score         int
	Level         int
	TimeRemaining float64
	Clock         float64 // simulated seconds since the session started
	Collected     [cfg.TokenTypeCount]int
	LevelUpHold   float64 // seconds left on the level-up banner; the countdown holds meanwhile
	Muted         bool
}

var Session = donburi.NewComponentType[SessionData]()

// InLevelUp reports whether the level-up banner is holding the simulation.
func (s *SessionData) InLevelUp() bool {
	return s.LevelUpHold > 0
}
