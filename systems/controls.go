package systems

import (
	"log"

	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
)

// UpdateControls maps the menu, pause and mute actions onto session
// transitions. Must run after UpdateInput and before UpdateSession.
func UpdateControls(g *game.Game) {
	input := getOrCreateInput(g)
	s := sessionOf(g)
	if s == nil {
		return
	}

	if ConsumeAction(input, cfg.ActionMute) {
		s.Muted = !s.Muted
		g.Audio.SetMuted(s.Muted)
	}

	switch s.State {
	case cfg.SessionMenu, cfg.SessionFinished:
		if ConsumeAction(input, cfg.ActionMenuSelect) {
			if err := StartSession(g); err != nil {
				log.Printf("Warning: %v", err)
			}
			return
		}
		if s.State == cfg.SessionFinished && ConsumeAction(input, cfg.ActionMenuBack) {
			GoHome(g)
		}
	case cfg.SessionPlaying:
		if ConsumeAction(input, cfg.ActionPause) {
			TogglePause(g)
		}
	case cfg.SessionPaused:
		if ConsumeAction(input, cfg.ActionPause) || ConsumeAction(input, cfg.ActionMenuSelect) {
			TogglePause(g)
			return
		}
		if ConsumeAction(input, cfg.ActionMenuBack) {
			GoHome(g)
		}
	}
}
