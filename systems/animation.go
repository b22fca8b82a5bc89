package systems

import (
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
)

// UpdateAnimation advances the player's clip machine. Playback freezes
// while paused.
func UpdateAnimation(g *game.Game, dt float64) {
	session := sessionOf(g)
	entry, ok := playerEntry(g)
	if session == nil || !ok || session.State == cfg.SessionPaused {
		return
	}
	components.Animation.Get(entry).Machine.Update(dt)
}
