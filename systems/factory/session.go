package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/yohamta/donburi"
)

// CreateSession creates the session singleton in the menu state.
func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.Set(session, &components.SessionData{
		State:         cfg.SessionMenu,
		Level:         1,
		TimeRemaining: cfg.LevelFor(1).Duration,
	})
	return session
}
