package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/leveldata"
	"github.com/yohamta/donburi"
)

// CreateWorld creates every singleton a session needs for arena. The level
// and space come first since the player's probe is mirrored into them.
func CreateWorld(w donburi.World, arena *leveldata.Arena) {
	CreateLevel(w, arena)
	CreateSpace(w, arena)
	CreateSession(w)
	CreateCamera(w)
	archetypes.Input.Spawn(w)
	archetypes.Audio.Spawn(w)
	CreatePlayer(w, arena.Spawn)
}
