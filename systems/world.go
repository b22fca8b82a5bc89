package systems

import (
	"github.com/automoto/lostpath/components"
	"github.com/automoto/lostpath/game"
	"github.com/yohamta/donburi"
)

func sessionOf(g *game.Game) *components.SessionData {
	e, ok := components.Session.First(g.World)
	if !ok {
		return nil
	}
	return components.Session.Get(e)
}

func levelOf(g *game.Game) *components.LevelData {
	e, ok := components.Level.First(g.World)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}

func cameraOf(g *game.Game) *components.CameraData {
	e, ok := components.Camera.First(g.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(e)
}

func playerEntry(g *game.Game) (*donburi.Entry, bool) {
	return components.Player.First(g.World)
}

func getOrCreateAudio(g *game.Game) *components.AudioData {
	e, ok := components.Audio.First(g.World)
	if !ok {
		e = g.World.Entry(g.World.Create(components.Audio))
	}
	return components.Audio.Get(e)
}

// Ready reports whether the arena is loaded and indexed.
func Ready(g *game.Game) bool {
	return g.LoadErr == nil && levelOf(g) != nil
}
