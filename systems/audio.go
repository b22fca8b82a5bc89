package systems

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
)

// PlaySFX queues a sound effect to be played at the end of the frame.
func PlaySFX(g *game.Game, id cfg.SoundID) {
	audio := getOrCreateAudio(g)
	// A sound already queued this frame is not layered on itself.
	for _, queued := range audio.PendingSFX {
		if queued == id {
			return
		}
	}
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// UpdateAudio drains the queued effects into the audio collaborator.
func UpdateAudio(g *game.Game) {
	audio := getOrCreateAudio(g)
	for _, id := range audio.PendingSFX {
		switch id {
		case cfg.SoundTake:
			g.Audio.PlayTake()
		case cfg.SoundLevelUp:
			g.Audio.PlayLevelUp()
		case cfg.SoundPush:
			g.Audio.PlayPush()
		case cfg.SoundGameOver:
			g.Audio.PlayGameOver()
		}
	}
	audio.PendingSFX = audio.PendingSFX[:0]
}
