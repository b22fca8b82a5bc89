package components

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the update pass
// (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
