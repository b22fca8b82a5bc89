package components

import (
	"github.com/automoto/lostpath/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Machine *animations.Machine
}

var Animation = donburi.NewComponentType[AnimationData]()
