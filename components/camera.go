package components

import (
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type CameraData struct {
	Position r3.Vec
	Target   r3.Vec
	Yaw      float64
	Pitch    float64
	Bump     float64 // collection bump timer, decays to 0
}

var Camera = donburi.NewComponentType[CameraData]()
