package components

import (
	"github.com/automoto/lostpath/spatial"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// PlayerData is the controller state of the single player character.
type PlayerData struct {
	Capsule          spatial.Capsule
	Position         r3.Vec  // visual position, synced from the capsule after physics
	Yaw              float64 // facing, follows the camera
	VerticalVelocity float64
	OnFloor          bool
	LastOnFloor      float64 // session clock seconds; -Inf when the grace window is spent
	Pushing          bool
}

var Player = donburi.NewComponentType[PlayerData]()
