package components

import (
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoxData is a dynamic box. Its broadphase mirror lives in the Object
// component on the same entry.
type BoxData struct {
	Position r3.Vec
	Velocity r3.Vec
}

var Box = donburi.NewComponentType[BoxData]()
