package components

import (
	"github.com/automoto/lostpath/leveldata"
	"github.com/automoto/lostpath/spatial"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type LevelData struct {
	Arena        *leveldata.Arena
	Index        *spatial.Octree
	DrawDistance float64
}

var Level = donburi.NewComponentType[LevelData]()

// SpacePoint maps a world XZ position into broadphase coordinates, which
// start at the arena's min corner.
func (l *LevelData) SpacePoint(p r3.Vec) (x, y float64) {
	return p.X + l.Arena.Width/2, p.Z + l.Arena.Depth/2
}
