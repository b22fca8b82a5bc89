package factory

import (
	"math"

	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	"github.com/automoto/lostpath/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceCell is the broadphase cell size in world units.
const spaceCell = 2

// CreateSpace builds the XZ broadphase covering the arena.
func CreateSpace(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	width := int(math.Ceil(arena.Width))
	depth := int(math.Ceil(arena.Depth))
	components.Space.Set(space, resolv.NewSpace(width, depth, spaceCell, spaceCell))
	return space
}
