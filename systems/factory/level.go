package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/leveldata"
	"github.com/automoto/lostpath/spatial"
	"github.com/yohamta/donburi"
)

// CreateLevel indexes the arena mesh. The octree is built once here and
// shared by every session.
func CreateLevel(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.Set(level, &components.LevelData{
		Arena:        arena,
		Index:        spatial.NewOctree(arena.Triangles),
		DrawDistance: cfg.LevelFor(1).DrawDistance,
	})
	return level
}
