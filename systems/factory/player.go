package factory

import (
	"math"

	"github.com/automoto/lostpath/animations"
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/spatial"
	"github.com/automoto/lostpath/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// ProbeReach is the half extent of the player's broadphase probe. It covers
// the push ray plus a box's half diagonal.
var ProbeReach = cfg.Player.PushRayRange + 2*cfg.Box.HalfSize

// CreatePlayer spawns the player at spawn with its broadphase probe. The
// level and space singletons must already exist.
func CreatePlayer(w donburi.World, spawn r3.Vec) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	pd := &components.PlayerData{}
	ResetPlayer(pd, spawn)
	components.Player.Set(player, pd)

	size := 2 * ProbeReach
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	SyncProbe(w, pd, obj)

	components.Animation.Set(player, &components.AnimationData{
		Machine: animations.NewMachine(cfg.ClipIdle),
	})
	return player
}

// ResetPlayer puts the capsule back at spawn, falling gently so it settles
// on the floor within a few substeps.
func ResetPlayer(p *components.PlayerData, spawn r3.Vec) {
	start := r3.Add(spawn, r3.Vec{Y: cfg.Player.StartY})
	p.Capsule = spatial.Capsule{
		Start:  start,
		End:    r3.Add(start, r3.Vec{Y: cfg.Player.SegmentLen}),
		Radius: cfg.Player.Radius,
	}
	p.VerticalVelocity = cfg.Player.SpawnVelY
	p.OnFloor = false
	p.LastOnFloor = math.Inf(-1)
	p.Pushing = false
	SyncVisual(p)
}

// SyncVisual places the visual position half a segment below the capsule
// start.
func SyncVisual(p *components.PlayerData) {
	p.Position = r3.Sub(p.Capsule.Start, r3.Vec{Y: cfg.Player.SegmentLen / 2})
}

// SyncProbe centers the broadphase probe on the player.
func SyncProbe(w donburi.World, p *components.PlayerData, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	x, y := components.Level.Get(levelEntry).SpacePoint(p.Position)
	obj.X = x - ProbeReach
	obj.Y = y - ProbeReach
	obj.Update()
}
