package systems

import (
	"math"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/gamemath"
	"github.com/automoto/lostpath/spatial"
	"github.com/automoto/lostpath/systems/factory"
	"github.com/automoto/lostpath/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateBoxes advances every dynamic box by one substep of h seconds and
// separates the boxes near the player.
func UpdateBoxes(g *game.Game, h float64) {
	session := sessionOf(g)
	level := levelOf(g)
	if session == nil || level == nil {
		return
	}
	gravity := cfg.DifficultyFor(session.Level).Gravity

	components.Box.Each(g.World, func(e *donburi.Entry) {
		b := components.Box.Get(e)
		StepBox(b, level.Index, gravity, h)
		factory.SyncBox(g.World, b, components.Object.Get(e).Object)
	})

	entry, ok := playerEntry(g)
	if !ok {
		return
	}
	p := components.Player.Get(entry)
	for _, e := range nearbyBoxes(components.Object.Get(entry).Object) {
		b := components.Box.Get(e)
		if SeparateFromPlayer(b, p.Capsule) {
			factory.SyncBox(g.World, b, components.Object.Get(e).Object)
		}
	}
}

// StepBox integrates one box and resolves it against the level geometry.
func StepBox(b *components.BoxData, index *spatial.Octree, gravity, h float64) {
	b.Velocity.Y -= gravity * h
	b.Position = r3.Add(b.Position, r3.Scale(h, b.Velocity))

	contacts := 0
	for contacts < cfg.Box.MaxIterations {
		hit, ok := index.SphereIntersect(spatial.Sphere{Center: b.Position, Radius: cfg.Box.HalfSize})
		if !ok {
			break
		}
		b.Position = r3.Add(b.Position, r3.Scale(hit.Depth+cfg.Player.SkinEpsilon, hit.Normal))
		vn := r3.Dot(hit.Normal, b.Velocity)
		b.Velocity = r3.Scale(cfg.Box.Restitution, r3.Sub(b.Velocity, r3.Scale(vn, hit.Normal)))
		if hit.Normal.Y > cfg.Box.SettleNormalY && math.Abs(b.Velocity.Y) < cfg.Box.SettleSpeed {
			b.Velocity.Y = 0
		}
		contacts++
	}

	b.Velocity.X *= cfg.Box.GroundDamping
	b.Velocity.Z *= cfg.Box.GroundDamping
	if contacts == 0 {
		b.Velocity = r3.Scale(cfg.Box.AirDamping, b.Velocity)
	}
	b.Position = gamemath.ClampToBounds(b.Position, cfg.Session.PlayBounds)
}

// SeparateFromPlayer pushes b out of the circle around the capsule center
// on the XZ plane and bumps it outward. It reports whether b moved.
func SeparateFromPlayer(b *components.BoxData, c spatial.Capsule) bool {
	delta := gamemath.Horizontal(r3.Sub(b.Position, c.Center()))
	dist := r3.Norm(delta)
	minDist := cfg.Box.HalfSize + c.Radius
	if dist == 0 || dist >= minDist {
		return false
	}
	n := r3.Scale(1/dist, delta)
	b.Position = r3.Add(b.Position, r3.Scale(minDist-dist+cfg.Box.PlayerSkin, n))
	b.Velocity = r3.Add(b.Velocity, r3.Scale(cfg.Box.PlayerImpulse, n))
	b.Position = gamemath.ClampToBounds(b.Position, cfg.Session.PlayBounds)
	return true
}

// nearbyBoxes returns the box entries sharing broadphase cells with probe.
func nearbyBoxes(probe *resolv.Object) []*donburi.Entry {
	if probe == nil {
		return nil
	}
	check := probe.Check(0, 0, tags.ResolvBox)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tags.ResolvBox)
	boxes := make([]*donburi.Entry, 0, len(objs))
	for _, obj := range objs {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			boxes = append(boxes, e)
		}
	}
	return boxes
}

// SpawnBoxes replaces the boxes with the level's count, dropped from above
// at random positions.
func SpawnBoxes(g *game.Game, level int) {
	ClearBoxes(g)
	n := cfg.DifficultyFor(level).BoxCount
	for i := 0; i < n; i++ {
		pos := r3.Vec{
			X: (g.Rand.Float64()*2 - 1) * cfg.Box.SpawnSpread,
			Y: cfg.Box.SpawnMinY + g.Rand.Float64()*(cfg.Box.SpawnMaxY-cfg.Box.SpawnMinY),
			Z: (g.Rand.Float64()*2 - 1) * cfg.Box.SpawnSpread,
		}
		vel := r3.Vec{
			X: (g.Rand.Float64()*2 - 1) * cfg.Box.SpawnVelSpread,
			Z: (g.Rand.Float64()*2 - 1) * cfg.Box.SpawnVelSpread,
		}
		factory.CreateBox(g.World, pos, vel)
	}
}

// ClearBoxes removes every box and its broadphase object.
func ClearBoxes(g *game.Game) {
	var boxes []*donburi.Entry
	components.Box.Each(g.World, func(e *donburi.Entry) {
		boxes = append(boxes, e)
	})
	for _, e := range boxes {
		factory.DestroyBox(g.World, e)
	}
}

// BoxCount is the number of live boxes.
func BoxCount(g *game.Game) int {
	n := 0
	components.Box.Each(g.World, func(*donburi.Entry) { n++ })
	return n
}
