package systems

import (
	"math"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/gamemath"
	"github.com/automoto/lostpath/spatial"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// PushBoxesForward applies the push impulse along the player's facing. The
// first box hit by the forward ray gets the full push force; boxes inside
// the short cone in front of the player get a weaker nudge. It reports
// whether any box was pushed.
func PushBoxesForward(g *game.Game) bool {
	entry, ok := playerEntry(g)
	session := sessionOf(g)
	if !ok || session == nil {
		return false
	}
	p := components.Player.Get(entry)
	force := cfg.DifficultyFor(session.Level).PushForce

	origin := r3.Add(p.Position, r3.Vec{Y: cfg.Player.PushOriginY})
	forward := gamemath.YawForward(p.Yaw)
	candidates := nearbyBoxes(components.Object.Get(entry).Object)

	pushed := false
	if hit := firstRayHit(candidates, origin, forward); hit != nil {
		pushBox(components.Box.Get(hit), forward, force)
		pushed = true
	}
	for _, e := range candidates {
		b := components.Box.Get(e)
		delta := r3.Sub(b.Position, origin)
		dir, ok := gamemath.SafeUnit(delta)
		if !ok || r3.Norm(delta) >= cfg.Player.PushConeRange {
			continue
		}
		if r3.Dot(forward, dir) > cfg.Player.PushConeCos {
			pushBox(b, forward, force*cfg.Player.PushConeScale)
			pushed = true
		}
	}
	return pushed
}

func firstRayHit(candidates []*donburi.Entry, origin, dir r3.Vec) *donburi.Entry {
	var nearest *donburi.Entry
	best := math.Inf(1)
	half := r3.Vec{X: cfg.Box.HalfSize, Y: cfg.Box.HalfSize, Z: cfg.Box.HalfSize}
	for _, e := range candidates {
		b := components.Box.Get(e)
		box := r3.Box{Min: r3.Sub(b.Position, half), Max: r3.Add(b.Position, half)}
		if t, ok := spatial.RayBox(origin, dir, box, cfg.Player.PushRayRange); ok && t < best {
			best = t
			nearest = e
		}
	}
	return nearest
}

// pushBox adds impulse along forward without ever driving the box down.
func pushBox(b *components.BoxData, forward r3.Vec, impulse float64) {
	b.Velocity = r3.Add(b.Velocity, r3.Scale(impulse, forward))
	b.Velocity.Y = math.Min(0, b.Velocity.Y)
	b.Velocity = gamemath.ClampLength(b.Velocity, cfg.Box.MaxPushSpeed)
}
