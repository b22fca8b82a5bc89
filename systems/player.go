package systems

import (
	"math"

	"github.com/automoto/lostpath/animations"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/gamemath"
	"github.com/automoto/lostpath/spatial"
	"github.com/automoto/lostpath/systems/factory"
	"gonum.org/v1/gonum/spatial/r3"
)

// UpdatePlayer advances the player controller by one physics substep of h
// seconds. The session clock must already include this substep.
func UpdatePlayer(g *game.Game, h float64) {
	entry, ok := playerEntry(g)
	session := sessionOf(g)
	level := levelOf(g)
	if !ok || session == nil || level == nil {
		return
	}
	p := components.Player.Get(entry)
	machine := components.Animation.Get(entry).Machine
	input := getOrCreateInput(g)
	diff := cfg.DifficultyFor(session.Level)

	tryJump(p, machine, input, session.Clock)

	if GetAction(input, cfg.ActionPush).Pressed {
		pushed := PushBoxesForward(g)
		if pushed && !p.Pushing {
			PlaySFX(g, cfg.SoundPush)
		}
		p.Pushing = pushed
		machine.Request(cfg.ClipPush)
	} else {
		p.Pushing = false
		move, clip := movementIntent(input, p.Yaw)
		// A one-shot roots the player; the intent is still recorded so the
		// machine resumes it when the clip ends.
		if machine.State() == animations.Free {
			p.Capsule.Translate(r3.Scale(diff.Speed*h, move))
		}
		machine.Request(clip)
	}

	p.VerticalVelocity -= diff.Gravity * h
	p.Capsule.Translate(r3.Vec{Y: p.VerticalVelocity * h})

	ResolvePlayerCollision(p, level.Index, session.Clock)

	if p.Capsule.Start.Y < cfg.Player.FallResetY {
		factory.ResetPlayer(p, level.Arena.Spawn)
	}
	factory.SyncVisual(p)
	factory.SyncProbe(g.World, p, components.Object.Get(entry).Object)
}

// tryJump launches the player on a fresh jump press while the animation
// machine is free and the player is on the floor or still inside the coyote
// window.
func tryJump(p *components.PlayerData, m *animations.Machine, input *components.InputData, now float64) bool {
	if m.State() != animations.Free {
		return false
	}
	if !p.OnFloor && now-p.LastOnFloor >= cfg.Player.CoyoteTime {
		return false
	}
	if !ConsumeAction(input, cfg.ActionJump) {
		return false
	}
	p.VerticalVelocity = cfg.Player.JumpSpeed
	p.OnFloor = false
	// Spend the grace window so it cannot grant a second jump.
	p.LastOnFloor = math.Inf(-1)
	m.PlayOnce(cfg.ClipJump)
	return true
}

// movementIntent returns the unit horizontal direction of the held movement
// keys in the yaw basis and the looping clip that matches them.
func movementIntent(input *components.InputData, yaw float64) (r3.Vec, cfg.ClipID) {
	f := input.Current[cfg.ActionMoveForward]
	b := input.Current[cfg.ActionMoveBack]
	l := input.Current[cfg.ActionMoveLeft]
	r := input.Current[cfg.ActionMoveRight]

	forward := gamemath.YawForward(yaw)
	right := gamemath.YawRight(yaw)
	var move r3.Vec
	if f {
		move = r3.Add(move, forward)
	}
	if b {
		move = r3.Sub(move, forward)
	}
	if l {
		move = r3.Sub(move, right)
	}
	if r {
		move = r3.Add(move, right)
	}

	clip := cfg.ClipIdle
	switch {
	case (l || r) && !(f || b):
		clip = cfg.ClipWalkLeft
		if r {
			clip = cfg.ClipWalkRight
		}
	case f || b || l || r:
		clip = cfg.ClipJog
	}

	dir, _ := gamemath.SafeUnit(move)
	return dir, clip
}

// ResolvePlayerCollision pushes the capsule out of the level geometry and
// updates the floor state. now is the session clock in seconds.
func ResolvePlayerCollision(p *components.PlayerData, index *spatial.Octree, now float64) {
	p.OnFloor = false
	hit, ok := index.CapsuleIntersect(p.Capsule)
	if !ok {
		return
	}
	p.Capsule.Translate(r3.Scale(hit.Depth+cfg.Player.SkinEpsilon, hit.Normal))
	switch {
	case hit.Normal.Y > cfg.Player.FloorNormalY:
		p.OnFloor = true
		p.LastOnFloor = now
		p.VerticalVelocity = math.Max(0, p.VerticalVelocity)
	case hit.Normal.Y < -cfg.Player.FloorNormalY:
		// Ceiling.
		p.VerticalVelocity = math.Min(0, p.VerticalVelocity)
	}
}
