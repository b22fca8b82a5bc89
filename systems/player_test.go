package systems

import (
	"math"
	"testing"

	"github.com/automoto/lostpath/animations"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/gamemath"
	"github.com/automoto/lostpath/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

// slope is a wide ramp whose normal has Y component 0.9.
func slope() *spatial.Octree {
	ny := 0.9
	nz := math.Sqrt(1 - ny*ny)
	// Surface y = -(nz/ny) z, spanned by X and the in-plane direction.
	k := nz / ny
	p := func(x, z float64) r3.Vec { return r3.Vec{X: x, Y: -k * z, Z: z} }
	return spatial.NewOctree([]r3.Triangle{
		{p(-5, -5), p(-5, 5), p(5, 5)},
		{p(-5, -5), p(5, 5), p(5, -5)},
	})
}

func TestResolvePlayerCollisionLandsOnFloor(t *testing.T) {
	index := slope()
	p := &components.PlayerData{
		Capsule: spatial.Capsule{
			Start:  r3.Vec{Y: 0.25},
			End:    r3.Vec{Y: 1.25},
			Radius: 0.35,
		},
		VerticalVelocity: -6,
		LastOnFloor:      math.Inf(-1),
	}

	ResolvePlayerCollision(p, index, 3.5)

	if !p.OnFloor {
		t.Fatalf("OnFloor = false after landing on a 0.9 slope")
	}
	if p.VerticalVelocity < 0 {
		t.Errorf("VerticalVelocity = %v, want >= 0", p.VerticalVelocity)
	}
	if p.LastOnFloor != 3.5 {
		t.Errorf("LastOnFloor = %v, want 3.5", p.LastOnFloor)
	}
	if hit, ok := index.CapsuleIntersect(p.Capsule); ok && hit.Depth > 1e-6 {
		t.Errorf("capsule still penetrates by %v", hit.Depth)
	}
}

func TestResolvePlayerCollisionInAir(t *testing.T) {
	p := &components.PlayerData{
		Capsule:          spatial.Capsule{Start: r3.Vec{Y: 3}, End: r3.Vec{Y: 4}, Radius: 0.35},
		VerticalVelocity: -2,
		OnFloor:          true,
	}
	ResolvePlayerCollision(p, slope(), 1)
	if p.OnFloor || p.VerticalVelocity != -2 {
		t.Errorf("airborne player: OnFloor %v vy %v", p.OnFloor, p.VerticalVelocity)
	}
}

func TestPlayerSettlesOnArenaFloor(t *testing.T) {
	h := started(t)
	for i := 0; i < 60; i++ {
		h.frame(frameDT)
	}
	p := h.player()
	if !p.OnFloor {
		t.Fatalf("player not on floor after a second")
	}
	if math.Abs(p.Capsule.Start.Y-cfg.Player.Radius) > 0.01 {
		t.Errorf("capsule start y = %v, want about %v", p.Capsule.Start.Y, cfg.Player.Radius)
	}
	want := p.Capsule.Start.Y - cfg.Player.SegmentLen/2
	if p.Position.Y != want {
		t.Errorf("visual y = %v, want %v", p.Position.Y, want)
	}
}

func TestJumpCoyoteWindow(t *testing.T) {
	tests := []struct {
		name    string
		onFloor bool
		since   float64 // seconds since last on floor
		locked  bool
		want    bool
	}{
		{"on floor", true, 0, false, true},
		{"inside grace window", false, 0.1, false, true},
		{"grace window expired", false, 0.2, false, false},
		{"never on floor", false, math.Inf(1), false, false},
		{"animation locked", true, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := 10.0
			p := &components.PlayerData{OnFloor: tt.onFloor, LastOnFloor: now - tt.since}
			m := animations.NewMachine(cfg.ClipIdle)
			if tt.locked {
				m.PlayOnce(cfg.ClipTake)
			}
			input := &components.InputData{}
			input.Current[cfg.ActionJump] = true

			got := tryJump(p, m, input, now)
			if got != tt.want {
				t.Fatalf("tryJump = %v, want %v", got, tt.want)
			}
			if !got {
				return
			}
			if p.VerticalVelocity != cfg.Player.JumpSpeed || p.OnFloor {
				t.Errorf("after jump vy %v onFloor %v", p.VerticalVelocity, p.OnFloor)
			}
			if m.Current() != cfg.ClipJump || m.State() != animations.Locked {
				t.Errorf("clip %v state %v, want locked jump", m.Current(), m.State())
			}
		})
	}
}

func TestJumpOncePerPress(t *testing.T) {
	p := &components.PlayerData{LastOnFloor: 5}
	input := &components.InputData{}
	input.Current[cfg.ActionJump] = true

	if !tryJump(p, animations.NewMachine(cfg.ClipIdle), input, 5.01) {
		t.Fatalf("first jump inside the grace window failed")
	}
	// Same frame, a fresh machine and still within 140ms of the old floor time.
	if tryJump(p, animations.NewMachine(cfg.ClipIdle), input, 5.02) {
		t.Errorf("second jump from the same press or spent grace window")
	}
}

func TestMovementIntent(t *testing.T) {
	tests := []struct {
		name string
		held []cfg.ActionID
		dir  r3.Vec
		clip cfg.ClipID
	}{
		{"none", nil, r3.Vec{}, cfg.ClipIdle},
		{"forward", []cfg.ActionID{cfg.ActionMoveForward}, r3.Vec{Z: 1}, cfg.ClipJog},
		{"back", []cfg.ActionID{cfg.ActionMoveBack}, r3.Vec{Z: -1}, cfg.ClipJog},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, r3.Vec{X: 1}, cfg.ClipWalkLeft},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, r3.Vec{X: -1}, cfg.ClipWalkRight},
		{"forward right", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveRight}, r3.Vec{X: -math.Sqrt2 / 2, Z: math.Sqrt2 / 2}, cfg.ClipJog},
		{"cancelled", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveBack}, r3.Vec{}, cfg.ClipJog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			for _, id := range tt.held {
				input.Current[id] = true
			}
			dir, clip := movementIntent(input, 0)
			if clip != tt.clip {
				t.Errorf("clip = %v, want %v", clip, tt.clip)
			}
			if r3.Norm(r3.Sub(dir, tt.dir)) > 1e-9 {
				t.Errorf("dir = %v, want %v", dir, tt.dir)
			}
		})
	}
}

func TestOneShotBlocksMovementClip(t *testing.T) {
	h := started(t)
	h.input.held[cfg.ActionMoveForward] = true

	strong := cfg.Clips[cfg.ClipStrong].Duration
	for elapsed := 0.0; elapsed < strong-0.1; elapsed += frameDT {
		h.frame(frameDT)
		if h.machineClip() != cfg.ClipStrong {
			t.Fatalf("at %.2fs clip = %v, want the strong gesture", elapsed, h.machineClip())
		}
	}
	for i := 0; i < 20; i++ {
		h.frame(frameDT)
	}
	if h.machineClip() != cfg.ClipJog {
		t.Errorf("clip after the gesture = %v, want jog", h.machineClip())
	}
}

func TestFallResetsToSpawn(t *testing.T) {
	h := started(t)
	h.placePlayer(r3.Vec{X: 3, Y: -30, Z: 3})
	UpdatePlayer(h.g, cfg.Session.MaxSubstep)

	p := h.player()
	if p.Capsule.Start.Y < 0 || math.Abs(p.Position.X) > 1e-9 || math.Abs(p.Position.Z) > 1e-9 {
		t.Errorf("player at %v after falling out, want back at spawn", p.Position)
	}
}

func TestPlayerFacesCamera(t *testing.T) {
	h := started(t)
	h.input.dx = -100
	h.frame(frameDT)
	want := 100 * cfg.Camera.PointerSpeed
	if got := h.player().Yaw; math.Abs(got-want) > 1e-9 {
		t.Errorf("player yaw = %v, want %v", got, want)
	}
}

func TestOneShotRootsPlayer(t *testing.T) {
	h := started(t)
	h.input.held[cfg.ActionMoveForward] = true

	start := gamemath.Horizontal(h.player().Position)
	for i := 0; i < 30; i++ {
		h.frame(frameDT)
	}
	if d := gamemath.HorizontalDistance(h.player().Position, start); d > 1e-9 {
		t.Fatalf("moved %v during the strong gesture, want 0", d)
	}

	for elapsed := 0.0; elapsed < cfg.Clips[cfg.ClipStrong].Duration+0.2; elapsed += frameDT {
		h.frame(frameDT)
	}
	if d := gamemath.HorizontalDistance(h.player().Position, start); d < 0.5 {
		t.Errorf("moved %v after the gesture ended, want the player to walk", d)
	}
}
