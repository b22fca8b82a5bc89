package systems

import (
	"math"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/gamemath"
	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateCamera orbits the camera around the player. Pointer movement only
// steers while playing; the player always faces the camera's yaw.
func UpdateCamera(g *game.Game, dt float64) {
	camera := cameraOf(g)
	session := sessionOf(g)
	entry, ok := playerEntry(g)
	if camera == nil || session == nil || !ok {
		return
	}
	player := components.Player.Get(entry)
	input := getOrCreateInput(g)

	if session.State == cfg.SessionPlaying {
		camera.Yaw -= input.PointerX * cfg.Camera.PointerSpeed
		camera.Pitch += input.PointerY * cfg.Camera.PointerSpeed
		camera.Pitch = gamemath.ClampFloat(camera.Pitch, -cfg.Camera.PitchLimit, cfg.Camera.PitchLimit)
		player.Yaw = camera.Yaw
	}

	// Collection bump
	camera.Bump = math.Max(0, camera.Bump-cfg.Token.CameraBumpDecay*dt)
	lift := math.Sin(camera.Bump*math.Pi) * cfg.Token.CameraBumpLift

	target := r3.Add(player.Position, r3.Vec{Y: cfg.Camera.Height})
	desired := r3.Add(target, OrbitOffset(camera.Yaw, camera.Pitch, cfg.Camera.Distance))
	desired.Y += lift

	camera.Target = target
	camera.Position = r3.Add(camera.Position, r3.Scale(cfg.Camera.FollowSmoothing, r3.Sub(desired, camera.Position)))
}

// OrbitOffset is the camera position relative to its target: behind the
// yaw forward direction, raised by pitch.
func OrbitOffset(yaw, pitch, distance float64) r3.Vec {
	back := r3.Scale(-distance*math.Cos(pitch), gamemath.YawForward(yaw))
	back.Y = distance * math.Sin(pitch)
	return back
}
