package ui

import (
	"image/color"
	"math"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// view maps world XZ onto the screen, north up, centered on the camera
// target.
type view struct {
	center r3.Vec
	cx, cy float32
	ppu    float64
}

func (v view) point(p r3.Vec) (float32, float32) {
	return v.cx + float32((p.X-v.center.X)*v.ppu), v.cy - float32((p.Z-v.center.Z)*v.ppu)
}

func (v view) length(d float64) float32 { return float32(d * v.ppu) }

// DrawWorld renders the arena, boxes, tokens and player from above.
// Entities past drawDistance from the player are hidden and those just
// inside it fade.
func DrawWorld(w donburi.World, screen *ebiten.Image, drawDistance float64) {
	screen.Fill(cfg.Menu.BackgroundColor)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	v := view{
		cx:  float32(screen.Bounds().Dx()) / 2,
		cy:  float32(screen.Bounds().Dy()) / 2,
		ppu: cfg.Camera.PixelsPerUnit,
	}
	if cam, ok := components.Camera.First(w); ok {
		v.center = components.Camera.Get(cam).Target
	}

	var eye r3.Vec
	playerEntry, hasPlayer := components.Player.First(w)
	if hasPlayer {
		eye = components.Player.Get(playerEntry).Position
	}
	alpha := func(p r3.Vec) float32 {
		return float32(gamemath.DistanceFade(gamemath.HorizontalDistance(p, eye), drawDistance, cfg.Camera.DrawDistanceFade))
	}

	drawArena(screen, v, level)

	components.Box.Each(w, func(e *donburi.Entry) {
		b := components.Box.Get(e)
		a := alpha(b.Position)
		if a <= 0 {
			return
		}
		half := cfg.Box.HalfSize
		// Shadow grows apart from the box as it rises.
		sx, sy := v.point(r3.Vec{X: b.Position.X - half, Z: b.Position.Z + half})
		vector.FillRect(screen, sx, sy, v.length(2*half), v.length(2*half), withAlpha(cfg.Colors.Shadow, a), false)
		lift := v.length(math.Max(0, b.Position.Y-half) * 0.5)
		vector.FillRect(screen, sx-lift, sy-lift, v.length(2*half), v.length(2*half), withAlpha(cfg.Colors.Box, a), false)
		vector.StrokeRect(screen, sx-lift, sy-lift, v.length(2*half), v.length(2*half), 1, withAlpha(cfg.Colors.Shadow, a), false)
	})

	components.Token.Each(w, func(e *donburi.Entry) {
		t := components.Token.Get(e)
		a := alpha(t.Position) * float32(t.Fade)
		if a <= 0 {
			return
		}
		x, y := v.point(t.Position)
		r := v.length(0.3 + 0.15*t.Glow)
		// Spin shows as a pulsing width.
		r *= float32(0.8 + 0.2*math.Abs(math.Cos(t.Spin)))
		lift := v.length(t.Position.Y - t.RestHeight)
		if t.Glow > 0 {
			vector.FillCircle(screen, x, y-lift, r*1.6, withAlpha(cfg.HUD.TokenColors[t.Type], a*float32(t.Glow)*0.4), true)
		}
		vector.FillCircle(screen, x, y-lift, r, withAlpha(cfg.HUD.TokenColors[t.Type], a), true)
	})

	if hasPlayer {
		p := components.Player.Get(playerEntry)
		x, y := v.point(p.Position)
		r := v.length(p.Capsule.Radius)
		lift := v.length(math.Max(0, p.Position.Y) * 0.5)
		vector.FillCircle(screen, x, y, r, cfg.Colors.Shadow, true)
		vector.FillCircle(screen, x, y-lift, r, cfg.Colors.Player, true)

		fx, fy := v.point(r3.Add(p.Position, r3.Scale(p.Capsule.Radius*2, gamemath.YawForward(p.Yaw))))
		vector.StrokeLine(screen, x, y-lift, fx, fy-lift, 2, cfg.Colors.Facing, true)
	}
}

func drawArena(screen *ebiten.Image, v view, level *components.LevelData) {
	arena := level.Arena
	x, y := v.point(r3.Vec{X: -arena.Width / 2, Z: arena.Depth / 2})
	vector.FillRect(screen, x, y, v.length(arena.Width), v.length(arena.Depth), cfg.Colors.Floor, false)

	top := arena.Bounds().Max.Y
	for _, b := range arena.Blocks {
		bx, by := v.point(r3.Vec{X: b.MinX, Z: b.MaxZ})
		shade := float32(0.6)
		if top > 0 {
			shade += 0.4 * float32(b.Height/top)
		}
		vector.FillRect(screen, bx, by, v.length(b.MaxX-b.MinX), v.length(b.MaxZ-b.MinZ), darken(cfg.Colors.Wall, shade), false)
	}
}

// darken scales the color channels of c and keeps its alpha.
func darken(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{R: uint8(float32(c.R) * f), G: uint8(float32(c.G) * f), B: uint8(float32(c.B) * f), A: c.A}
}
