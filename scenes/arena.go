package scenes

import (
	"image/color"
	"log"
	"runtime/debug"
	"sync"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/leveldata"
	"github.com/automoto/lostpath/sound"
	"github.com/automoto/lostpath/systems"
	"github.com/automoto/lostpath/systems/factory"
	"github.com/automoto/lostpath/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// ArenaConfig is everything main resolves before the first frame.
type ArenaConfig struct {
	Seed    uint64
	Arena   *leveldata.Arena
	LoadErr error
	Store   *systems.Store // nil disables high scores and saved settings
	Audio   *sound.Player  // nil runs silent
}

// ArenaScene owns the game aggregate and runs it through a donburi ECS.
type ArenaScene struct {
	ecs     *ecs.ECS
	game    *game.Game
	input   *ui.Input
	overlay *ui.Overlay
	config  ArenaConfig
	dt      float64
	muted   bool
	once    sync.Once
}

func NewArenaScene(config ArenaConfig) *ArenaScene {
	return &ArenaScene{config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.input.Poll()
	as.step()
	as.overlay.Update(as.dt)
	as.persistMute()
}

// step runs one frame. A panic is logged and the next frame starts fresh.
func (as *ArenaScene) step() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: frame update panicked: %v\n%s", r, debug.Stack())
		}
	}()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	g := game.New(as.config.Seed)
	as.game = g
	as.dt = 1.0 / float64(ebiten.TPS())

	as.input = ui.NewInput()
	g.Input = as.input

	as.overlay = ui.NewOverlay(nil)
	g.UI = as.overlay
	if as.config.Store != nil {
		g.Scores = as.config.Store
		as.overlay.Scores = as.config.Store
	}
	if as.config.Audio != nil {
		g.Audio = as.config.Audio
	}

	g.LoadErr = as.config.LoadErr
	if g.LoadErr == nil && as.config.Arena != nil {
		factory.CreateWorld(g.World, as.config.Arena)
	}
	as.overlay.LoadErr = g.LoadErr
	as.applySettings()

	as.ecs = ecs.NewECS(g.World)

	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateInput(g) })
	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateControls(g) })
	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateSession(g, as.dt) })
	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateAnimation(g, as.dt) })
	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateCamera(g, as.dt) })
	as.ecs.AddSystem(func(*ecs.ECS) { systems.UpdateAudio(g) })

	as.ecs.AddRenderer(layerWorld, func(e *ecs.ECS, screen *ebiten.Image) {
		ui.DrawWorld(e.World, screen, as.overlay.DrawDistance())
	})
	as.ecs.AddRenderer(layerOverlay, func(_ *ecs.ECS, screen *ebiten.Image) {
		as.overlay.Draw(screen)
	})

	g.UI.ShowMenu()
	if cfg.Debug.SkipMenu {
		if err := systems.StartSession(g); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// applySettings restores the saved mute flag.
func (as *ArenaScene) applySettings() {
	if as.config.Store == nil {
		return
	}
	saved, err := as.config.Store.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	as.muted = saved.Muted
	if e, ok := components.Session.First(as.game.World); ok {
		components.Session.Get(e).Muted = saved.Muted
	}
	as.game.Audio.SetMuted(saved.Muted)
}

// persistMute saves settings when the player toggles mute.
func (as *ArenaScene) persistMute() {
	e, ok := components.Session.First(as.game.World)
	if !ok {
		return
	}
	muted := components.Session.Get(e).Muted
	if muted == as.muted {
		return
	}
	as.muted = muted
	if as.config.Store == nil {
		return
	}
	if err := as.config.Store.SaveSettings(systems.SavedSettings{Muted: muted}); err != nil {
		log.Printf("Warning: %v", err)
	}
}
