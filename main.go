package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/automoto/lostpath/assets"
	"github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/fonts"
	"github.com/automoto/lostpath/scenes"
	"github.com/automoto/lostpath/sound"
	"github.com/automoto/lostpath/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

func NewGame(arenaCfg scenes.ArenaConfig) *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewArenaScene(arenaCfg),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	dumpTuning := flag.Bool("dump-tuning", false, "print the active tuning as YAML and exit")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a session immediately")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuningFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *dumpTuning {
		if err := config.CurrentTuning().WriteYAML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	config.Debug.Seed = *seed
	if config.Debug.Seed == 0 {
		config.Debug.Seed = uint64(time.Now().UnixNano())
	}

	arenaCfg := scenes.ArenaConfig{Seed: config.Debug.Seed}

	arena, err := assets.LoadArena()
	if err != nil {
		log.Printf("Warning: %v", err)
		arenaCfg.LoadErr = err
	}
	arenaCfg.Arena = arena

	// Initialize persistence
	store, err := systems.OpenStore(config.C.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		arenaCfg.Store = store
	}

	arenaCfg.Audio = sound.NewPlayer(sound.Context(), os.DirFS(config.Audio.SoundDir))

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(NewGame(arenaCfg)); err != nil {
		log.Fatal(err)
	}
}
