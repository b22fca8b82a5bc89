// Package sound plays the game's background track and effects through an
// ebiten audio context.
package sound

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/lostpath/assets"
	cfg "github.com/automoto/lostpath/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	globalContext *audio.Context
	contextOnce   sync.Once
)

// Context returns the process-wide audio context. Ebiten allows only one.
func Context() *audio.Context {
	contextOnce.Do(func() {
		globalContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalContext
}

// Player implements the game's audio triggers. Missing or broken files are
// logged once and then ignored.
type Player struct {
	loader   *assets.AudioLoader
	music    *audio.Player
	musicVol float64
	sfxVol   float64
	muted    bool
	paused   bool
	failed   map[string]bool
}

// NewPlayer reads sound files from fsys and preloads every effect.
func NewPlayer(ctx *audio.Context, fsys fs.FS) *Player {
	p := &Player{
		loader:   assets.NewAudioLoader(ctx, fsys),
		musicVol: cfg.Audio.DefaultMusicVol,
		sfxVol:   cfg.Audio.DefaultSFXVol,
		failed:   make(map[string]bool),
	}
	for _, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			p.warn(path, err)
		}
	}
	return p
}

func (p *Player) PlayTake()     { p.playSFX(cfg.SoundTake) }
func (p *Player) PlayLevelUp()  { p.playSFX(cfg.SoundLevelUp) }
func (p *Player) PlayPush()     { p.playSFX(cfg.SoundPush) }
func (p *Player) PlayGameOver() { p.playSFX(cfg.SoundGameOver) }

// PlayBackground (re)starts the music loop at full volume.
func (p *Player) PlayBackground() {
	p.musicVol = cfg.Audio.DefaultMusicVol
	p.paused = false
	if p.music == nil {
		path := cfg.Sound.BackgroundMusic
		if p.failed[path] {
			return
		}
		music, err := p.loader.LoadMusic(path)
		if err != nil {
			p.warn(path, err)
			return
		}
		p.music = music
	}
	p.applyMusicVolume()
	if !p.music.IsPlaying() {
		p.music.Play()
	}
}

// SetMuted silences both channels without stopping playback.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	p.applyMusicVolume()
}

func (p *Player) PauseBackground(paused bool) {
	p.paused = paused
	if p.music == nil {
		return
	}
	if paused {
		p.music.Pause()
	} else {
		p.music.Play()
	}
}

// DuckBackground lowers the music after a loss.
func (p *Player) DuckBackground() {
	p.musicVol = cfg.Audio.DefaultMusicVol * cfg.Audio.DuckFactor
	p.applyMusicVolume()
}

// Close stops the music.
func (p *Player) Close() error {
	if p.music == nil {
		return nil
	}
	err := p.music.Close()
	p.music = nil
	return err
}

func (p *Player) playSFX(id cfg.SoundID) {
	if p.muted || p.sfxVol <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || p.failed[path] {
		return
	}

	player, err := p.loader.LoadSFX(path)
	if err != nil {
		p.warn(path, err)
		return
	}

	volume := p.sfxVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func (p *Player) applyMusicVolume() {
	if p.music == nil {
		return
	}
	if p.muted {
		p.music.SetVolume(0)
		return
	}
	p.music.SetVolume(p.musicVol)
}

func (p *Player) warn(path string, err error) {
	if p.failed[path] {
		return
	}
	p.failed[path] = true
	log.Printf("Warning: audio %s unavailable: %v", path, err)
}
