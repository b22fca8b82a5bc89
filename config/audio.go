package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundTake
	SoundLevelUp
	SoundPush
	SoundGameOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	DuckFactor      float64 // music volume multiplier after a loss
	SoundDir        string  // directory the audio files are read from
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	BackgroundMusic   string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.28,
		DefaultSFXVol:   1.0,
		DuckFactor:      0.25,
		SoundDir:        "sounds",
	}

	Sound = SoundConfig{
		BackgroundMusic: "music/background.ogg",
		SFXPaths: map[SoundID]string{
			SoundTake:     "sfx/take.wav",
			SoundLevelUp:  "sfx/level_up.wav",
			SoundPush:     "sfx/push.wav",
			SoundGameOver: "sfx/game_over.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLevelUp:  0.9,
			SoundPush:     0.7,
			SoundGameOver: 0.95,
		},
	}
}
