package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Capsule
	Radius      float64
	StartY      float64 // capsule segment start height at spawn
	SegmentLen  float64 // distance between capsule start and end
	SpawnVelY   float64 // vertical velocity applied on spawn so the player settles
	FallResetY  float64 // capsule start below this height is reset to spawn
	SkinEpsilon float64 // extra push-out distance after a contact

	// Movement
	JumpSpeed     float64
	CoyoteTime    float64 // seconds after leaving the floor a jump is still honored
	FloorNormalY  float64 // minimum contact normal Y counted as floor
	PushOriginY   float64 // push ray origin height above the visual position
	PushRayRange  float64
	PushConeRange float64
	PushConeCos   float64 // minimum forward alignment for the soft push cone
	PushConeScale float64
}

// BoxConfig contains dynamic box configuration values
type BoxConfig struct {
	HalfSize       float64
	MaxIterations  int
	Restitution    float64 // velocity kept after a contact
	SettleNormalY  float64
	SettleSpeed    float64 // vertical speed below which a floor contact zeroes vy
	GroundDamping  float64 // horizontal damping every substep
	AirDamping     float64 // extra damping when no contact happened
	PlayerImpulse  float64 // outward impulse when the player bumps a box
	PlayerSkin     float64
	MaxPushSpeed   float64
	SpawnSpread    float64 // half extent of the XZ spawn square
	SpawnMinY      float64
	SpawnMaxY      float64
	SpawnVelSpread float64 // half extent of the initial horizontal velocity
}

// TokenConfig contains token configuration values
type TokenConfig struct {
	RestHeight      float64
	CollectRadius   float64
	MagnetRadius    float64
	MagnetRate      float64 // fraction of the offset closed per second inside the magnet ring
	SpinScale       float64
	BobFrequency    float64
	FadeRate        float64 // fade units per second after collection
	GlowDuration    float64 // seconds for glow to reach full intensity
	RiseSpeed       float64
	PadSpread       float64 // half extent of random padding positions
	BackfillSpread  float64 // half extent of hardest-tier backfill positions
	BackfillRatio   float64 // minimum share of the target kept alive on the hardest tier
	Points          map[TokenType]int
	SpawnWeights    map[TokenType]float64
	CameraBumpDecay float64
	CameraBumpLift  float64
}

// SessionConfig contains session-wide rules
type SessionConfig struct {
	MaxSubstep      float64 // seconds; frames are split into equal substeps no longer than this
	MaxFrameDelta   float64 // frame deltas are capped so a stall cannot explode the substep count
	WinScore        int
	LevelScoreStep  int
	UrgentTime      float64 // countdown seconds at which the timer is shown as urgent
	HighScoreLimit  int
	PlayBounds      float64 // playable half extent on X and Z
	LevelUpHoldTime float64 // seconds the countdown holds while the level-up banner shows
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Distance         float64
	Height           float64
	FollowSmoothing  float64 // How fast camera follows the player (0.0-1.0)
	PointerSpeed     float64 // radians per pointer pixel
	PitchLimit       float64
	PixelsPerUnit    float64 // top-down renderer scale
	DrawDistanceFade float64 // units over which entities fade before the draw distance
}

// MenuConfig contains menu and overlay configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains HUD colors and layout
type HUDConfig struct {
	TextColor    color.RGBA
	UrgentColor  color.RGBA
	BannerColor  color.RGBA
	Margin       int
	LineHeight   int
	BannerFadeIn float64
	TokenColors  map[TokenType]color.RGBA
}

// WorldColors contains the top-down renderer palette
type WorldColors struct {
	Floor  color.RGBA
	Wall   color.RGBA
	Box    color.RGBA
	Player color.RGBA
	Facing color.RGBA
	Shadow color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	Title     string
	AppName   string
	ArenaPath string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Box BoxConfig
var Token TokenConfig
var Session SessionConfig
var Camera CameraConfig
var Menu MenuConfig
var HUD HUDConfig
var Colors WorldColors
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Start a session immediately
	Seed     uint64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	SkyBlue      = color.RGBA{R: 94, G: 200, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:     960,
		Height:    540,
		Title:     "The Lost Path",
		AppName:   "lostpath",
		ArenaPath: "levels/arena.tmx",
	}

	Player = PlayerConfig{
		Radius:      0.35,
		StartY:      1,
		SegmentLen:  1,
		SpawnVelY:   -1,
		FallResetY:  -25,
		SkinEpsilon: 1e-4,

		JumpSpeed:     15.2,
		CoyoteTime:    0.140,
		FloorNormalY:  0.5,
		PushOriginY:   1.2,
		PushRayRange:  1.6,
		PushConeRange: 1.1,
		PushConeCos:   0.35,
		PushConeScale: 0.8,
	}

	Box = BoxConfig{
		HalfSize:       0.5,
		MaxIterations:  3,
		Restitution:    0.6,
		SettleNormalY:  0.5,
		SettleSpeed:    1.5,
		GroundDamping:  0.992,
		AirDamping:     0.998,
		PlayerImpulse:  2.2,
		PlayerSkin:     0.001,
		MaxPushSpeed:   7.5,
		SpawnSpread:    18,
		SpawnMinY:      2,
		SpawnMaxY:      7,
		SpawnVelSpread: 0.2,
	}

	Token = TokenConfig{
		RestHeight:     0.35,
		CollectRadius:  1.45,
		MagnetRadius:   2.2,
		MagnetRate:     0.6,
		SpinScale:      0.6,
		BobFrequency:   2,
		FadeRate:       1.8,
		GlowDuration:   0.25,
		RiseSpeed:      2.2,
		PadSpread:      18.5,
		BackfillSpread: 8,
		BackfillRatio:  0.6,
		Points: map[TokenType]int{
			TokenPotion: 50,
			TokenBook:   150,
			TokenGem:    250,
		},
		SpawnWeights: map[TokenType]float64{
			TokenPotion: 1,
			TokenBook:   1,
			TokenGem:    1,
		},
		CameraBumpDecay: 1.5,
		CameraBumpLift:  0.4,
	}

	Session = SessionConfig{
		MaxSubstep:      0.005,
		MaxFrameDelta:   0.1,
		WinScore:        2500,
		LevelScoreStep:  500,
		UrgentTime:      10,
		HighScoreLimit:  10,
		PlayBounds:      20,
		LevelUpHoldTime: 1.8,
	}

	Camera = CameraConfig{
		Distance:         3.2,
		Height:           1.65,
		FollowSmoothing:  0.12,
		PointerSpeed:     0.002,
		PitchLimit:       1.5607963267948966, // pi/2 - 0.01
		PixelsPerUnit:    12,
		DrawDistanceFade: 8,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 16, B: 24, A: 255},
		OverlayColor:      BlackOverlay,
		TitleColor:        SkyBlue,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            120,
		MenuStartY:        200,
		MenuItemHeight:    24,
		MenuItemGap:       10,
	}

	HUD = HUDConfig{
		TextColor:    White,
		UrgentColor:  LightRed,
		BannerColor:  Yellow,
		Margin:       16,
		LineHeight:   22,
		BannerFadeIn: 0.3,
		TokenColors: map[TokenType]color.RGBA{
			TokenPotion: Purple,
			TokenBook:   Orange,
			TokenGem:    SkyBlue,
		},
	}

	Colors = WorldColors{
		Floor:  color.RGBA{R: 46, G: 58, B: 44, A: 255},
		Wall:   color.RGBA{R: 120, G: 110, B: 96, A: 255},
		Box:    color.RGBA{R: 150, G: 104, B: 60, A: 255},
		Player: color.RGBA{R: 230, G: 220, B: 200, A: 255},
		Facing: Yellow,
		Shadow: color.RGBA{R: 0, G: 0, B: 0, A: 90},
	}
}
