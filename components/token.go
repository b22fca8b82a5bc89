package components

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// TokenData is a collectible. Once Collected is set, Fade only decreases
// and the entry is removed when it reaches zero.
type TokenData struct {
	Position   r3.Vec
	Type       cfg.TokenType
	RestHeight float64
	Phase      float64 // bob offset so tokens do not move in lockstep
	Spin       float64 // radians
	Collected  bool
	Glow       float64
	Fade       float64
	FadeTween  *gween.Tween
	GlowTween  *gween.Tween
}

var Token = donburi.NewComponentType[TokenData]()
