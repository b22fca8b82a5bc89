package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateToken spawns an uncollected token resting at pos.
func CreateToken(w donburi.World, pos r3.Vec, t cfg.TokenType, phase float64) *donburi.Entry {
	token := archetypes.Token.Spawn(w)
	components.Token.Set(token, &components.TokenData{
		Position:   pos,
		Type:       t,
		RestHeight: pos.Y,
		Phase:      phase,
		Fade:       1,
	})
	return token
}
