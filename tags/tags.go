package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Box    = donburi.NewTag().SetName("Box")
	Token  = donburi.NewTag().SetName("Token")
)

// Resolv tags for the XZ broadphase
const (
	ResolvBox    = "box"
	ResolvPlayer = "player"
)
