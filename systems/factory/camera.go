package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
