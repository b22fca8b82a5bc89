package factory

import (
	"github.com/automoto/lostpath/archetypes"
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateBox spawns a dynamic box and mirrors it into the broadphase.
func CreateBox(w donburi.World, pos, vel r3.Vec) *donburi.Entry {
	box := archetypes.Box.Spawn(w)
	components.Box.SetValue(box, components.BoxData{Position: pos, Velocity: vel})

	size := 2 * cfg.Box.HalfSize
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvBox)
	obj.Data = box
	components.Object.SetValue(box, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	SyncBox(w, components.Box.Get(box), obj)
	return box
}

// SyncBox moves the box's broadphase object to its current position.
func SyncBox(w donburi.World, b *components.BoxData, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	x, y := components.Level.Get(levelEntry).SpacePoint(b.Position)
	obj.X = x - cfg.Box.HalfSize
	obj.Y = y - cfg.Box.HalfSize
	obj.Update()
}

// DestroyBox removes the box and its broadphase object.
func DestroyBox(w donburi.World, box *donburi.Entry) {
	if obj := components.Object.Get(box); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(box.Entity())
}
