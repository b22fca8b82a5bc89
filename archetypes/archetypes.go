package archetypes

import (
	"github.com/automoto/lostpath/components"
	"github.com/automoto/lostpath/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
	)
	Box = newArchetype(
		tags.Box,
		components.Box,
		components.Object,
	)
	Token = newArchetype(
		tags.Token,
		components.Token,
	)
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
