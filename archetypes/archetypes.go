package archetypes

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Motion,
		components.Agent,
		components.Health,
		components.Stagger,
		components.Object,
	)
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
		components.Transform,
		components.Motion,
		components.Agent,
		components.Health,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
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
