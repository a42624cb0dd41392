package archetypes

import (
	"github.com/automoto/huskyhunt/components"
	"github.com/automoto/huskyhunt/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Health,
		components.Body,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Health,
		components.Body,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Body,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
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
