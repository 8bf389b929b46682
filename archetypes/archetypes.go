package archetypes

import (
	"github.com/automoto/webrunner/components"
	"github.com/automoto/webrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Intent,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
