package factory

import (
	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a solid box to the level's world. The world must
// already exist.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		panic("factory: platform created before the world")
	}
	object := components.World.Get(worldEntry).AddPlatform(x, y, w, h)

	platform := archetypes.Platform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	return platform
}
