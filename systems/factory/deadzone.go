package factory

import (
	"github.com/automoto/webrunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone adds an invisible box that kills mobs entering it. Without
// a world there is nowhere to put it and nil is returned.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	return components.World.Get(worldEntry).AddDeadZone(x, y, w, h)
}
