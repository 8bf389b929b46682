package components

import (
	"github.com/automoto/webrunner/world"
	"github.com/yohamta/donburi"
)

type WorldData struct {
	*world.Platforms
}

// World is the singleton collision space of the loaded level.
var World = donburi.NewComponentType[WorldData]()
