package components

import (
	"github.com/automoto/webrunner/mobs"
	"github.com/yohamta/donburi"
)

// ActorData holds the physics actor driven by an entity. The actor's bounding
// box is its resolv object.
type ActorData struct {
	mobs.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
