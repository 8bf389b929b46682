package components

import "github.com/yohamta/donburi"

// IntentData is what the player wants to do this tick. It is written by
// whatever drives the player (keyboard adapter, replay, test) before the
// player system runs.
type IntentData struct {
	Left  bool
	Right bool
	Jump  bool
}

var Intent = donburi.NewComponentType[IntentData]()
