package components

import "github.com/yohamta/donburi"

// CameraData is the world position at the centre of the screen.
type CameraData struct {
	X, Y float64
}

var Camera = donburi.NewComponentType[CameraData]()
