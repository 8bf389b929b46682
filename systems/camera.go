package systems

import (
	"math"

	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player, keeping the level filling
// the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	player := components.Actor.Get(playerEntry).Body()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	camera.X = follow(player.Left()+player.Width()/2, float64(cfg.C.Width), float64(level.Width))
	camera.Y = follow(player.Top()+player.Height()/2, float64(cfg.C.Height), float64(level.Height))
}

// follow clamps target so a screen of the given size stays inside the level.
// Levels smaller than the screen are centred.
func follow(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(target, level-screen/2))
}

// cameraOffset is the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, screenW, screenH int) (float64, float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return math.Floor(float64(screenW)/2 - camera.X), math.Floor(float64(screenH)/2 - camera.Y)
}
