package factory

import (
	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/assets/sound"
	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/mobs"
	"github.com/automoto/webrunner/systems"
	"github.com/automoto/webrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld creates the collision space for a level of the given size.
func CreateWorld(ecs *ecs.ECS, width, height int) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)
	components.World.SetValue(entry, components.WorldData{
		Platforms: world.New(width, height, systems.SFXQueue{World: ecs.World}),
	})
	return entry
}

// CreateAudio creates the audio singleton. A nil loader keeps the game silent.
func CreateAudio(ecs *ecs.ECS, loader *sound.Loader) *donburi.Entry {
	entry := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(entry, components.AudioData{
		Loader:      loader,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		MusicVolume: cfg.Audio.DefaultMusicVol,
	})
	return entry
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(ecs)
}

func addToWorld(ecs *ecs.ECS, a mobs.Actor) {
	if entry, ok := components.World.First(ecs.World); ok {
		components.World.Get(entry).AddActor(a)
	}
}

// loadSprite starts loading path with the level's sprite loader. Without a
// loader or path the mob is drawn as an outline.
func loadSprite(ecs *ecs.ECS, path string) mobs.Sprite {
	if path == "" {
		return nil
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	sprites := components.Level.Get(entry).Sprites
	if sprites == nil {
		return nil
	}
	return sprites.Load(path)
}
