package factory

import (
	"fmt"

	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/assets"
	"github.com/automoto/webrunner/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a loaded level: the level entity, its world and camera,
// every platform and dead zone, the player at the start and each listed mob.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, sprites *assets.SpriteLoader) (*donburi.Entry, error) {
	data := components.LevelData{
		Level:   level,
		Sprites: sprites,
	}
	if level.Background != "" && sprites != nil {
		data.Background = sprites.Load(level.Background)
	}
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, data)

	CreateWorld(ecs, level.Width, level.Height)
	CreateCamera(ecs)

	for _, r := range level.Platforms {
		CreatePlatform(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.Width, r.Height)
	}

	if _, err := Spawn(ecs, level.Start.Kind, level.Start.X, level.Start.Y); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	for _, s := range level.Spawns {
		if _, err := Spawn(ecs, s.Kind, s.X, s.Y); err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}

	log.Info().
		Str("level", level.Name).
		Int("platforms", len(level.Platforms)).
		Int("deadzones", len(level.DeadZones)).
		Int("mobs", len(level.Spawns)).
		Msg("level created")
	return entry, nil
}
