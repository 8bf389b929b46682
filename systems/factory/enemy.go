package factory

import (
	"fmt"

	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/mobs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func init() {
	Register(cfg.KindShrimp, enemySpawner(cfg.KindShrimp))
}

func enemySpawner(kind string) SpawnFunc {
	return func(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
		return CreateEnemy(ecs, kind, x, y)
	}
}

// CreateEnemy spawns an enemy of a configured type, heading left.
func CreateEnemy(ecs *ecs.ECS, kind string, x, y float64) (*donburi.Entry, error) {
	var sprite string
	if t, ok := cfg.Enemy.Types[kind]; ok {
		sprite = t.Sprite
	}

	e, err := mobs.NewEnemy(kind, x, y, loadSprite(ecs, sprite))
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy %s: %w", kind, err)
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Actor.SetValue(enemy, components.ActorData{Actor: e})
	addToWorld(ecs, e)

	return enemy, nil
}
