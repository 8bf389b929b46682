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
	Register(cfg.KindPlayer, CreatePlayer)
}

func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	p, err := mobs.NewPlayer(x, y, loadSprite(ecs, cfg.Player.Sprite))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)
	components.Actor.SetValue(player, components.ActorData{Actor: p})
	addToWorld(ecs, p)

	return player, nil
}
