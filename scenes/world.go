package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/components"
	"github.com/automoto/webrunner/systems"
	"github.com/automoto/webrunner/systems/factory"
	"github.com/automoto/webrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, opts Options) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.checkGameOver() {
		log.Info().Str("level", ps.opts.Level.Name).Msg("game over")
		systems.StopMusic(ps.ecs)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.opts))
	}
}

// checkGameOver returns true once the player entity has been removed (after its death fade completes)
func (ps *PlatformerScene) checkGameOver() bool {
	if ps.ecs == nil {
		return false
	}
	_, ok := tags.Player.First(ps.ecs.World)
	return !ok
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so cues queued last tick play promptly
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(ps.updateIntent)
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateTouches)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawMobs)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateAudio(ps.ecs, ps.opts.Sounds)
	if _, err := factory.CreateLevel(ps.ecs, ps.opts.Level, ps.opts.Sprites); err != nil {
		panic(err)
	}
	systems.PlayMusic(ps.ecs, ps.opts.Level.Music)
}

func (ps *PlatformerScene) updateIntent(e *ecs.ECS) {
	if ps.opts.Intent == nil {
		return
	}
	intent := ps.opts.Intent.Intent()
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Intent.SetValue(entry, intent)
	})
}
