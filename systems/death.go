package systems

import (
	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths kills mobs that entered a dead zone or fell out of the level,
// takes dead mobs out of the collision space straight away and fades them
// out before removing their entities.
func UpdateDeaths(e *ecs.ECS) {
	w, _ := levelWorld(e.World)

	if w != nil {
		components.Actor.Each(e.World, func(entry *donburi.Entry) {
			m := components.Actor.Get(entry).Body()
			if m.Alive() && w.InDeadZone(m) {
				log.Debug().Str("kind", m.Kind).Float64("y", m.Top()).Msg("mob left the level")
				m.Die()
			}
		})
	}

	var died []*donburi.Entry
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		if !components.Actor.Get(entry).Body().Alive() && !entry.HasComponent(components.Fade) {
			died = append(died, entry)
		}
	})

	for _, entry := range died {
		a := components.Actor.Get(entry).Actor
		if w != nil {
			w.RemoveActor(a)
		}
		log.Info().
			Str("kind", a.Body().Kind).
			Float64("x", a.Body().Left()).
			Float64("y", a.Body().Top()).
			Msg("mob died")

		if cfg.Death.FadeSeconds <= 0 {
			e.World.Remove(entry.Entity())
			continue
		}
		donburi.Add(entry, components.Fade, &components.FadeData{
			Tween: gween.New(1, 0, cfg.Death.FadeSeconds, ease.Linear),
			Alpha: 1,
		})
	}

	dt := float32(1) / 60
	if cfg.Death.TPS > 0 {
		dt = 1 / cfg.Death.TPS
	}

	var faded []donburi.Entity
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		fade.Alpha, fade.Done = fade.Tween.Update(dt)
		if fade.Done {
			faded = append(faded, entry.Entity())
		}
	})
	for _, entity := range faded {
		e.World.Remove(entity)
	}
}
