package systems

import (
	"github.com/automoto/webrunner/components"
	"github.com/automoto/webrunner/mobs"
	"github.com/automoto/webrunner/tags"
	"github.com/automoto/webrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func levelWorld(w donburi.World) (*world.Platforms, bool) {
	entry, ok := components.World.First(w)
	if !ok {
		return nil, false
	}
	data := components.World.Get(entry)
	return data.Platforms, data.Platforms != nil
}

// UpdatePlayers turns each living player's intent into movement.
func UpdatePlayers(e *ecs.ECS) {
	w, ok := levelWorld(e.World)
	if !ok {
		return
	}
	sfx := SFXQueue{World: e.World}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p, ok := components.Actor.Get(entry).Actor.(*mobs.Player)
		if !ok || !p.Alive() {
			return
		}
		intent := components.Intent.Get(entry)

		switch {
		case intent.Left && !intent.Right:
			p.GoLeft(w)
		case intent.Right && !intent.Left:
			p.GoRight(w)
		default:
			p.Idle(w)
		}
		if intent.Jump {
			p.Jump(w, sfx)
		}
	})
}

// UpdateEnemies runs the patrol of every living enemy.
func UpdateEnemies(e *ecs.ECS) {
	w, ok := levelWorld(e.World)
	if !ok {
		return
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy, ok := components.Actor.Get(entry).Actor.(*mobs.Enemy)
		if !ok || !enemy.Alive() {
			return
		}
		enemy.Roam(w)
	})
}

// UpdatePhysics advances every living mob by one tick.
func UpdatePhysics(e *ecs.ECS) {
	w, ok := levelWorld(e.World)
	if !ok {
		return
	}

	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		m := components.Actor.Get(entry).Body()
		if !m.Alive() {
			return
		}
		m.Update(w, 1)
	})
}

// UpdateTouches resolves contacts between overlapping mobs.
func UpdateTouches(e *ecs.ECS) {
	w, ok := levelWorld(e.World)
	if !ok {
		return
	}

	var actors []mobs.Actor
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		a := components.Actor.Get(entry).Actor
		if a.Body().Alive() {
			actors = append(actors, a)
		}
	})

	sfx := SFXQueue{World: e.World}
	for _, t := range w.Touches(actors) {
		mobs.ResolveTouch(t.A, t.B, t.Intercept, sfx)
	}
}
