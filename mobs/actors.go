package mobs

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/webrunner/config"
)

// ErrUnknownEnemy is returned when an enemy type has no configuration.
var ErrUnknownEnemy = errors.New("unknown enemy type")

// Actor is a mob with an interaction policy.
type Actor interface {
	Body() *Mob
	// OnMobTouch handles contact with toucher. ic.Side is the side of the
	// receiver that was touched.
	OnMobTouch(toucher Actor, ic Intercept, sfx SFX)
}

// Substantial is implemented by actors that may be passable from some sides.
// Actors that do not implement it are solid from every side.
type Substantial interface {
	Substantial(side Side) bool
}

// Player is the controllable mob.
type Player struct {
	*Mob
}

func NewPlayer(x, y float64, sprite Sprite) (*Player, error) {
	m, err := NewMob(cfg.KindPlayer, x, y, cfg.Player.Width, cfg.Player.Height, sprite, true)
	if err != nil {
		return nil, err
	}
	return &Player{Mob: m}, nil
}

func (p *Player) Body() *Mob { return p.Mob }

// OnMobTouch re-evaluates the contact from the other mob's point of view so
// interaction policy only lives in non-player actors.
func (p *Player) OnMobTouch(other Actor, ic Intercept, sfx SFX) {
	if IsPlayer(other) {
		return
	}
	ic.Side = ic.Side.Reflect()
	other.OnMobTouch(p, ic, sfx)
}

// Direction is the patrol heading of an enemy.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Enemy patrols between walls and dies when stomped.
type Enemy struct {
	*Mob
	Direction   Direction
	StompBounce float64
}

// NewEnemy builds an enemy of a configured type, facing left.
func NewEnemy(kind string, x, y float64, sprite Sprite) (*Enemy, error) {
	t, ok := cfg.Enemy.Types[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, kind)
	}
	m, err := NewMob(kind, x, y, t.Width, t.Height, sprite, false)
	if err != nil {
		return nil, err
	}
	m.Stats = cfg.EnemyStats(kind)
	return &Enemy{Mob: m, Direction: Left, StompBounce: t.StompBounce}, nil
}

func (e *Enemy) Body() *Mob { return e.Mob }

// Roam turns around at walls and keeps accelerating along the heading.
func (e *Enemy) Roam(w World) {
	if e.Direction == Left && w.TouchingPlatform(e.Mob, SideLeft) {
		e.Direction = Right
	} else if e.Direction == Right && w.TouchingPlatform(e.Mob, SideRight) {
		e.Direction = Left
	}

	if e.Direction == Left {
		e.GoLeft(w)
	} else {
		e.GoRight(w)
	}
}

// OnMobTouch kills the enemy when a player lands on it and kills the player
// on any other contact. Other mobs are ignored.
func (e *Enemy) OnMobTouch(toucher Actor, ic Intercept, sfx SFX) {
	if !IsPlayer(toucher) {
		return
	}
	player := toucher.Body()
	if ic.Side == SideTop {
		e.Die()
		player.VY = e.StompBounce
		sfx.PlaySFX(cfg.SoundCrunch)
		return
	}
	player.Die()
}

func (e *Enemy) Substantial(side Side) bool { return true }

// IsPlayer reports whether a is the player.
func IsPlayer(a Actor) bool {
	return a.Body().Kind == cfg.KindPlayer
}

// ResolveTouch evaluates a contact between a and b, where ic.Side is the side
// of a that was touched. A player participant is always moved to the
// toucher position so the non-player's policy decides the outcome, and
// OnMobTouch runs exactly once. Contacts involving a dead mob or two players
// are ignored.
func ResolveTouch(a, b Actor, ic Intercept, sfx SFX) {
	if !a.Body().Alive() || !b.Body().Alive() {
		return
	}
	aPlayer, bPlayer := IsPlayer(a), IsPlayer(b)
	if aPlayer && bPlayer {
		return
	}
	if aPlayer {
		a, b = b, a
		ic.Side = ic.Side.Reflect()
	}
	a.OnMobTouch(b, ic, sfx)
}
