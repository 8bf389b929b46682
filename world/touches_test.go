package world

import (
	"testing"

	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/mobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addShrimp(t *testing.T, p *Platforms, x, y float64) *mobs.Enemy {
	t.Helper()
	e, err := mobs.NewEnemy(cfg.KindShrimp, x, y, nil)
	require.NoError(t, err)
	p.AddActor(e)
	return e
}

// ghost is only solid from below.
type ghost struct {
	*mobs.Enemy
}

func (g ghost) Substantial(side mobs.Side) bool { return side == mobs.SideBottom }

func TestTouchesStompFromAbove(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 420, 106)

	touches := p.Touches([]mobs.Actor{e, pl})
	require.Len(t, touches, 1)
	assert.Same(t, e, touches[0].A)
	assert.Same(t, pl, touches[0].B)
	assert.Equal(t, mobs.SideTop, touches[0].Intercept.Side)
	assert.Equal(t, 420.0, touches[0].Intercept.X)
	assert.Equal(t, 151.0, touches[0].Intercept.Y)

	flipped := p.Touches([]mobs.Actor{pl, e})
	require.Len(t, flipped, 1)
	assert.Same(t, pl, flipped[0].A)
	assert.Equal(t, mobs.SideBottom, flipped[0].Intercept.Side)
}

func TestTouchesFromTheSide(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 372, 152)

	touches := p.Touches([]mobs.Actor{e, pl})
	require.Len(t, touches, 1)
	assert.Equal(t, mobs.SideLeft, touches[0].Intercept.Side)
}

func TestTouchesRequireOverlap(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	flush := addPlayer(t, p, 368, 152)
	far := addPlayer(t, p, 100, 152)

	assert.Empty(t, p.Touches([]mobs.Actor{e, flush, far}))
}

func TestTouchesSkipUnlistedAndPassable(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 420, 106)

	assert.Empty(t, p.Touches([]mobs.Actor{pl}), "the enemy is not part of this query")

	p.RemoveActor(e)
	g := ghost{Enemy: e}
	p.AddActor(g)
	assert.Empty(t, p.Touches([]mobs.Actor{g, pl}), "ghosts are passable from above")
}

func TestTouchesResolveStomp(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 420, 106)
	pl.VY = 8
	sfx := &recordedSFX{}

	for _, touch := range p.Touches([]mobs.Actor{pl, e}) {
		mobs.ResolveTouch(touch.A, touch.B, touch.Intercept, sfx)
	}

	assert.False(t, e.Alive())
	assert.True(t, pl.Alive())
	assert.Equal(t, -10.0, pl.VY)
	assert.Equal(t, []cfg.SoundID{cfg.SoundCrunch}, sfx.played)
}

func TestTouchesStompAfterFastFall(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 420, 101)
	pl.VY = 40

	pl.Update(p, 1)
	require.Greater(t, pl.Top()+pl.Height()-e.Top(), pl.Width(),
		"the player sinks deeper into the shrimp than it overlaps sideways")

	touches := p.Touches([]mobs.Actor{e, pl})
	require.Len(t, touches, 1)
	assert.Equal(t, mobs.SideTop, touches[0].Intercept.Side)

	sfx := &recordedSFX{}
	mobs.ResolveTouch(touches[0].A, touches[0].B, touches[0].Intercept, sfx)
	assert.False(t, e.Alive())
	assert.True(t, pl.Alive())
	assert.Equal(t, -10.0, pl.VY)
	assert.Equal(t, []cfg.SoundID{cfg.SoundCrunch}, sfx.played)
}

func TestTouchesRunIntoEnemy(t *testing.T) {
	p, _ := newLevel(t)
	e := addShrimp(t, p, 400, 151)
	pl := addPlayer(t, p, 360, 152)
	pl.VX = 12

	pl.Update(p, 1)
	touches := p.Touches([]mobs.Actor{e, pl})
	require.Len(t, touches, 1)
	assert.Equal(t, mobs.SideLeft, touches[0].Intercept.Side)
}
