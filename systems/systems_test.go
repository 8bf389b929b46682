package systems

import (
	"testing"

	"github.com/automoto/webrunner/archetypes"
	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/mobs"
	"github.com/automoto/webrunner/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := archetypes.Audio.Spawn(e)
	components.Audio.SetValue(entry, components.AudioData{SFXVolume: 1})
	return e
}

func queued(e *ecs.ECS) []cfg.SoundID {
	entry, _ := components.Audio.First(e.World)
	return components.Audio.Get(entry).PendingSFX
}

func addWorld(e *ecs.ECS) *world.Platforms {
	p := world.New(640, 480, SFXQueue{World: e.World})
	p.AddPlatform(0, 200, 640, 40)
	entry := archetypes.World.Spawn(e)
	components.World.SetValue(entry, components.WorldData{Platforms: p})
	return p
}

func addPlayer(t *testing.T, e *ecs.ECS, w *world.Platforms, x, y float64) (*donburi.Entry, *mobs.Player) {
	t.Helper()
	p, err := mobs.NewPlayer(x, y, nil)
	require.NoError(t, err)
	entry := archetypes.Player.Spawn(e)
	components.Actor.SetValue(entry, components.ActorData{Actor: p})
	w.AddActor(p)
	return entry, p
}

func actors(e *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(components.Actor)).Count(e.World)
}

func TestSFXQueue(t *testing.T) {
	e := newECS(t)
	q := SFXQueue{World: e.World}

	q.PlaySFX(cfg.SoundJump)
	q.PlaySFX(cfg.SoundNone)
	q.PlaySFX(cfg.SoundBonk)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundBonk}, queued(e))

	UpdateAudio(e)
	assert.Empty(t, queued(e), "played sounds are drained even without a loader")

	assert.NotPanics(t, func() {
		SFXQueue{World: donburi.NewWorld()}.PlaySFX(cfg.SoundJump)
		SFXQueue{}.PlaySFX(cfg.SoundJump)
	})
}

func TestPlayMusicWithoutLoader(t *testing.T) {
	e := newECS(t)

	PlayMusic(e, "audio/music/level01.ogg")
	entry, _ := components.Audio.First(e.World)
	a := components.Audio.Get(entry)
	assert.Nil(t, a.Music)
	assert.Empty(t, a.MusicKey)

	StopMusic(e)
	PlayMusic(e, "")
	assert.Nil(t, a.Music)
}

func TestUpdatePlayersIntent(t *testing.T) {
	e := newECS(t)
	w := addWorld(e)
	entry, p := addPlayer(t, e, w, 100, 152)
	intent := components.Intent.Get(entry)

	intent.Right = true
	UpdatePlayers(e)
	assert.Equal(t, 2.0, p.VX)

	intent.Right, intent.Left = false, true
	UpdatePlayers(e)
	UpdatePlayers(e)
	assert.Equal(t, -2.0, p.VX)

	intent.Left, intent.Right = true, true
	UpdatePlayers(e)
	assert.Equal(t, 0.0, p.VX, "opposing keys idle")

	intent.Left, intent.Right, intent.Jump = false, false, true
	UpdatePlayers(e)
	assert.Equal(t, -30.0, p.VY)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump}, queued(e))
}

func TestUpdatePhysicsLands(t *testing.T) {
	e := newECS(t)
	w := addWorld(e)
	_, p := addPlayer(t, e, w, 100, 100)

	for i := 0; i < 10; i++ {
		UpdatePhysics(e)
	}
	assert.Equal(t, 152.0, p.Top())
	assert.True(t, p.OnGround(w))
}

func TestUpdateDeathsWithoutFade(t *testing.T) {
	fade := cfg.Death.FadeSeconds
	cfg.Death.FadeSeconds = 0
	t.Cleanup(func() { cfg.Death.FadeSeconds = fade })

	e := newECS(t)
	w := addWorld(e)
	_, p := addPlayer(t, e, w, 100, 152)

	UpdateDeaths(e)
	assert.Equal(t, 1, actors(e))

	p.Die()
	UpdateDeaths(e)
	assert.Equal(t, 0, actors(e))
	assert.Nil(t, p.Box.Space)
}

func TestUpdateDeathsFades(t *testing.T) {
	e := newECS(t)
	w := addWorld(e)
	entry, p := addPlayer(t, e, w, 100, 152)

	p.Die()
	UpdateDeaths(e)
	require.True(t, entry.HasComponent(components.Fade))
	first := components.Fade.Get(entry).Alpha
	assert.Less(t, first, float32(1))

	UpdateDeaths(e)
	assert.Less(t, components.Fade.Get(entry).Alpha, first)

	for i := 0; i < 60 && entry.Valid(); i++ {
		UpdateDeaths(e)
	}
	assert.False(t, entry.Valid())
}

func TestUpdateDeathsKillsMobsLeavingTheLevel(t *testing.T) {
	e := newECS(t)
	w := addWorld(e)
	_, p := addPlayer(t, e, w, 100, 250)

	for i := 0; i < 60 && p.Alive(); i++ {
		UpdatePhysics(e)
		UpdateDeaths(e)
	}
	assert.False(t, p.Alive(), "a mob falling below the level must die")
	assert.GreaterOrEqual(t, p.Top(), 480.0)
	assert.Nil(t, p.Box.Space)
}

func TestUpdateDeathsKillsMobsInDeadZone(t *testing.T) {
	e := newECS(t)
	w := addWorld(e)
	w.AddDeadZone(400, 150, 100, 50)
	_, safe := addPlayer(t, e, w, 100, 152)
	_, doomed := addPlayer(t, e, w, 420, 152)

	UpdateDeaths(e)
	assert.True(t, safe.Alive())
	assert.False(t, doomed.Alive())
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name                  string
		target, screen, level float64
		want                  float64
	}{
		{"left edge", 10, 800, 2000, 400},
		{"middle", 1000, 800, 2000, 1000},
		{"right edge", 1990, 800, 2000, 1600},
		{"small level", 100, 800, 640, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, follow(tt.target, tt.screen, tt.level))
		})
	}
}
