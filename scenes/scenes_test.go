package scenes

import (
	"testing"

	"github.com/automoto/webrunner/assets"
	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func level() *assets.Level {
	return &assets.Level{
		Name:      "test",
		Width:     800,
		Height:    240,
		Start:     assets.Spawn{Kind: cfg.KindPlayer, X: 300, Y: 152},
		Platforms: []assets.Rect{{X: 0, Y: 200, Width: 800, Height: 40}},
		Spawns:    []assets.Spawn{{Kind: cfg.KindShrimp, X: 340, Y: 151}},
	}
}

func TestPlatformerSceneGameOver(t *testing.T) {
	var intent components.IntentData
	changer := &recordingChanger{}
	opts := Options{
		Level:  level(),
		Intent: IntentFunc(func() components.IntentData { return intent }),
	}
	scene := NewPlatformerScene(changer, opts)

	for i := 0; i < 60 && len(changer.scenes) == 0; i++ {
		scene.Update()
	}
	require.Len(t, changer.scenes, 1, "the shrimp walks into the idle player")
	over, ok := changer.scenes[0].(*GameOverScene)
	require.True(t, ok)

	intent.Jump = true
	over.Update()
	assert.Len(t, changer.scenes, 1, "a jump held since the run ended does not restart")

	intent.Jump = false
	over.Update()
	intent.Jump = true
	over.Update()
	require.Len(t, changer.scenes, 2)
	assert.IsType(t, &PlatformerScene{}, changer.scenes[1])
}

func TestPlatformerSceneKeepsRunning(t *testing.T) {
	changer := &recordingChanger{}
	lvl := level()
	lvl.Spawns = nil
	scene := NewPlatformerScene(changer, Options{Level: lvl})

	for i := 0; i < 30; i++ {
		scene.Update()
	}
	assert.Empty(t, changer.scenes)
}
