package scenes

import (
	"github.com/automoto/webrunner/assets"
	"github.com/automoto/webrunner/assets/sound"
	"github.com/automoto/webrunner/components"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// IntentSource supplies what the player wants to do each tick.
type IntentSource interface {
	Intent() components.IntentData
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() components.IntentData

func (f IntentFunc) Intent() components.IntentData { return f() }

// Options is everything a level scene needs to start. Sprites and Sounds
// may be nil.
type Options struct {
	Level   *assets.Level
	Sprites *assets.SpriteLoader
	Sounds  *sound.Loader
	Intent  IntentSource
}
