package components

import (
	"github.com/automoto/webrunner/assets/sound"
	cfg "github.com/automoto/webrunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Loader      *sound.Loader // nil plays nothing
	SFXVolume   float64       // 0.0 - 1.0
	MusicVolume float64       // 0.0 - 1.0
	PendingSFX  []cfg.SoundID

	Music    *audio.Player
	MusicKey string // path of the playing track
}

var Audio = donburi.NewComponentType[AudioData]()
