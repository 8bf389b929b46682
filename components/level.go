package components

import (
	"github.com/automoto/webrunner/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level      *assets.Level
	Sprites    *assets.SpriteLoader // nil draws every mob as an outline
	Background *assets.Sprite       // nil when the level has none
}

var Level = donburi.NewComponentType[LevelData]()
