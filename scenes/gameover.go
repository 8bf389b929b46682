package scenes

import (
	"image/color"

	cfg "github.com/automoto/webrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GameOverScene waits for a jump to restart the level.
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         Options
	armed        bool
}

func NewGameOverScene(sc SceneChanger, opts Options) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts}
}

func (gs *GameOverScene) Update() {
	jump := false
	if gs.opts.Intent != nil {
		jump = gs.opts.Intent.Intent().Jump
	}

	// Require a release first so the jump that ended the run does not restart it
	if !jump {
		gs.armed = true
		return
	}
	if gs.armed {
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.opts))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, "GAME OVER - jump to restart", cfg.C.Width/2-80, cfg.C.Height/2)
}
