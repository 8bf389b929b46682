package systems

import (
	"image"
	"image/color"

	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	platformColor = color.RGBA{90, 90, 110, 255}
	surface       = NewSurface()
)

// DrawLevel stretches the level's background over it, once loaded, then
// fills every platform.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	dx, dy := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())

	if entry, ok := components.Level.First(e.World); ok {
		data := components.Level.Get(entry)
		if data.Background != nil {
			if img, ready := data.Background.Image(); ready {
				surface.Begin(screen, dx, dy)
				surface.DrawImage(img, img.Bounds(), image.Rect(0, 0, data.Level.Width, data.Level.Height))
			}
		}
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.FillRect(screen, float32(o.X+dx), float32(o.Y+dy), float32(o.W), float32(o.H), platformColor, false)
	})
}

// DrawMobs draws every mob, fading out the dead ones.
func DrawMobs(e *ecs.ECS, screen *ebiten.Image) {
	dx, dy := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	surface.Begin(screen, dx, dy)

	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		alpha := float32(1)
		if entry.HasComponent(components.Fade) {
			alpha = components.Fade.Get(entry).Alpha
		}
		surface.SetAlpha(alpha)
		components.Actor.Get(entry).Body().Draw(surface)
	})
}

// DrawDebug outlines every object in the collision space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug {
		return
	}
	w, ok := levelWorld(e.World)
	if !ok {
		return
	}
	dx, dy := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())

	for _, obj := range w.Space().Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvDeadZone) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}
		vector.StrokeRect(screen, float32(obj.X+dx), float32(obj.Y+dy), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
