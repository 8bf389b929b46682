package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var placeholderColor = color.RGBA{255, 255, 255, 255}

// Surface draws mobs onto an ebiten image, shifted by the camera offset.
// Decoded sprites are uploaded to the GPU once and reused.
type Surface struct {
	screen *ebiten.Image
	dx, dy float64
	alpha  float32
	cache  map[image.Image]*ebiten.Image
}

func NewSurface() *Surface {
	return &Surface{
		alpha: 1,
		cache: make(map[image.Image]*ebiten.Image),
	}
}

// Begin targets screen for the coming draws.
func (s *Surface) Begin(screen *ebiten.Image, offsetX, offsetY float64) {
	s.screen = screen
	s.dx, s.dy = offsetX, offsetY
	s.alpha = 1
}

// SetAlpha sets the opacity of subsequent draws.
func (s *Surface) SetAlpha(a float32) { s.alpha = a }

func (s *Surface) image(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	eimg, ok := s.cache[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.cache[img] = eimg
	}
	return eimg
}

func (s *Surface) DrawImage(img image.Image, src, dst image.Rectangle) {
	if s.screen == nil || src.Empty() {
		return
	}
	eimg := s.image(img)
	// NewImageFromImage rebases bounds to the origin.
	b := img.Bounds()
	sub := eimg.SubImage(src.Sub(b.Min).Add(eimg.Bounds().Min)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X)+s.dx, float64(dst.Min.Y)+s.dy)
	op.ColorScale.ScaleAlpha(s.alpha)
	s.screen.DrawImage(sub, op)
}

func (s *Surface) ClearRect(r image.Rectangle) {
	if s.screen == nil {
		return
	}
	r = r.Add(image.Pt(int(s.dx), int(s.dy))).Intersect(s.screen.Bounds())
	if r.Empty() {
		return
	}
	s.screen.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) StrokeRect(r image.Rectangle) {
	if s.screen == nil {
		return
	}
	c := placeholderColor
	c.A = uint8(255 * s.alpha)
	vector.StrokeRect(s.screen,
		float32(float64(r.Min.X)+s.dx), float32(float64(r.Min.Y)+s.dy),
		float32(r.Dx()), float32(r.Dy()),
		1, c, false)
}
