package mobs

import (
	"image"

	cfg "github.com/automoto/webrunner/config"
)

// fakeWorld reports fixed contacts and optionally resolves intercepts.
type fakeWorld struct {
	touching  map[Side]bool
	intercept func(m *Mob) bool
	probes    []Side
}

func newFakeWorld(sides ...Side) *fakeWorld {
	w := &fakeWorld{touching: map[Side]bool{}}
	for _, s := range sides {
		w.touching[s] = true
	}
	return w
}

func (w *fakeWorld) TouchingPlatform(m *Mob, side Side) bool {
	w.probes = append(w.probes, side)
	return w.touching[side]
}

func (w *fakeWorld) DetectPlatformIntercept(m *Mob) bool {
	if w.intercept == nil {
		return false
	}
	return w.intercept(m)
}

type recordedSFX struct {
	played []cfg.SoundID
}

func (r *recordedSFX) PlaySFX(id cfg.SoundID) {
	r.played = append(r.played, id)
}

type staticSprite struct {
	img image.Image
}

func (s staticSprite) Image() (image.Image, bool) {
	return s.img, s.img != nil
}

type drawCall struct {
	op       string
	img      image.Image
	src, dst image.Rectangle
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawImage(img image.Image, src, dst image.Rectangle) {
	s.calls = append(s.calls, drawCall{op: "draw", img: img, src: src, dst: dst})
}

func (s *recordingSurface) ClearRect(r image.Rectangle) {
	s.calls = append(s.calls, drawCall{op: "clear", dst: r})
}

func (s *recordingSurface) StrokeRect(r image.Rectangle) {
	s.calls = append(s.calls, drawCall{op: "stroke", dst: r})
}
