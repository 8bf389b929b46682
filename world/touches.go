package world

import (
	"math"

	"github.com/automoto/webrunner/mobs"
	"github.com/automoto/webrunner/tags"
)

// Touch is a contact between two overlapping mobs. Intercept.Side is the
// side of A that B touched.
type Touch struct {
	A, B      mobs.Actor
	Intercept mobs.Intercept
}

// Touches returns every pair of overlapping actors, each pair once, with A
// being the actor that comes first in actors. Actors that are not
// substantial on the touched side are skipped.
func (p *Platforms) Touches(actors []mobs.Actor) []Touch {
	order := make(map[mobs.Actor]int, len(actors))
	for i, a := range actors {
		order[a] = i
	}

	var out []Touch
	for i, a := range actors {
		box := a.Body().Box
		if box.Space == nil {
			continue
		}
		check := box.Check(0, 0, tags.ResolvCharacter)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvCharacter) {
			b, ok := o.Data.(mobs.Actor)
			if !ok {
				continue
			}
			if j, ok := order[b]; !ok || j <= i {
				continue
			}
			ic, ok := contact(a.Body(), b.Body())
			if !ok || !substantial(a, ic.Side) || !substantial(b, ic.Side.Reflect()) {
				continue
			}
			out = append(out, Touch{A: a, B: b, Intercept: ic})
		}
	}
	return out
}

// contact reports whether a and b overlap and, if so, which side of a was
// touched. The axis the mobs were still apart on before their last update
// decides; when both or neither were apart, the axis that closed last or
// the one with the smaller penetration wins. Relative centres pick the face.
// The anchor is the top-left of the overlap.
func contact(a, b *mobs.Mob) (mobs.Intercept, bool) {
	ab, bb := a.Box, b.Box
	ox, left := overlap(ab.X, ab.W, bb.X, bb.W)
	oy, top := overlap(ab.Y, ab.H, bb.Y, bb.H)
	if ox <= 0 || oy <= 0 {
		return mobs.Intercept{}, false
	}

	ax, ay := a.Previous()
	bx, by := b.Previous()
	px, _ := overlap(ax, ab.W, bx, bb.W)
	py, _ := overlap(ay, ab.H, by, bb.H)

	vertical := oy <= ox
	switch {
	case py <= 0 && px > 0:
		vertical = true
	case px <= 0 && py > 0:
		vertical = false
	case px <= 0 && py <= 0:
		// Fraction of the last update spent before each axis closed.
		tx := px / (px - ox)
		ty := py / (py - oy)
		vertical = ty >= tx
	}

	ic := mobs.Intercept{X: left, Y: top}
	if vertical {
		if bb.Y+bb.H/2 < ab.Y+ab.H/2 {
			ic.Side = mobs.SideTop
		} else {
			ic.Side = mobs.SideBottom
		}
	} else {
		if bb.X+bb.W/2 < ab.X+ab.W/2 {
			ic.Side = mobs.SideLeft
		} else {
			ic.Side = mobs.SideRight
		}
	}
	return ic, true
}

// overlap returns the length two spans share on one axis, negative when they
// are apart, and where the shared part starts.
func overlap(a, aw, b, bw float64) (float64, float64) {
	start := math.Max(a, b)
	return math.Min(a+aw, b+bw) - start, start
}

func substantial(a mobs.Actor, side mobs.Side) bool {
	if s, ok := a.(mobs.Substantial); ok {
		return s.Substantial(side)
	}
	return true
}
