// Package world answers the geometry questions mobs ask about a level: what
// they are touching, where their path meets a platform, and which mobs
// overlap each other.
package world

import (
	"math"

	cfg "github.com/automoto/webrunner/config"
	"github.com/automoto/webrunner/mobs"
	"github.com/automoto/webrunner/tags"
	"github.com/solarlune/resolv"
)

// Platforms is a level's static geometry plus the mobs moving through it,
// indexed in a resolv space.
type Platforms struct {
	space  *resolv.Space
	sfx    mobs.SFX
	cell   int
	height float64
}

// New creates an empty level of the given pixel size. Cues for intercepts
// resolved by the world are played on sfx.
func New(width, height int, sfx mobs.SFX) *Platforms {
	cell := cfg.World.CellSize
	if cell <= 0 {
		cell = 16
	}
	if sfx == nil {
		sfx = mobs.NopSFX
	}
	return &Platforms{
		space:  resolv.NewSpace(width, height, cell, cell),
		sfx:    sfx,
		cell:   cell,
		height: float64(height),
	}
}

func (p *Platforms) Space() *resolv.Space { return p.space }

// AddPlatform adds a solid box to the level.
func (p *Platforms) AddPlatform(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	p.space.Add(obj)
	return obj
}

// AddDeadZone adds a box that kills any mob overlapping it.
func (p *Platforms) AddDeadZone(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	p.space.Add(obj)
	return obj
}

// InDeadZone reports whether m overlaps a dead zone or has dropped below the
// bottom of the level.
func (p *Platforms) InDeadZone(m *mobs.Mob) bool {
	box := m.Box
	if box.Y >= p.height {
		return true
	}
	check := box.Check(0, 0, tags.ResolvDeadZone)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvDeadZone) {
		if overlaps(box.X, box.Y, box.W, box.H, o) {
			return true
		}
	}
	return false
}

// AddActor indexes an actor's box so it can be probed and touched.
func (p *Platforms) AddActor(a mobs.Actor) {
	box := a.Body().Box
	box.AddTags(tags.ResolvCharacter)
	if mobs.IsPlayer(a) {
		box.AddTags(tags.ResolvPlayer)
	} else {
		box.AddTags(tags.ResolvEnemy)
	}
	box.Data = a
	p.space.Add(box)
}

// RemoveActor drops an actor's box from the space. Its mob keeps working but
// no longer collides with anything.
func (p *Platforms) RemoveActor(a mobs.Actor) {
	box := a.Body().Box
	if box.Space == p.space {
		p.space.Remove(box)
	}
}

// TouchingPlatform reports whether a platform lies flush against side of m.
func (p *Platforms) TouchingPlatform(m *mobs.Mob, side mobs.Side) bool {
	d := cfg.World.Probe
	var dx, dy float64
	switch side {
	case mobs.SideTop:
		dy = -d
	case mobs.SideBottom:
		dy = d
	case mobs.SideLeft:
		dx = -d
	case mobs.SideRight:
		dx = d
	}

	box := m.Box
	check := box.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(box.X+dx, box.Y+dy, box.W, box.H, o) {
			return true
		}
	}
	return false
}

// DetectPlatformIntercept sweeps m along its velocity, horizontal axis first
// at the mob's current height, then vertical with the horizontal
// displacement applied. When a platform is in the way it snaps m against it
// through StopAt and returns true.
func (p *Platforms) DetectPlatformIntercept(m *mobs.Mob) bool {
	box := m.Box
	dx, dy := m.VX, m.VY
	if (dx == 0 && dy == 0) || box.Space == nil {
		return false
	}

	hitH, hitV := false, false
	var ih, iv mobs.Intercept

	if dx != 0 {
		if dist, ok := p.nearest(box, dx, 0, true); ok {
			hitH = true
			if dx > 0 {
				ih = mobs.Intercept{Side: mobs.SideRight, X: box.X + dist}
			} else {
				ih = mobs.Intercept{Side: mobs.SideLeft, X: box.X + dist + box.W}
			}
			dx = dist
		}
	}

	if dy != 0 {
		if dist, ok := p.nearest(box, dx, dy, false); ok {
			hitV = true
			x := box.X + dx
			if dy > 0 {
				iv = mobs.Intercept{Side: mobs.SideBottom, X: x, Y: box.Y + dist}
			} else {
				iv = mobs.Intercept{Side: mobs.SideTop, X: x, Y: box.Y + dist + box.H}
			}
		}
	}

	switch {
	case hitH && hitV:
		ih.Y = box.Y
		m.StopAt(ih, p.sfx)
		m.StopAt(iv, p.sfx)
	case hitH:
		ih.Y = box.Y + dy
		m.StopAt(ih, p.sfx)
	case hitV:
		m.StopAt(iv, p.sfx)
	default:
		return false
	}
	return true
}

// nearest steps box along one axis by at most a cell at a time and returns
// the distance to the closest solid it would run into this tick. lateral is
// the fixed offset on the other axis. Only solids overlapping the box across
// the direction of travel count.
func (p *Platforms) nearest(box *resolv.Object, dx, dy float64, horizontal bool) (float64, bool) {
	travel, lateral := dy, dx
	if horizontal {
		travel, lateral = dx, dy
	}
	n := int(math.Ceil(math.Abs(travel) / float64(p.cell)))

	best, found := 1.0, false
	for i := 1; i <= n; i++ {
		d := travel * float64(i) / float64(n)

		var check *resolv.Collision
		if horizontal {
			check = box.Check(d, lateral, tags.ResolvSolid)
		} else {
			check = box.Check(lateral, d, tags.ResolvSolid)
		}
		if check == nil {
			continue
		}

		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			contact := check.ContactWithObject(o)
			dist := contact.Y()
			across := box.X + lateral
			if horizontal {
				dist = contact.X()
				across = box.Y + lateral
			}
			if horizontal && !(across < o.Y+o.H && across+box.H > o.Y) {
				continue
			}
			if !horizontal && !(across < o.X+o.W && across+box.W > o.X) {
				continue
			}
			// Fraction of this tick's travel spent before touching o.
			if t := dist / travel; t >= 0 && t <= 1 && (!found || t < best) {
				best, found = t, true
			}
		}
		if found {
			break
		}
	}
	return best * travel, found
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}
