package mobs

import (
	"errors"
	"image"
	"math"

	cfg "github.com/automoto/webrunner/config"
	"github.com/solarlune/resolv"
)

// FrameCount is the number of animation frames in one sprite sheet row.
const FrameCount = 5

// ErrInvalidSize is returned when a mob is built with a degenerate box.
var ErrInvalidSize = errors.New("mob box must have a positive width and height")

// Facing is the movement direction a mob is animated with. Its value is the
// sprite sheet row for that direction.
type Facing int

const (
	GoingLeft Facing = iota
	GoingRight
	StandStill
)

func (f Facing) String() string {
	switch f {
	case GoingLeft:
		return "left"
	case GoingRight:
		return "right"
	}
	return "still"
}

// Mob is a simulated physical actor: a bounding box with velocity, stats
// and animation state.
type Mob struct {
	Box      *resolv.Object
	VX, VY   float64
	Stats    cfg.MobStats
	Kind     string
	Animated bool
	Sprite   Sprite

	frame        int
	facing       Facing
	jumping      bool
	dead         bool
	prevX, prevY float64
}

// NewMob creates a mob of the given kind with its top-left corner at (x, y).
// Stats start from the global mob defaults.
func NewMob(kind string, x, y, w, h float64, sprite Sprite, animated bool) (*Mob, error) {
	if !(w > 0) || !(h > 0) {
		return nil, ErrInvalidSize
	}
	return &Mob{
		Box:      resolv.NewObject(x, y, w, h),
		Stats:    cfg.Mob.Stats,
		Kind:     kind,
		Animated: animated,
		Sprite:   sprite,
		facing:   StandStill,
		prevX:    x,
		prevY:    y,
	}, nil
}

func (m *Mob) Left() float64   { return m.Box.X }
func (m *Mob) Top() float64    { return m.Box.Y }
func (m *Mob) Width() float64  { return m.Box.W }
func (m *Mob) Height() float64 { return m.Box.H }

// Previous is the top-left corner the mob had before its last Update.
func (m *Mob) Previous() (x, y float64) { return m.prevX, m.prevY }

func (m *Mob) Alive() bool    { return !m.dead }
func (m *Mob) Jumping() bool  { return m.jumping }
func (m *Mob) Frame() int     { return m.frame }
func (m *Mob) Facing() Facing { return m.facing }

// Move displaces the mob and advances its animation. A zero move resets the
// animation to standing still. Any move ends a pending jump.
func (m *Mob) Move(dx, dy float64) {
	m.jumping = false
	if dx == 0 && dy == 0 {
		m.frame = 0
		m.facing = StandStill
		return
	}

	m.frame = (m.frame + 1) % FrameCount
	// Pure vertical moves count as going left.
	if dx <= 0 {
		m.facing = GoingLeft
	} else {
		m.facing = GoingRight
	}
	m.setPosition(m.Box.X+dx, m.Box.Y+dy)
}

// OnGround reports whether the mob stands on a platform.
func (m *Mob) OnGround(w World) bool {
	return w.TouchingPlatform(m, SideBottom)
}

// StopAt snaps the mob flush against the obstacle described by ic and
// cancels its velocity towards it. Hitting something overhead is silent.
func (m *Mob) StopAt(ic Intercept, sfx SFX) {
	switch ic.Side {
	case SideTop:
		m.VY = 0
		m.setPosition(ic.X, ic.Y-m.Box.H)
	case SideBottom:
		m.VY = 0
		m.setPosition(ic.X, ic.Y)
		sfx.PlaySFX(cfg.SoundBonk)
	case SideLeft:
		m.VX = 0
		m.setPosition(ic.X-m.Box.W, ic.Y)
		sfx.PlaySFX(cfg.SoundBonk)
	case SideRight:
		m.VX = 0
		m.setPosition(ic.X, ic.Y)
		sfx.PlaySFX(cfg.SoundBonk)
	}
}

// Update advances the mob by one tick. ticks is accepted for variable time
// steps; one unit of integration is applied per call.
func (m *Mob) Update(w World, ticks int) {
	m.prevX, m.prevY = m.Box.X, m.Box.Y

	if !m.OnGround(w) {
		m.VY += m.Stats.Gravity
	}

	if !w.DetectPlatformIntercept(m) {
		m.Move(m.VX, m.VY)
	}
}

// Jump applies the jump impulse when the mob is grounded, not already
// jumping and has nothing overhead.
func (m *Mob) Jump(w World, sfx SFX) {
	if m.OnGround(w) && !m.jumping && !w.TouchingPlatform(m, SideTop) {
		sfx.PlaySFX(cfg.SoundJump)
		m.VY -= m.Stats.JumpPower
		m.jumping = true
	}
}

// Idle applies ground friction, never reversing the direction of travel.
func (m *Mob) Idle(w World) {
	if !m.OnGround(w) {
		return
	}
	if m.VX > 0 {
		m.VX = math.Max(m.VX-m.Stats.Friction, 0)
	} else if m.VX < 0 {
		m.VX = math.Min(m.VX+m.Stats.Friction, 0)
	}
}

// GoLeft accelerates towards -TopSpeed unless a wall is in the way.
func (m *Mob) GoLeft(w World) {
	if w.TouchingPlatform(m, SideLeft) {
		return
	}
	m.VX = math.Max(m.VX-m.Stats.Acceleration, -m.Stats.TopSpeed)
}

// GoRight accelerates towards TopSpeed unless a wall is in the way.
func (m *Mob) GoRight(w World) {
	if w.TouchingPlatform(m, SideRight) {
		return
	}
	m.VX = math.Min(m.VX+m.Stats.Acceleration, m.Stats.TopSpeed)
}

func (m *Mob) Die() {
	m.dead = true
}

// Draw renders the mob, or an outline while its sprite is unavailable.
func (m *Mob) Draw(s Surface) {
	dst := m.Rect()

	var img image.Image
	ready := false
	if m.Sprite != nil {
		img, ready = m.Sprite.Image()
	}
	if !ready {
		s.StrokeRect(dst)
		return
	}

	b := img.Bounds()
	if !m.Animated {
		s.DrawImage(img, b, image.Rect(dst.Min.X, dst.Min.Y, dst.Min.X+b.Dx(), dst.Min.Y+b.Dy()))
		return
	}

	w, h := dst.Dx(), dst.Dy()
	src := image.Rect(0, 0, w, h).Add(image.Pt(w*m.frame, h*int(m.facing))).Add(b.Min)
	s.DrawImage(img, src, dst)
}

func (m *Mob) Erase(s Surface) {
	s.ClearRect(m.Rect())
}

// Rect is the mob's box in whole pixels.
func (m *Mob) Rect() image.Rectangle {
	x, y := int(math.Floor(m.Box.X)), int(math.Floor(m.Box.Y))
	return image.Rect(x, y, x+int(m.Box.W), y+int(m.Box.H))
}

func (m *Mob) setPosition(x, y float64) {
	m.Box.X = x
	m.Box.Y = y
	m.Box.Update()
}
