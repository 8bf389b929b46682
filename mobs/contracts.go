package mobs

import (
	"image"

	cfg "github.com/automoto/webrunner/config"
)

// World answers geometry queries about the static level.
type World interface {
	// TouchingPlatform reports whether a platform touches the mob on side.
	TouchingPlatform(m *Mob, side Side) bool
	// DetectPlatformIntercept tests the mob's path along its velocity. When it
	// returns true the world has already called StopAt on the mob.
	DetectPlatformIntercept(m *Mob) bool
}

// SFX plays sound cues. Calls are fire-and-forget.
type SFX interface {
	PlaySFX(id cfg.SoundID)
}

// Surface is the minimal drawing target a mob renders onto.
type Surface interface {
	DrawImage(img image.Image, src, dst image.Rectangle)
	ClearRect(r image.Rectangle)
	StrokeRect(r image.Rectangle)
}

// Sprite is a handle to an image that may still be loading.
type Sprite interface {
	// Image returns the decoded image once it is ready.
	Image() (image.Image, bool)
}

type nopSFX struct{}

func (nopSFX) PlaySFX(cfg.SoundID) {}

// NopSFX discards every cue.
var NopSFX SFX = nopSFX{}
