package assets

import (
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/webrunner/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX levels.
const (
	PlatformsGroup = "platforms"
	MobsGroup      = "mobs"
	DeadZonesGroup = "deadzones"
)

// Map properties read from TMX levels.
const (
	BackgroundProperty = "background"
	MusicProperty      = "music"
)

// ErrNoPlatforms is returned for levels without any solid geometry.
var ErrNoPlatforms = errors.New("level has no platforms")

// Rect is an axis-aligned box in level pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Spawn places a mob of a registered kind.
type Spawn struct {
	Kind string
	X, Y float64
}

type Level struct {
	Name      string
	Width     int
	Height    int
	Start     Spawn // player start
	Platforms []Rect
	DeadZones []Rect
	Spawns    []Spawn

	Background string // sprite path, empty for none
	Music      string // looping track path, empty for silence
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Load parses a TMX level. Rectangles in the platforms group become solid
// boxes; objects in the mobs group are spawns keyed by their class (or
// legacy type). The object of class "player", or named "start", is the
// player start. Rectangles in the deadzones group kill mobs entering them.
// The background and music map properties name the level's backdrop and
// soundtrack.
func (l *LevelLoader) Load(path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}

	level := &Level{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Start:  Spawn{Kind: cfg.KindPlayer},
	}
	if props := levelMap.Properties; props != nil {
		level.Background = props.GetString(BackgroundProperty)
		level.Music = props.GetString(MusicProperty)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformsGroup:
			level.Platforms = append(level.Platforms, rects(og.Objects)...)
		case DeadZonesGroup:
			level.DeadZones = append(level.DeadZones, rects(og.Objects)...)
		case MobsGroup:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older TMX files use type=
				}
				if kind == cfg.KindPlayer || o.Name == "start" {
					level.Start = Spawn{Kind: cfg.KindPlayer, X: o.X, Y: o.Y}
					continue
				}
				if kind == "" {
					continue
				}
				level.Spawns = append(level.Spawns, Spawn{Kind: kind, X: o.X, Y: o.Y})
			}
		}
	}

	if len(level.Platforms) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPlatforms)
	}
	return level, nil
}

func rects(objects []*tiled.Object) []Rect {
	var out []Rect
	for _, o := range objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		out = append(out, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return out
}

// MustLoad is Load for levels shipped with the game.
func (l *LevelLoader) MustLoad(path string) *Level {
	level, err := l.Load(path)
	if err != nil {
		panic(err)
	}
	return level
}
