package assets

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"sync"
	"time"

	// Decoders for the sprite formats levels may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// SpriteState is the loading state of a sprite handle.
type SpriteState int

const (
	SpriteLoading SpriteState = iota
	SpriteReady
	SpriteFailed
)

func (s SpriteState) String() string {
	switch s {
	case SpriteReady:
		return "ready"
	case SpriteFailed:
		return "failed"
	}
	return "loading"
}

// Sprite is a handle to an image decoded in the background. It completes
// exactly once, either ready or failed, and never blocks its readers.
type Sprite struct {
	path string
	done chan struct{}
	img  image.Image
	err  error
}

func newSprite(path string) *Sprite {
	return &Sprite{path: path, done: make(chan struct{})}
}

func (s *Sprite) Path() string { return s.path }

// Done is closed once loading has finished.
func (s *Sprite) Done() <-chan struct{} { return s.done }

// Image returns the decoded image if loading succeeded.
func (s *Sprite) Image() (image.Image, bool) {
	select {
	case <-s.done:
		return s.img, s.err == nil
	default:
		return nil, false
	}
}

func (s *Sprite) State() SpriteState {
	select {
	case <-s.done:
		if s.err != nil {
			return SpriteFailed
		}
		return SpriteReady
	default:
		return SpriteLoading
	}
}

// Err is the loading error, nil while loading or on success.
func (s *Sprite) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *Sprite) finish(img image.Image, err error) {
	s.img, s.err = img, err
	close(s.done)
}

// SpriteLoader decodes sprites from a file system. Every Load returns its own
// handle; concurrent loads of the same path share a single decode and
// decoded images are cached.
type SpriteLoader struct {
	fsys    fs.FS
	timeout time.Duration
	group   singleflight.Group

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewSpriteLoader creates a loader reading from fsys. Loads that take longer
// than timeout fail; zero disables the limit.
func NewSpriteLoader(fsys fs.FS, timeout time.Duration) *SpriteLoader {
	return &SpriteLoader{
		fsys:    fsys,
		timeout: timeout,
		cache:   make(map[string]image.Image),
	}
}

// Load starts loading path and returns immediately.
func (l *SpriteLoader) Load(path string) *Sprite {
	s := newSprite(path)

	l.mu.Lock()
	img, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		s.finish(img, nil)
		return s
	}

	go l.fetch(s)
	return s
}

func (l *SpriteLoader) fetch(s *Sprite) {
	ctx := context.Background()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	ch := l.group.DoChan(s.path, func() (interface{}, error) {
		return l.decode(s.path)
	})

	select {
	case r := <-ch:
		img, _ := r.Val.(image.Image)
		s.finish(img, r.Err)
	case <-ctx.Done():
		s.finish(nil, fmt.Errorf("failed to load sprite %s: %w", s.path, ctx.Err()))
	}

	if err := s.Err(); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("sprite unavailable, drawing placeholder")
	}
}

func (l *SpriteLoader) decode(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = img
	l.mu.Unlock()

	log.Debug().Str("path", path).Str("format", format).Msg("sprite loaded")
	return img, nil
}
