// Package sound decodes and caches sound effects and music for the ebiten
// audio context.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"
)

// Loader handles loading and caching of sound effects
type Loader struct {
	fsys    fs.FS
	context *audio.Context

	mu    sync.Mutex
	cache map[string][]byte // decoded PCM per path
}

// NewLoader creates a loader reading from fsys and playing through ctx.
func NewLoader(fsys fs.FS, ctx *audio.Context) *Loader {
	return &Loader{
		fsys:    fsys,
		context: ctx,
		cache:   make(map[string][]byte),
	}
}

// Preload decodes every path and caches it without creating a player.
// Failures are logged and skipped so a missing file only mutes its sound.
func (l *Loader) Preload(paths ...string) {
	for _, path := range paths {
		if _, err := l.decoded(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("sound effect unavailable")
		}
	}
}

// LoadSFX returns a new player for path. Decoded bytes are cached so later
// calls start instantly.
func (l *Loader) LoadSFX(path string) (*audio.Player, error) {
	pcm, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// LoadMusic returns a player looping path forever.
func (l *Loader) LoadMusic(path string) (*audio.Player, error) {
	pcm, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

func (l *Loader) decoded(path string) ([]byte, error) {
	l.mu.Lock()
	pcm, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	pcm, err = decode(l.context.SampleRate(), path, data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = pcm
	l.mu.Unlock()
	return pcm, nil
}

func decode(sampleRate int, path string, data []byte) ([]byte, error) {
	var stream io.Reader

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}
