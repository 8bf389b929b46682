package systems

import (
	"sync"

	"github.com/automoto/webrunner/components"
	cfg "github.com/automoto/webrunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The audio context can only be created once per process.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// AudioContext returns the process wide audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// SFXQueue queues sound effects on the world's audio singleton. They are
// played by UpdateAudio at the start of the next tick.
type SFXQueue struct {
	World donburi.World
}

func (q SFXQueue) PlaySFX(id cfg.SoundID) {
	if id == cfg.SoundNone || q.World == nil {
		return
	}
	entry, ok := components.Audio.First(q.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio plays and clears the pending sound effects.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(a *components.AudioData, soundID cfg.SoundID) {
	if a.Loader == nil || a.SFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := a.Loader.LoadSFX(path)
	if err != nil {
		log.Debug().Err(err).Stringer("sound", soundID).Msg("skipping sound effect")
		return
	}

	volume := a.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping the track at path, replacing whatever is playing.
// Asking for the current track again is a no-op; an empty path stops the
// music.
func PlayMusic(e *ecs.ECS, path string) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	if a.MusicKey == path && (path == "" || a.Music != nil) {
		return
	}
	stopMusic(a)
	if path == "" || a.Loader == nil {
		return
	}

	player, err := a.Loader.LoadMusic(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("music unavailable")
		return
	}
	player.SetVolume(a.MusicVolume)
	player.Play()
	a.Music, a.MusicKey = player, path
	log.Debug().Str("path", path).Msg("music started")
}

// StopMusic stops and releases the playing track, if any.
func StopMusic(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		stopMusic(components.Audio.Get(entry))
	}
}

func stopMusic(a *components.AudioData) {
	if a.Music != nil {
		_ = a.Music.Close()
	}
	a.Music, a.MusicKey = nil, ""
}
