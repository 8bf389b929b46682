package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBonk
	SoundJump
	SoundCrunch
)

func (s SoundID) String() string {
	switch s {
	case SoundBonk:
		return "bonk"
	case SoundJump:
		return "jump"
	case SoundCrunch:
		return "crunch"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultSFXVol   float64
	DefaultMusicVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultSFXVol:   1.0,
		DefaultMusicVol: 0.75,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundBonk:   "audio/sfx/bonk.wav",
			SoundJump:   "audio/sfx/jump.wav",
			SoundCrunch: "audio/sfx/crunch.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCrunch: 1.5,
		},
	}
}
