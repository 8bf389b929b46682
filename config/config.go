package config

import "time"

// Mob kinds understood by the interaction policy and the entity registry.
const (
	KindPlayer = "player"
	KindShrimp = "shrimp"
)

// MobStats are the per-instance movement tunables of a mob. Subtypes and
// power-ups override them on the instance, never on the defaults.
type MobStats struct {
	TopSpeed     float64 `yaml:"topSpeed"`
	Gravity      float64 `yaml:"gravity"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	JumpPower    float64 `yaml:"jumpPower"`
}

// MobConfig contains values shared by every mob
type MobConfig struct {
	Stats MobStats
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Sprite string
	Width  float64
	Height float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string
	Sprite      string
	Width       float64
	Height      float64
	StompBounce float64   // vertical speed given to a player that stomps this enemy
	Stats       *MobStats // nil means Mob.Stats
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// WorldConfig contains collision space configuration
type WorldConfig struct {
	CellSize int     // resolv cell size in pixels
	Probe    float64 // distance used for contact probes
}

// DeathConfig controls how dead mobs leave the scene
type DeathConfig struct {
	FadeSeconds float32
	TPS         float32 // ticks per second the fade is advanced by
}

// AssetsConfig contains asset loading configuration
type AssetsConfig struct {
	SpriteTimeout time.Duration // sprites still loading after this are marked failed
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Debug  bool // draw collision boxes
}

// Global configuration instances
var C *Config
var Mob MobConfig
var Player PlayerConfig
var Enemy EnemyConfig
var World WorldConfig
var Death DeathConfig
var Assets AssetsConfig

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 480,
	}

	Mob = MobConfig{
		Stats: MobStats{
			TopSpeed:     122,
			Gravity:      5,
			Acceleration: 2,
			Friction:     4,
			JumpPower:    30,
		},
	}

	Player = PlayerConfig{
		Sprite: "images/player.png",
		Width:  32,
		Height: 48,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			KindShrimp: {
				Name:        KindShrimp,
				Sprite:      "images/shrimp.gif",
				Width:       91,
				Height:      49,
				StompBounce: -10,
			},
		},
	}

	World = WorldConfig{
		CellSize: 16,
		Probe:    1,
	}

	Death = DeathConfig{
		FadeSeconds: 0.5,
		TPS:         60,
	}

	Assets = AssetsConfig{
		SpriteTimeout: 10 * time.Second,
	}

	resetAudio()
}

// EnemyStats returns the stats an enemy of the given type starts with.
func EnemyStats(kind string) MobStats {
	if t, ok := Enemy.Types[kind]; ok && t.Stats != nil {
		return *t.Stats
	}
	return Mob.Stats
}
