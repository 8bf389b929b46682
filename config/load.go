package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// overlay is the on-disk shape of a configuration file. Every field is
// optional; absent values keep their current setting.
type overlay struct {
	Width         int                  `yaml:"width"`
	Height        int                  `yaml:"height"`
	Mob           *MobStats            `yaml:"mob"`
	Enemies       map[string]yaml.Node `yaml:"enemies"`
	FadeSeconds   float32              `yaml:"deathFadeSeconds"`
	SpriteTimeout time.Duration        `yaml:"spriteTimeout"`
}

// Load overlays the YAML file at path onto the global configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to apply config %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML document data onto the global configuration.
func Apply(data []byte) error {
	stats := Mob.Stats
	o := overlay{Mob: &stats}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return err
	}

	// Enemy overrides start from the stats the type currently uses so a
	// partial block only changes the keys it names.
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	for name, node := range o.Enemies {
		t, ok := types[name]
		if !ok {
			return fmt.Errorf("unknown enemy type %q", name)
		}
		s := stats
		if t.Stats != nil {
			s = *t.Stats
		}
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
		t.Stats = &s
		types[name] = t
	}

	if o.Width > 0 {
		C.Width = o.Width
	}
	if o.Height > 0 {
		C.Height = o.Height
	}
	Mob.Stats = stats
	Enemy.Types = types
	if o.FadeSeconds > 0 {
		Death.FadeSeconds = o.FadeSeconds
	}
	if o.SpriteTimeout > 0 {
		Assets.SpriteTimeout = o.SpriteTimeout
	}
	return nil
}
