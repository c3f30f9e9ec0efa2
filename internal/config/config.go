package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user overrides loaded from a YAML file or a preset.
// Intervals are in seconds, matching the other timing knobs. Zero values
// mean "use the mode's default".
type Config struct {
	Mode            string  `yaml:"mode"`
	Theme           string  `yaml:"theme"`
	BeatInterval    float64 `yaml:"beat_interval"`
	SubBeatInterval float64 `yaml:"sub_beat_interval"`
	TargetFPS       int     `yaml:"target_fps"`
	MaxEffects      int     `yaml:"max_effects"`
	Seed            int64   `yaml:"seed"`
	Sync            bool    `yaml:"sync"`
	DataDir         string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:    "standard",
		Theme:   "neon",
		DataDir: ".beatviz",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges for values that would break the loop.
func (c *Config) Validate() error {
	if c.BeatInterval < 0 {
		return fmt.Errorf("beat_interval must not be negative, got %f", c.BeatInterval)
	}
	if c.SubBeatInterval < 0 {
		return fmt.Errorf("sub_beat_interval must not be negative, got %f", c.SubBeatInterval)
	}
	if c.TargetFPS < 0 || c.TargetFPS > 240 {
		return fmt.Errorf("target_fps out of range: %d", c.TargetFPS)
	}
	if c.MaxEffects < 0 {
		return fmt.Errorf("max_effects must not be negative, got %d", c.MaxEffects)
	}
	return nil
}
