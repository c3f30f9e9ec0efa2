package config

import (
	"time"

	"github.com/san-kum/beatviz/internal/mode"
)

// Apply overlays the non-zero config values onto a mode's parameter set.
// CLI flags are applied by the command layer after this, so precedence is
// mode table < preset < config file < flags.
func (c *Config) Apply(p mode.Params) mode.Params {
	if c.BeatInterval > 0 {
		p.BeatInterval = time.Duration(c.BeatInterval * float64(time.Second))
	}
	if c.SubBeatInterval > 0 {
		p.SubBeatInterval = time.Duration(c.SubBeatInterval * float64(time.Second))
	}
	if c.TargetFPS > 0 {
		p.TargetFPS = c.TargetFPS
	}
	if c.MaxEffects > 0 {
		p.MaxEffects = c.MaxEffects
	}
	return p
}
