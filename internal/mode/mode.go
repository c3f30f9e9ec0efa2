package mode

import (
	"fmt"
	"time"

	"github.com/san-kum/beatviz/internal/effect"
)

// Mode is a named visualization preset bundling pacing and density parameters.
type Mode int

const (
	Simple Mode = iota
	Standard
	Insane
)

func (m Mode) String() string {
	switch m {
	case Simple:
		return "simple"
	case Standard:
		return "standard"
	case Insane:
		return "insane"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Parse validates a mode name. Anything outside the closed set is rejected
// so the loop never starts with an unknown configuration.
func Parse(s string) (Mode, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "standard":
		return Standard, nil
	case "insane":
		return Insane, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (valid: simple, standard, insane)", s)
	}
}

// Names lists the valid mode names in order.
func Names() []string {
	return []string{Simple.String(), Standard.String(), Insane.String()}
}

// Params carries everything the scheduler and renderer need for one mode.
type Params struct {
	BeatInterval    time.Duration
	SubBeatInterval time.Duration // zero disables sub-beats
	TargetFPS       int
	MaxEffects      int // cap on concurrently tracked transient effects

	// Spawner shape
	KindWeights   map[effect.Kind]int
	KindsPerPoint int // insane samples 2 kinds per spawn point
	SpawnPoints   int // spawn locations per beat
	CountScale    int // effect count ~ intensity*CountScale + CountMin
	CountMin      int
	CountCap      int
	Lifetime      int // frames a spawned effect stays live

	// Intensity perturbation per beat
	IntensityBase   float64
	IntensityJitter float64

	// Periodic overlays
	RotationPeriod int  // beats between color-scheme rotations
	FlashEveryBeat int  // 0 disables the full-screen flash pass
	TextEveryBeat  int  // 0 disables text callouts
	ArtEnabled     bool // ascii art bursts

	SparkleDensity int // sub-beat sparkles ~ intensity*SparkleDensity
	FlashStep      int // grid stride of the flash pass
}

// Table returns the fixed parameter set for a mode. Values follow the
// original 120 BPM presets: beats every 0.5s across all modes, with
// density and lifetime scaling up from simple to insane.
func Table(m Mode) Params {
	switch m {
	case Simple:
		return Params{
			BeatInterval:    500 * time.Millisecond,
			SubBeatInterval: 0,
			TargetFPS:       30,
			MaxEffects:      20,
			KindWeights: map[effect.Kind]int{
				effect.KindFirework: 1,
			},
			KindsPerPoint:   1,
			SpawnPoints:     1,
			CountScale:      3,
			CountMin:        1,
			CountCap:        3,
			Lifetime:        30,
			IntensityBase:   0.5,
			IntensityJitter: 0,
			RotationPeriod:  8,
			FlashEveryBeat:  0,
			TextEveryBeat:   0,
			ArtEnabled:      false,
			SparkleDensity:  0,
			FlashStep:       0,
		}
	case Standard:
		return Params{
			BeatInterval:    500 * time.Millisecond,
			SubBeatInterval: 125 * time.Millisecond,
			TargetFPS:       40,
			MaxEffects:      40,
			KindWeights: map[effect.Kind]int{
				effect.KindFirework: 4,
				effect.KindFlash:    1,
				effect.KindText:     1,
				effect.KindArt:      2,
				effect.KindSparkle:  2,
			},
			KindsPerPoint:   1,
			SpawnPoints:     3,
			CountScale:      6,
			CountMin:        2,
			CountCap:        6,
			Lifetime:        50,
			IntensityBase:   0.7,
			IntensityJitter: 0.3,
			RotationPeriod:  8,
			FlashEveryBeat:  2,
			TextEveryBeat:   4,
			ArtEnabled:      true,
			SparkleDensity:  30,
			FlashStep:       4,
		}
	case Insane:
		return Params{
			BeatInterval:    500 * time.Millisecond,
			SubBeatInterval: 125 * time.Millisecond,
			TargetFPS:       40,
			MaxEffects:      100,
			KindWeights: map[effect.Kind]int{
				effect.KindFirework: 6,
				effect.KindFlash:    2,
				effect.KindText:     2,
				effect.KindArt:      3,
				effect.KindSparkle:  3,
			},
			KindsPerPoint:   2,
			SpawnPoints:     3,
			CountScale:      12,
			CountMin:        3,
			CountCap:        12,
			Lifetime:        50,
			IntensityBase:   0.8,
			IntensityJitter: 0.2,
			RotationPeriod:  4,
			FlashEveryBeat:  2,
			TextEveryBeat:   4,
			ArtEnabled:      true,
			SparkleDensity:  50,
			FlashStep:       3,
		}
	default:
		return Table(Standard)
	}
}

// SubBeatsEnabled reports whether the mode drives sub-beat effects.
func (p Params) SubBeatsEnabled() bool {
	return p.SubBeatInterval > 0
}

// FrameTime is the sleep target per render tick.
func (p Params) FrameTime() time.Duration {
	return time.Second / time.Duration(p.TargetFPS)
}
