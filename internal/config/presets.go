package config

// Presets are named override bundles per mode, in the same spirit as the
// mode table but for tastes the fixed three modes don't cover. Intervals
// are in seconds.
var Presets = map[string]map[string]*Config{
	"simple": {
		"chill": {
			Mode: "simple", BeatInterval: 0.75, TargetFPS: 24,
		},
		"double_time": {
			Mode: "simple", BeatInterval: 0.25,
		},
	},
	"standard": {
		"club": {
			Mode: "standard", BeatInterval: 0.462, // ~130 BPM
		},
		"halftime": {
			Mode: "standard", BeatInterval: 1.0, SubBeatInterval: 0.25,
		},
	},
	"insane": {
		"chaos": {
			Mode: "insane", SubBeatInterval: 0.1, MaxEffects: 150,
		},
		"strobe": {
			Mode: "insane", BeatInterval: 0.3, TargetFPS: 60,
		},
	},
}

func GetPreset(modeName, preset string) *Config {
	modePresets, ok := Presets[modeName]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(modeName string) []string {
	modePresets, ok := Presets[modeName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}
