package config

import "sort"

var Presets = map[string]TimingConfig{
	"default": {DelayMS: DefaultDelayMS, StaggerMS: DefaultStaggerMS, ScaleStart: DefaultScaleStart, DebounceMS: DefaultDebounceMS},
	"calm":    {DelayMS: 1200, StaggerMS: 120, ScaleStart: 0.8, DebounceMS: 400},
	"snappy":  {DelayMS: 100, StaggerMS: 15, ScaleStart: 0.3, DebounceMS: 120},
	"instant": {DelayMS: 0, StaggerMS: 1, ScaleStart: 1, DebounceMS: 50},
}

// GetPreset returns the default config with a named timing preset applied,
// or nil when the preset does not exist.
func GetPreset(name string) *Config {
	timing, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Timing = timing
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
