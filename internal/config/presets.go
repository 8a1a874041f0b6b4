package config

import "sort"

func dur(s float64) *float64 { return &s }

// Presets are built-in scenes exercising each mode and easing family.
var Presets = map[string]*Config{
	"simple": {
		Name: "simple", Length: 2, FPS: 60, Duration: 1, Easing: "linear", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}},
	},
	"retarget": {
		Name: "retarget", Length: 3, FPS: 60, Duration: 1, Easing: "linear", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}, {At: 0.5, Target: 20}},
	},
	"replace": {
		Name: "replace", Length: 3, FPS: 60, Duration: 1, Easing: "linear", Mode: "replace-or-start",
		Steps: []Step{{At: 0, Target: 10, Mode: "start"}, {At: 0.5, Target: 20}},
	},
	"snap": {
		Name: "snap", Length: 2, FPS: 60, Duration: 1, Easing: "sine-out", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}, {At: 0.4, Target: 5, Mode: "snap"}},
	},
	"pileup": {
		Name: "pileup", Length: 3, FPS: 60, Duration: 0.8, Easing: "cubic-out", Mode: "start",
		Steps: []Step{
			{At: 0, Target: 10}, {At: 0.1, Target: -10}, {At: 0.2, Target: 15},
			{At: 0.3, Target: 0}, {At: 0.4, Target: 8},
		},
	},
	"follow": {
		Name: "follow", Length: 2, FPS: 60, Duration: 0.3, Easing: "quad-out", Mode: "replace-or-start",
		Steps: []Step{
			{At: 0, Target: 1}, {At: 0.05, Target: 2}, {At: 0.1, Target: 3},
			{At: 0.15, Target: 4}, {At: 0.2, Target: 5},
		},
	},
	"overshoot": {
		Name: "overshoot", Length: 2, FPS: 60, Duration: 1, Easing: "back-out", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}},
	},
	"elastic": {
		Name: "elastic", Length: 2.5, FPS: 60, Duration: 1.5, Easing: "elastic-out", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}},
	},
	"bounce": {
		Name: "bounce", Length: 2, FPS: 60, Duration: 1, Easing: "bounce-out", Mode: "start",
		Steps: []Step{{At: 0, Target: 10}},
	},
	"instant": {
		Name: "instant", Length: 1, FPS: 60, Duration: 1, Easing: "linear", Mode: "start",
		Steps: []Step{{At: 0, Target: 10, Duration: dur(0)}},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	out.MQTT = DefaultConfig().MQTT
	return out
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
