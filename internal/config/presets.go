package config

import "sort"

// Presets bundle measurement setups used in the lab course, keyed by
// scenario name.
var presets = map[string]*Config{
	"pulse-tracer": {
		Input: InputConfig{
			Separator:    ";",
			SkipRows:     2,
			HeaderRow:    0,
			TimeColumn:   0,
			SignalColumn: 1,
		},
		Kinetics: KineticsConfig{K0: 1e8, Ea: 75000, Temperature: 350},
		Reactor:  ReactorConfig{FlowRate: 1.0, FeedConcentration: 1.0},
		Output:   OutputConfig{DataDir: DefaultDataDir},
	},
	"saline-step": {
		Input: InputConfig{
			Separator:    ";",
			HeaderRow:    -1,
			TimeColumn:   0,
			SignalColumn: 2,
		},
		Kinetics: KineticsConfig{K0: 4.5e6, Ea: 62000, Temperature: 298.15},
		Reactor:  ReactorConfig{FlowRate: 0.5, FeedConcentration: 0.1},
		Output:   OutputConfig{DataDir: DefaultDataDir},
	},
	"slow-kinetics": {
		Input: InputConfig{
			Separator:    ",",
			HeaderRow:    0,
			TimeColumn:   0,
			SignalColumn: 1,
		},
		Kinetics: KineticsConfig{K0: 2.2e4, Ea: 48000, Temperature: 323.15},
		Reactor:  ReactorConfig{FlowRate: 2.0, FeedConcentration: 0.8},
		Output:   OutputConfig{DataDir: DefaultDataDir},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
