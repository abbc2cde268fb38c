package config

import "sort"

// Presets are named designs grouped by method.
var Presets = map[string]map[string]*Config{
	"pair": {
		"ramjet": {
			Method: "pair", FreestreamMach: 4.0, ExitMach: 2.0,
		},
		"scramjet": {
			Method: "pair", FreestreamMach: 6.0, ExitMach: 3.0,
		},
		"hypersonic": {
			Method: "pair", FreestreamMach: 8.0, ExitMach: 3.0,
		},
		"mild": {
			Method: "pair", FreestreamMach: 3.0, ExitMach: 2.0,
		},
	},
	"recovery": {
		"high": {
			Method: "recovery", ExitMach: 2.5, Recovery: 0.95,
		},
		"balanced": {
			Method: "recovery", ExitMach: 2.5, Recovery: 0.9,
		},
	},
}

func GetPreset(method, preset string) *Config {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	cfg, ok := methodPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// FindPreset looks a preset up by name across all methods.
func FindPreset(name string) *Config {
	for _, method := range Methods() {
		if cfg := GetPreset(method, name); cfg != nil {
			return cfg
		}
	}
	return nil
}

// Resolve returns the defaults overlaid with the named preset.
func Resolve(name string) *Config {
	p := FindPreset(name)
	if p == nil {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Method = p.Method
	cfg.ExitMach = p.ExitMach
	if p.FreestreamMach != 0 {
		cfg.FreestreamMach = p.FreestreamMach
	}
	if p.Recovery != 0 {
		cfg.Recovery = p.Recovery
	}
	return cfg
}

func ListPresets(method string) []string {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(methodPresets))
	for name := range methodPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Methods() []string {
	methods := make([]string, 0, len(Presets))
	for m := range Presets {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
