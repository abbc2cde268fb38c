package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/busemann/internal/inlet"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "pair" {
		t.Errorf("expected method pair, got %s", cfg.Method)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")

	cfg := DefaultConfig()
	cfg.Method = "recovery"
	cfg.ExitMach = 3.0
	cfg.Recovery = 0.92
	cfg.Sweep.Workers = 3
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("exit_mach: 2.0\nfreestream_mach: 4.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExitMach != 2.0 || cfg.FreestreamMach != 4.0 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Steps != inlet.DefaultSteps || cfg.Integrator != "rk4" {
		t.Errorf("defaults lost: steps=%d integrator=%s", cfg.Steps, cfg.Integrator)
	}
}

func TestLoadInto_OverlaysPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	if err := os.WriteFile(path, []byte("steps: 3000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Resolve("ramjet")
	if err := LoadInto(path, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 3000 {
		t.Errorf("steps = %d, want 3000", cfg.Steps)
	}
	if cfg.FreestreamMach != 4.0 || cfg.ExitMach != 2.0 {
		t.Errorf("preset values lost: freestream=%v exit=%v", cfg.FreestreamMach, cfg.ExitMach)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestToDesign(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "recovery"

	d, err := cfg.ToDesign()
	if err != nil {
		t.Fatal(err)
	}
	if d.Method != inlet.MethodRecovery {
		t.Errorf("expected recovery method, got %s", d.Method)
	}
	if d.Solver.Tolerance != DefaultTolerance {
		t.Errorf("tolerance not carried: %g", d.Solver.Tolerance)
	}

	cfg.Method = "bogus"
	if _, err := cfg.ToDesign(); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreestreamMach = 2.0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when freestream is below exit")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pair", "ramjet")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.FreestreamMach != 4.0 || cfg.ExitMach != 2.0 {
		t.Errorf("unexpected ramjet preset: %+v", cfg)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("pair", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "ramjet"); cfg != nil {
		t.Error("expected nil for nonexistent method")
	}
}

func TestResolve(t *testing.T) {
	cfg := Resolve("balanced")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	if cfg.Method != "recovery" || cfg.Recovery != 0.9 {
		t.Errorf("unexpected preset: %+v", cfg)
	}
	if cfg.Steps != inlet.DefaultSteps {
		t.Error("resolved preset should carry defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("resolved preset invalid: %v", err)
	}

	if Resolve("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("pair")
	if len(presets) != 4 {
		t.Errorf("expected 4 pair presets, got %v", presets)
	}
	if presets[0] != "hypersonic" {
		t.Errorf("presets not sorted: %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent method")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, m := range Methods() {
		for _, name := range ListPresets(m) {
			if err := Resolve(name).Validate(); err != nil {
				t.Errorf("%s/%s: %v", m, name, err)
			}
		}
	}
}
