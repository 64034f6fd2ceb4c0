package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.RoseBins != 16 {
		t.Errorf("expected 16 rose bins, got %d", cfg.RoseBins)
	}
	if cfg.Alpha != 0.05 {
		t.Errorf("expected alpha 0.05, got %f", cfg.Alpha)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `
input: zones.csv
columns:
  aspect: slope_aspect
  species: [pinus, abies]
labels: [Pinus, Abies]
rose_bins: 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns.Aspect != "slope_aspect" {
		t.Errorf("aspect column: %s", cfg.Columns.Aspect)
	}
	if cfg.RoseBins != 8 {
		t.Errorf("rose bins: %d", cfg.RoseBins)
	}
	// Unset fields keep defaults.
	if cfg.Alpha != DefaultAlpha {
		t.Errorf("alpha default not kept: %f", cfg.Alpha)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad alpha", func(c *Config) { c.Alpha = 1.5 }},
		{"zero alpha", func(c *Config) { c.Alpha = 0 }},
		{"bins not dividing 360", func(c *Config) { c.RoseBins = 7 }},
		{"too few bins", func(c *Config) { c.RoseBins = 2 }},
		{"one species", func(c *Config) { c.Columns.Species = []string{"pine"} }},
		{"tiny svg", func(c *Config) { c.SVGSize = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("coarse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.RoseBins != 8 {
		t.Errorf("expected 8 bins, got %d", cfg.RoseBins)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	// Mutating a copy must not touch the shared preset.
	cfg.Labels[0] = "spruce"
	if Presets["coarse"].Labels[0] != "pine" {
		t.Error("preset copy shares label slice")
	}
}

func TestPresetsAllValid(t *testing.T) {
	for name, p := range Presets {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s rejected by Validate: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}
