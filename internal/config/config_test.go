package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Side() != 4 {
		t.Errorf("Side() = %d, want 4", cfg.Side())
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseT2048(defaultT2048YAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		valid  bool
	}{
		{"default", func(*T2048Config) {}, true},
		{"single cell", func(c *T2048Config) { c.Board.GridSize = 1 }, true},
		{"6x6", func(c *T2048Config) { c.Board.GridSize = 36 }, true},
		{"not square", func(c *T2048Config) { c.Board.GridSize = 15 }, false},
		{"zero", func(c *T2048Config) { c.Board.GridSize = 0 }, false},
		{"negative", func(c *T2048Config) { c.Board.GridSize = -4 }, false},
		{"probability above one", func(c *T2048Config) { c.Spawn.FourProbability = 1.5 }, false},
		{"probability below zero", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, false},
		{"negative ticks", func(c *T2048Config) { c.Animation.SlideTicks = -1 }, false},
		{"instant animations", func(c *T2048Config) { c.Animation = AnimationConfig{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  grid_size: 25\nspawn:\n  four_probability: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() error: %v", err)
	}
	if cfg.Side() != 5 {
		t.Errorf("Side() = %d, want 5", cfg.Side())
	}
	if cfg.Spawn.FourProbability != 0.5 {
		t.Errorf("FourProbability = %v, want 0.5", cfg.Spawn.FourProbability)
	}
	if cfg.Animation.SlideTicks != 8 {
		t.Errorf("unset SlideTicks = %d, want default 8", cfg.Animation.SlideTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadT2048(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  grid_size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadT2048(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadT2048(non-square) error = %v, want ErrInvalidConfig", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("failed load should return defaults, got %+v", cfg)
	}
}

func TestWithSide(t *testing.T) {
	cfg := DefaultT2048Config().WithSide(3)
	if cfg.Board.GridSize != 9 {
		t.Errorf("GridSize = %d, want 9", cfg.Board.GridSize)
	}
}
