package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/paperplane/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("failed to parse embedded defaults: %v", err)
	}
	if cfg != DefaultPaperPlaneConfig() {
		t.Errorf("embedded YAML and DefaultPaperPlaneConfig diverge:\n yaml: %+v\n code: %+v", cfg, DefaultPaperPlaneConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
platforms:
  first_side: right
  double_sided_chance: 50
difficulty:
  points_per_level: 5
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Platforms.FirstSide != core.Right {
		t.Errorf("FirstSide = %v, want right", cfg.Platforms.FirstSide)
	}
	if cfg.Platforms.DoubleSidedChance != 50 {
		t.Errorf("DoubleSidedChance = %d, want 50", cfg.Platforms.DoubleSidedChance)
	}
	if cfg.Difficulty.PointsPerLevel != 5 {
		t.Errorf("PointsPerLevel = %d, want 5", cfg.Difficulty.PointsPerLevel)
	}
	// Untouched keys keep their defaults
	if cfg.Difficulty.MaxPlatformHeight != 8 {
		t.Errorf("MaxPlatformHeight = %d, want 8", cfg.Difficulty.MaxPlatformHeight)
	}
}

func TestParseRejectsUnknownSide(t *testing.T) {
	_, err := Parse([]byte("platforms:\n  first_side: up\n"))
	if err == nil {
		t.Fatal("expected error for unknown first_side")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  points_per_level: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPaperPlane(path)
	if err != nil {
		t.Fatalf("LoadPaperPlane failed: %v", err)
	}
	if cfg.Difficulty.PointsPerLevel != 7 {
		t.Errorf("PointsPerLevel = %d, want 7", cfg.Difficulty.PointsPerLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPaperPlane(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped ErrNotExist, got %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("difficulty:\n  points_per_level: 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPaperPlane(path)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "difficulty.points_per_level" {
			t.Errorf("Field = %q", verr.Field)
		}
	})
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPaperPlane("")
	if err != nil {
		t.Fatalf("LoadPaperPlane failed: %v", err)
	}
	if cfg != DefaultPaperPlaneConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PaperPlaneConfig)
		field  string
	}{
		{"zero player", func(c *PaperPlaneConfig) { c.Sprites.Player.W = 0 }, "sprites.player"},
		{"negative tile", func(c *PaperPlaneConfig) { c.Sprites.Platform.H = -1 }, "sprites.platform"},
		{"no level", func(c *PaperPlaneConfig) { c.Level.TilesHigh = 0 }, "level"},
		{"player as wide as half the level", func(c *PaperPlaneConfig) { c.Sprites.Player.W = 128 }, "sprites"},
		{"one wall tile across", func(c *PaperPlaneConfig) { c.Level.TilesWide = 1 }, "sprites"},
		{"first_y at edge", func(c *PaperPlaneConfig) { c.Platforms.FirstY = 1 }, "platforms.first_y"},
		{"chance over 100", func(c *PaperPlaneConfig) { c.Platforms.DoubleSidedChance = 101 }, "platforms.double_sided_chance"},
		{"gap factors swapped", func(c *PaperPlaneConfig) { c.Difficulty.GapMinFactor = 3 }, "difficulty.gap_min_factor"},
		{"height cap below start", func(c *PaperPlaneConfig) { c.Difficulty.MaxPlatformHeight = 1 }, "difficulty.max_platform_height"},
		{"one heading frame", func(c *PaperPlaneConfig) { c.Player.HeadingFrames = 1 }, "player.heading_frames"},
		{"zero cell", func(c *PaperPlaneConfig) { c.Terminal.CellHeight = 0 }, "terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPaperPlaneConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidateNarrowestPlatform(t *testing.T) {
	// 32 tiles across and a 15-tile player leaves platforms at least 1 tile wide.
	cfg := DefaultPaperPlaneConfig()
	cfg.Sprites.Player.W = 120
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		points  int
	}{
		{"", true, 20},
		{DifficultyEasy, true, 30},
		{DifficultyNormal, true, 20},
		{DifficultyHard, true, 12},
		{DifficultyFixed, false, 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPaperPlaneConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.PointsPerLevel != tt.points {
				t.Errorf("PointsPerLevel = %d, want %d", cfg.Difficulty.PointsPerLevel, tt.points)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("expected hard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
	if ParsePreset("fixed") != DifficultyFixed {
		t.Error("expected fixed")
	}
}
