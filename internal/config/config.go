// Package config provides YAML-based game configuration loading and
// difficulty presets for the paper plane game.
package config

import "github.com/vovakirdan/paperplane/internal/core"

// PaperPlaneConfig contains all configuration for the paper plane game.
type PaperPlaneConfig struct {
	Sprites    SpriteSizes      `yaml:"sprites"`
	Level      LevelConfig      `yaml:"level"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// Size is a width/height pair in unscaled pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpriteSizes holds the unscaled art sizes every world size is derived from.
type SpriteSizes struct {
	Player   Size `yaml:"player"`
	Wall     Size `yaml:"wall"`
	Platform Size `yaml:"platform"`
}

// LevelConfig defines the playfield in wall tiles.
type LevelConfig struct {
	TilesWide int `yaml:"tiles_wide"` // Background wall tiles across the level
	TilesHigh int `yaml:"tiles_high"` // Wall tiles that fit the window height
}

// PlatformConfig defines platform spawning parameters.
type PlatformConfig struct {
	FirstSide          core.Direction `yaml:"first_side"`
	FirstY             float64        `yaml:"first_y"`             // Fraction of window height
	DoubleSidedChance  int            `yaml:"double_sided_chance"` // Percent
	LookaheadGaps      float64        `yaml:"lookahead_gaps"`      // Gaps spawned beyond the visible area
	EdgeTrimPixels     float64        `yaml:"edge_trim_pixels"`    // Forgiving pixels at the platform lip
	BackgroundPrefetch int            `yaml:"background_prefetch"` // Extra wall rows on first fill
}

// PlayerConfig defines the paper plane's steering model.
type PlayerConfig struct {
	TurnRate      float64 `yaml:"turn_rate"`      // Radians per second while a steer key is held
	HeadingFrames int     `yaml:"heading_frames"` // Heading sprite indices from sideways to straight down
}

// DifficultyConfig defines how spawn parameters evolve with score.
type DifficultyConfig struct {
	Enabled             bool    `yaml:"enabled"`
	PointsPerLevel      int     `yaml:"points_per_level"`
	StartPlatformHeight int     `yaml:"start_platform_height"`
	MaxPlatformHeight   int     `yaml:"max_platform_height"`
	GapMinFactor        float64 `yaml:"gap_min_factor"` // Player heights
	GapMaxFactor        float64 `yaml:"gap_max_factor"`
	GapStep             float64 `yaml:"gap_step"`   // Gap multiplier added per level
	SpeedStep           float64 `yaml:"speed_step"` // Speed multiplier added per level
	BaseSpeedX          float64 `yaml:"base_speed_x"`
	BaseSpeedY          float64 `yaml:"base_speed_y"`
}

// TerminalConfig maps terminal cells onto world pixels.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// PointsPerLevelForPreset returns how many platforms advance one level.
func PointsPerLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 30
	case DifficultyHard:
		return 12
	default:
		return 20
	}
}
