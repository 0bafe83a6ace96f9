package config

import (
	"fmt"
	"math"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the config can drive the level generator.
func (c PaperPlaneConfig) Validate() error {
	sizes := []struct {
		field string
		s     Size
	}{
		{"sprites.player", c.Sprites.Player},
		{"sprites.wall", c.Sprites.Wall},
		{"sprites.platform", c.Sprites.Platform},
	}
	for _, sz := range sizes {
		if sz.s.W <= 0 || sz.s.H <= 0 {
			return ValidationError{sz.field, "width and height must be positive"}
		}
	}

	if c.Level.TilesWide <= 0 || c.Level.TilesHigh <= 0 {
		return ValidationError{"level", "tiles_wide and tiles_high must be positive"}
	}
	// Platforms are half the level wide, give or take one player width.
	// Both counts are ratios of sprite sizes, so the scale factor drops out.
	across := int(math.Floor(float64(c.Level.TilesWide) * c.Sprites.Wall.W / c.Sprites.Platform.W))
	variance := int(math.Floor(c.Sprites.Player.W / c.Sprites.Platform.W))
	if across/2-variance <= 0 {
		return ValidationError{"sprites", fmt.Sprintf(
			"level is %d platform tiles across; half of it must exceed the player's %d tiles", across, variance)}
	}
	if c.Platforms.FirstY <= 0 || c.Platforms.FirstY >= 1 {
		return ValidationError{"platforms.first_y", "must be inside (0, 1)"}
	}
	if c.Platforms.DoubleSidedChance < 0 || c.Platforms.DoubleSidedChance > 100 {
		return ValidationError{"platforms.double_sided_chance", "must be a percentage in [0, 100]"}
	}
	if c.Platforms.LookaheadGaps < 0 {
		return ValidationError{"platforms.lookahead_gaps", "must not be negative"}
	}
	if c.Player.HeadingFrames < 2 {
		return ValidationError{"player.heading_frames", "need at least 2 heading frames"}
	}

	d := c.Difficulty
	if d.PointsPerLevel <= 0 {
		return ValidationError{"difficulty.points_per_level", "must be positive"}
	}
	if d.StartPlatformHeight <= 0 {
		return ValidationError{"difficulty.start_platform_height", "must be positive"}
	}
	if d.MaxPlatformHeight < d.StartPlatformHeight {
		return ValidationError{"difficulty.max_platform_height", "must be at least start_platform_height"}
	}
	if d.GapMinFactor <= 0 || d.GapMinFactor >= d.GapMaxFactor {
		return ValidationError{"difficulty.gap_min_factor", "must be positive and below gap_max_factor"}
	}
	if d.BaseSpeedX < 0 || d.BaseSpeedY <= 0 {
		return ValidationError{"difficulty.base_speed", "y speed must be positive and x speed non-negative"}
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return ValidationError{"terminal", "cell_width and cell_height must be positive"}
	}
	return nil
}
