package config

import (
	_ "embed"

	"github.com/vovakirdan/paperplane/internal/core"
)

//go:embed defaults/paperplane.yaml
var defaultPaperPlaneYAML []byte

// DefaultPaperPlaneConfig returns the hardcoded default configuration.
// It mirrors defaults/paperplane.yaml and is the fallback if the embed fails to parse.
func DefaultPaperPlaneConfig() PaperPlaneConfig {
	return PaperPlaneConfig{
		Sprites: SpriteSizes{
			Player:   Size{W: 32, H: 32},
			Wall:     Size{W: 64, H: 64},
			Platform: Size{W: 8, H: 8},
		},
		Level: LevelConfig{
			TilesWide: 4,
			TilesHigh: 5,
		},
		Platforms: PlatformConfig{
			FirstSide:          core.Left,
			FirstY:             1.0 / 4.0,
			DoubleSidedChance:  10,
			LookaheadGaps:      4,
			EdgeTrimPixels:     2,
			BackgroundPrefetch: 5,
		},
		Player: PlayerConfig{
			TurnRate:      6.0,
			HeadingFrames: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:             true,
			PointsPerLevel:      20,
			StartPlatformHeight: 2,
			MaxPlatformHeight:   8,
			GapMinFactor:        2.2,
			GapMaxFactor:        2.7,
			GapStep:             0.05,
			SpeedStep:           0.07,
			BaseSpeedX:          125,
			BaseSpeedY:          212.5,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPaperPlaneYAML
}
