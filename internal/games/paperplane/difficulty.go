package paperplane

import (
	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// Difficulty holds the spawn and speed parameters for the current level.
// Multipliers always apply to the values captured when the run started,
// because the scale factor (and so every world size) differs per window.
type Difficulty struct {
	Level          int
	PlatformGap    core.Range[float64]
	PlatformHeight int
	PlayerMaxSpeed core.Vec2

	startGap   core.Range[float64]
	startSpeed core.Vec2
	cfg        config.DifficultyConfig
}

// NewDifficulty captures the session-start values for the given sizes.
// The run starts at the raw start values until the first score arrives.
func NewDifficulty(cfg config.DifficultyConfig, sizes Sizes) Difficulty {
	gap := core.Range[float64]{
		Min: sizes.Player.Y * cfg.GapMinFactor,
		Max: sizes.Player.Y * cfg.GapMaxFactor,
	}
	speed := core.Vec2{X: cfg.BaseSpeedX, Y: cfg.BaseSpeedY}.Scale(sizes.Scale)
	return Difficulty{
		Level:          1,
		PlatformGap:    gap,
		PlatformHeight: cfg.StartPlatformHeight,
		PlayerMaxSpeed: speed,
		startGap:       gap,
		startSpeed:     speed,
		cfg:            cfg,
	}
}

// LevelForScore returns score/pointsPerLevel + 1.
func LevelForScore(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	return score/pointsPerLevel + 1
}

// PlatformHeightForLevel returns start-1+level capped at maxHeight.
func PlatformHeightForLevel(level, start, maxHeight int) int {
	return min(start-1+level, maxHeight)
}

// GapMultiplier returns 1 + step*level.
func GapMultiplier(level int, step float64) float64 {
	return 1 + step*float64(level)
}

// SpeedMultiplier returns 1 + step*level.
func SpeedMultiplier(level int, step float64) float64 {
	return 1 + step*float64(level)
}

// Recompute derives the parameters for score and reports whether the level changed.
// With progression disabled the start values are kept.
func (d *Difficulty) Recompute(score int) bool {
	if !d.cfg.Enabled {
		return false
	}
	prev := d.Level
	d.Level = LevelForScore(score, d.cfg.PointsPerLevel)

	g := GapMultiplier(d.Level, d.cfg.GapStep)
	d.PlatformGap = d.startGap.Scale(g)
	d.PlatformHeight = PlatformHeightForLevel(d.Level, d.cfg.StartPlatformHeight, d.cfg.MaxPlatformHeight)
	d.PlayerMaxSpeed = d.startSpeed.Scale(SpeedMultiplier(d.Level, d.cfg.SpeedStep))
	return d.Level != prev
}

// StartGap returns the gap range captured at session start.
func (d Difficulty) StartGap() core.Range[float64] {
	return d.startGap
}

// StartSpeed returns the player max speed captured at session start.
func (d Difficulty) StartSpeed() core.Vec2 {
	return d.startSpeed
}
