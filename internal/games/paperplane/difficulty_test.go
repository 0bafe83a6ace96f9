package paperplane

import (
	"testing"

	"github.com/vovakirdan/paperplane/internal/config"
)

func TestDifficultyScenarios(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	_, sizes := testScreen()

	tests := []struct {
		score     int
		level     int
		height    int
		gapMult   float64
		speedMult float64
	}{
		{0, 1, 2, 1.05, 1.07},
		{19, 1, 2, 1.05, 1.07},
		{20, 2, 3, 1.10, 1.14},
		{140, 8, 8, 1.40, 1.56},
		{400, 21, 8, 2.05, 2.47},
	}

	for _, tt := range tests {
		d := NewDifficulty(cfg.Difficulty, sizes)
		d.Recompute(tt.score)

		if d.Level != tt.level {
			t.Errorf("score %d: level = %d, want %d", tt.score, d.Level, tt.level)
		}
		if d.PlatformHeight != tt.height {
			t.Errorf("score %d: height = %d, want %d", tt.score, d.PlatformHeight, tt.height)
		}
		start := d.StartGap()
		checkRange(t, "gap", d.PlatformGap, start.Min*tt.gapMult, start.Max*tt.gapMult)
		if !approx(d.PlayerMaxSpeed.Y, d.StartSpeed().Y*tt.speedMult) {
			t.Errorf("score %d: speed y = %v, want %v", tt.score, d.PlayerMaxSpeed.Y, d.StartSpeed().Y*tt.speedMult)
		}
	}
}

func TestDifficultyStartsAtRawValues(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	_, sizes := testScreen()
	d := NewDifficulty(cfg.Difficulty, sizes)

	if d.Level != 1 || d.PlatformHeight != 2 {
		t.Errorf("start level/height = %d/%d, want 1/2", d.Level, d.PlatformHeight)
	}
	// Player is 32px tall at scale 1
	checkRange(t, "start gap", d.PlatformGap, 32*2.2, 32*2.7)
	if !approx(d.PlayerMaxSpeed.X, 125) || !approx(d.PlayerMaxSpeed.Y, 212.5) {
		t.Errorf("start speed = %+v", d.PlayerMaxSpeed)
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	_, sizes := testScreen()
	d := NewDifficulty(cfg.Difficulty, sizes)

	prevLevel, prevHeight := 0, 0
	for score := 0; score <= 500; score++ {
		d.Recompute(score)
		if want := score/cfg.Difficulty.PointsPerLevel + 1; d.Level != want {
			t.Fatalf("score %d: level = %d, want %d", score, d.Level, want)
		}
		if d.Level < prevLevel || d.PlatformHeight < prevHeight {
			t.Fatalf("score %d: difficulty went backwards", score)
		}
		if d.PlatformHeight > cfg.Difficulty.MaxPlatformHeight {
			t.Fatalf("score %d: height %d above cap", score, d.PlatformHeight)
		}
		if d.PlatformGap.Min >= d.PlatformGap.Max {
			t.Fatalf("score %d: gap %v not ordered", score, d.PlatformGap)
		}
		prevLevel, prevHeight = d.Level, d.PlatformHeight
	}
}

func TestDifficultyRecomputeReportsLevelChange(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	_, sizes := testScreen()
	d := NewDifficulty(cfg.Difficulty, sizes)

	if d.Recompute(1) {
		t.Error("score 1 stays on level 1")
	}
	if !d.Recompute(20) {
		t.Error("score 20 should reach level 2")
	}
	if d.Recompute(21) {
		t.Error("score 21 stays on level 2")
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	_, sizes := testScreen()
	d := NewDifficulty(cfg.Difficulty, sizes)

	if d.Recompute(200) {
		t.Error("fixed difficulty should never level up")
	}
	if d.Level != 1 || d.PlatformHeight != cfg.Difficulty.StartPlatformHeight {
		t.Errorf("fixed difficulty changed: level %d height %d", d.Level, d.PlatformHeight)
	}
	checkRange(t, "gap", d.PlatformGap, d.StartGap().Min, d.StartGap().Max)
}
