package paperplane

import (
	"math"
	"testing"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// fixedRand returns the same draws forever.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.i % n }

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// testScreen is a 640×320 window at scale 1: deadspace 192, 32 tiles across.
func testScreen() (ScreenModel, Sizes) {
	cfg := config.DefaultPaperPlaneConfig()
	sizes := NewSizes(cfg, ScaleFactor(320, cfg.Sprites.Wall.H, cfg.Level.TilesHigh))
	var scr ScreenModel
	scr.Refresh(640, 320, sizes.LevelWidth, nil)
	return scr, sizes
}

func checkRange(t *testing.T, name string, got core.Range[float64], wantMin, wantMax float64) {
	t.Helper()
	if !approx(got.Min, wantMin) || !approx(got.Max, wantMax) {
		t.Errorf("%s = %v, want [%v, %v]", name, got, wantMin, wantMax)
	}
}
