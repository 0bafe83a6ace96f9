package paperplane

import (
	"testing"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// farView returns a view so low that only one spawn step runs: the first
// platform (y_min 64) already lies past the look-ahead line.
func farView(scr ScreenModel) ScreenModel {
	scr.Visible = core.Range[float64]{Min: 350, Max: 670}
	return scr
}

func TestExtendFirstPlatform(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	scr, sizes := testScreen()
	scr = farView(scr)
	diff := NewDifficulty(cfg.Difficulty, sizes)

	// Gap is the range minimum (70.4), width offset is -4+2, no pair.
	gen := NewGenerator(fixedRand{f: 0, i: 50}, cfg.Platforms)
	var ps Platforms
	spawned := gen.Extend(&ps, diff, scr, sizes)

	if len(spawned) != 1 || ps.Total != 1 {
		t.Fatalf("spawned %d platforms (total %d), want 1", len(spawned), ps.Total)
	}
	p := ps.List[0]
	if p.Side != cfg.Platforms.FirstSide {
		t.Errorf("first side = %v, want %v", p.Side, cfg.Platforms.FirstSide)
	}
	if p.Index != 0 {
		t.Errorf("first index = %d", p.Index)
	}
	if p.Dimensions != [2]int{14, 2} {
		t.Errorf("dimensions = %v, want [14 2]", p.Dimensions)
	}
	// Sentinel y_min is h/4 + gap, so the first top edge is h/4.
	checkRange(t, "y", p.Y(), 80-16, 80)
	checkRange(t, "x", p.X(), 192, 192+14*8)
	if !approx(p.InnerEdge(), p.X().Max) || !approx(p.Anchor(), 192) {
		t.Errorf("left platform edges: inner %v anchor %v", p.InnerEdge(), p.Anchor())
	}
}

func TestExtendDoubleSided(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	scr, sizes := testScreen()
	scr = farView(scr)
	diff := NewDifficulty(cfg.Difficulty, sizes)

	// Intn always 5: width offset -4+5 = +1, and 5 < 10 spawns a pair.
	gen := NewGenerator(fixedRand{f: 0, i: 5}, cfg.Platforms)
	var ps Platforms
	gen.Extend(&ps, diff, scr, sizes)

	if len(ps.List) != 2 || ps.Total != 2 {
		t.Fatalf("got %d platforms, want a pair", len(ps.List))
	}
	a, b := ps.List[0], ps.List[1]
	if a.Side != core.Left || b.Side != core.Right {
		t.Errorf("pair sides = %v/%v", a.Side, b.Side)
	}
	if a.Index != 0 || b.Index != 1 {
		t.Errorf("pair indices = %d/%d", a.Index, b.Index)
	}
	if a.Y() != b.Y() {
		t.Errorf("pair y differs: %v vs %v", a.Y(), b.Y())
	}
	k := sizes.WidthVariance()
	if a.Dimensions[0]+b.Dimensions[0]+2*k != sizes.TilesAcross() {
		t.Errorf("widths %d+%d+2*%d != %d", a.Dimensions[0], b.Dimensions[0], k, sizes.TilesAcross())
	}
	// The passage between the tips is exactly 2k tiles.
	if gap := b.InnerEdge() - a.InnerEdge(); !approx(gap, float64(2*k)*sizes.Tile.X) {
		t.Errorf("passage = %v px, want %v", gap, float64(2*k)*sizes.Tile.X)
	}
	if !approx(b.Anchor(), 640-192) {
		t.Errorf("right anchor = %v", b.Anchor())
	}
}

func TestExtendFillsLookahead(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	scr, sizes := testScreen()
	diff := NewDifficulty(cfg.Difficulty, sizes)
	gen := NewGenerator(fixedRand{f: 0.5, i: 3}, cfg.Platforms)

	var ps Platforms
	gen.Extend(&ps, diff, scr, sizes)

	last, ok := ps.Last()
	if !ok {
		t.Fatal("no platforms spawned")
	}
	gap := uniform(fixedRand{f: 0.5}, diff.PlatformGap)
	if limit := scr.Visible.Min - 4*gap; last.Y().Min > limit {
		t.Errorf("frontier %v not past %v", last.Y().Min, limit)
	}

	// A second call with the same view and gap adds nothing.
	if again := gen.Extend(&ps, diff, scr, sizes); len(again) != 0 {
		t.Errorf("second extend spawned %d platforms", len(again))
	}
}

func TestExtendInvariants(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	cfg.Platforms.DoubleSidedChance = 40
	scr, sizes := testScreen()
	diff := NewDifficulty(cfg.Difficulty, sizes)
	gen := NewGenerator(NewRand(12345), cfg.Platforms)
	k := sizes.WidthVariance()
	across := sizes.TilesAcross()

	var all []Platform
	var ps Platforms
	for step := 0; step < 200; step++ {
		scr.Visible = core.Range[float64]{Min: scr.Visible.Min - 40, Max: scr.Visible.Max - 40}
		all = append(all, gen.Extend(&ps, diff, scr, sizes)...)
		ps.Prune(scr.Visible)
	}
	if len(all) < 50 {
		t.Fatalf("only %d platforms spawned", len(all))
	}

	for i, p := range all {
		if p.Index != i {
			t.Fatalf("platform %d has index %d", i, p.Index)
		}
		if p.X().Min > p.X().Max || p.Y().Min > p.Y().Max {
			t.Fatalf("platform %d hitbox not normalized: %v", i, p.Hitbox)
		}
		if i == 0 {
			continue
		}
		prev := all[i-1]
		if p.Side != prev.Side.Reverse() {
			t.Fatalf("platform %d side %v follows %v", i, p.Side, prev.Side)
		}
		if p.Y() == prev.Y() {
			// Pair member
			if p.Dimensions[0]+prev.Dimensions[0]+2*k != across {
				t.Fatalf("pair %d widths %d+%d", i, prev.Dimensions[0], p.Dimensions[0])
			}
			continue
		}
		if p.Y().Max >= prev.Y().Min {
			t.Fatalf("platform %d overlaps its predecessor", i)
		}
		w := p.Dimensions[0]
		if w < across/2-k || w >= across/2+k {
			t.Fatalf("platform %d width %d out of [%d, %d)", i, w, across/2-k, across/2+k)
		}
	}
	if ps.Total != len(all) {
		t.Errorf("Total = %d, want %d", ps.Total, len(all))
	}
}

func TestExtendRespectsHeight(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	scr, sizes := testScreen()
	diff := NewDifficulty(cfg.Difficulty, sizes)
	diff.Recompute(140)

	gen := NewGenerator(NewRand(1), cfg.Platforms)
	var ps Platforms
	gen.Extend(&ps, diff, scr, sizes)
	for _, p := range ps.List {
		if p.Dimensions[1] != 8 {
			t.Fatalf("height = %d, want 8", p.Dimensions[1])
		}
		if !approx(p.Y().Len(), 8*sizes.Tile.Y) {
			t.Fatalf("hitbox height = %v", p.Y().Len())
		}
	}
}
