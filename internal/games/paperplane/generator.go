package paperplane

import (
	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// Generator extends the platform frontier below the visible area.
type Generator struct {
	rng Rand
	cfg config.PlatformConfig
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand, cfg config.PlatformConfig) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// sentinel is the synthetic platform the first real platform is placed
// against, so that it uses the same formula as every other one.
func (g *Generator) sentinel(scr ScreenModel, gap float64) Platform {
	yMin := scr.Height*g.cfg.FirstY + gap
	return Platform{
		Index:  -1,
		Hitbox: [2]core.Range[float64]{{}, {Min: yMin, Max: yMin}},
		Side:   g.cfg.FirstSide.Reverse(),
	}
}

// Extend appends platforms until the last one lies LookaheadGaps gaps
// below the visible area. It returns the platforms spawned this call.
func (g *Generator) Extend(ps *Platforms, diff Difficulty, scr ScreenModel, sizes Sizes) []Platform {
	start := len(ps.List)
	across := sizes.TilesAcross()
	k := sizes.WidthVariance()

	for {
		gap := uniform(g.rng, diff.PlatformGap)
		last, ok := ps.Last()
		if !ok {
			last = g.sentinel(scr, gap)
		}
		if last.Y().Min <= scr.Visible.Min-gap*g.cfg.LookaheadGaps {
			break
		}

		side := last.Side.Reverse()
		width := across/2 + intBetween(g.rng, -k, k)
		height := diff.PlatformHeight
		yMax := last.Y().Min - gap

		ps.push(realizePlatform(ps.Total, side, width, height, yMax, scr, sizes.Tile))

		if g.rng.Intn(100) < g.cfg.DoubleSidedChance {
			// The pair leaves exactly 2k tiles between the two tips.
			if other := across - width - 2*k; other > 0 {
				ps.push(realizePlatform(ps.Total, side.Reverse(), other, height, yMax, scr, sizes.Tile))
			}
		}
	}
	return ps.List[start:]
}
