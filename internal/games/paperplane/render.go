package paperplane

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paperplane/internal/core"
)

// Visual characters for rendering
const (
	WallChar     = '▒'
	SeamChar     = '·'
	ShellChar    = '█'
	CornerChar   = '▓'
	TipChar      = '▌'
	TipCharRight = '▐'
)

// explosionGlyphs is the crash sheet, one rune per frame.
var explosionGlyphs = [ExplosionFrames]rune{'*', '✦', '✶', '✷', '✸', '✹', '✺', '·'}

// planeGlyph returns the plane sprite for a heading and facing.
func planeGlyph(heading, frames int, facing core.Direction) rune {
	third := frames / 3
	switch {
	case heading >= frames-1-third/2:
		return '↓'
	case heading < third && facing == core.Right:
		return '→'
	case heading < third:
		return '←'
	case facing == core.Right:
		return '↘'
	default:
		return '↙'
	}
}

// cellMapper converts world pixels to screen cells for the current view.
type cellMapper struct {
	cellW, cellH float64
	top          float64 // World y of the first screen row
}

func (m cellMapper) col(x float64) int {
	return int(math.Floor(x / m.cellW))
}

func (m cellMapper) row(y float64) int {
	return int(math.Floor((m.top - y) / m.cellH))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || !g.world.HasWindow() {
		return
	}
	w := g.world
	m := cellMapper{cellW: g.cfg.Terminal.CellWidth, cellH: g.cfg.Terminal.CellHeight, top: w.Screen.Visible.Max}

	g.drawWalls(dst, m)
	g.drawBackground(dst, m)
	for _, p := range w.Platforms.List {
		if p.Y().Overlaps(w.Screen.Visible) {
			drawPlatform(dst, m, p, w.Sizes.Tile)
		}
	}
	switch frame, ok := g.explosion.Frame(); {
	case ok:
		e := g.explosion.Pos
		dst.SetColor(m.col(e.X), m.row(e.Y), explosionGlyphs[frame], core.ColorExplosion)
	case !w.GameOver:
		dst.SetColor(m.col(w.Player.Pos.X), m.row(w.Player.Pos.Y),
			planeGlyph(w.Player.Heading, w.cfg.Player.HeadingFrames, w.Player.Facing), core.ColorPlayer)
	}

	// Draw HUD
	hud := fmt.Sprintf(" Score: %d  Level: %d ", w.Score, w.Difficulty.Level)
	dst.DrawText(m.col(w.Screen.PlayfieldLeft())+1, 0, hud, core.ColorHUD)

	if g.paused {
		dst.DrawPanel([]string{"PAUSED", "", "Press P to resume"}, core.ColorAlert)
	}
	if _, exploding := g.explosion.Frame(); w.GameOver && !exploding {
		dst.DrawPanel([]string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  Level: %d", w.Score, w.Difficulty.Level),
			"Press R to restart",
		}, core.ColorAlert)
	}
}

// drawWalls shades the deadspace on both sides of the level.
func (g *Game) drawWalls(dst *core.Screen, m cellMapper) {
	left := m.col(g.world.Screen.PlayfieldLeft())
	right := m.col(g.world.Screen.PlayfieldRight())
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x < left || x >= right {
				dst.SetColor(x, y, WallChar, core.ColorWall)
			}
		}
	}
}

// drawBackground marks the seams between wall tile rows.
func (g *Game) drawBackground(dst *core.Screen, m cellMapper) {
	w := g.world
	left := m.col(w.Screen.PlayfieldLeft())
	right := m.col(w.Screen.PlayfieldRight())
	step := max(1, m.col(w.Sizes.Wall.X)/2)
	for _, y := range w.Background.Rows {
		seam := y + w.Sizes.Wall.Y/2
		if !w.Screen.Visible.Contains(seam) {
			continue
		}
		row := m.row(seam)
		for x := left; x < right; x += step {
			dst.SetColor(x, row, SeamChar, core.ColorBackdrop)
		}
	}
}

func drawPlatform(dst *core.Screen, m cellMapper, p Platform, tile core.Vec2) {
	for _, t := range p.Tiles(tile) {
		ch, c := ShellChar, core.ColorPlatform
		switch {
		case t.Corner:
			ch, c = CornerChar, core.ColorPlatformCorner
		case t.Rotation == 1 && t.Flip:
			ch = TipCharRight
		case t.Rotation == 1:
			ch = TipChar
		}
		dst.SetColor(m.col(t.Center.X), m.row(t.Center.Y), ch, c)
	}
}
