package paperplane

import "github.com/vovakirdan/paperplane/internal/core"

// Tile is one drawn piece of a platform's outer shell.
type Tile struct {
	Col, Row int       // Position in tiles, Col 0 at the anchor and Row 0 at the top
	Center   core.Vec2 // World position of the tile centre
	Corner   bool
	Rotation int  // Quarter turns clockwise: 0 top edge, 1 tip, 2 bottom edge
	Flip     bool // Mirrored for right-anchored platforms
}

// Tiles derives the draw instructions for p. Interior tiles are never
// produced: only the tip column and the top and bottom rows are drawn.
// The hitbox stays the full rectangle regardless.
func (p Platform) Tiles(tile core.Vec2) []Tile {
	w, h := p.Dimensions[0], p.Dimensions[1]
	if w <= 0 || h <= 0 {
		return nil
	}
	dir := growth(p.Side)
	anchor := p.Anchor()
	top := p.Y().Max

	out := make([]Tile, 0, 2*w+h)
	for row := 0; row < h; row++ {
		edgeRow := row == 0 || row == h-1
		for col := 0; col < w; col++ {
			tip := col == w-1
			if !tip && !edgeRow {
				continue
			}
			t := Tile{
				Col: col,
				Row: row,
				Center: core.Vec2{
					X: anchor + (float64(col)+0.5)*tile.X*dir,
					Y: top - (float64(row)+0.5)*tile.Y,
				},
				Corner: tip && edgeRow,
				Flip:   p.Side == core.Right,
			}
			switch {
			case row == h-1 && row != 0:
				t.Rotation = 2
			case tip && !edgeRow:
				t.Rotation = 1
			}
			out = append(out, t)
		}
	}
	return out
}
