package paperplane

import "github.com/vovakirdan/paperplane/internal/core"

// HitsWall reports whether x lies outside the playfield walls.
func HitsWall(x float64, scr ScreenModel) bool {
	return x < scr.PlayfieldLeft() || x > scr.PlayfieldRight()
}

// Collides reports whether pos touches the platform. The x test is made
// against the inner edge, shifted toward the wall by trim pixels; the
// y test is strict on both ends.
func (p Platform) Collides(pos core.Vec2, trim float64) bool {
	var inX bool
	if p.Side == core.Left {
		inX = pos.X < p.InnerEdge()-trim
	} else {
		inX = pos.X > p.InnerEdge()+trim
	}
	return inX && p.Y().ContainsOpen(pos.Y)
}

// CheckCollision tests pos against both walls and every platform.
func CheckCollision(pos core.Vec2, platforms []Platform, scr ScreenModel, trim float64) bool {
	hit := HitsWall(pos.X, scr)
	for _, p := range platforms {
		hit = hit || p.Collides(pos, trim)
	}
	return hit
}
