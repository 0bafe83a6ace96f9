package paperplane

import "github.com/vovakirdan/paperplane/internal/core"

// Hitbox axes.
const (
	AxisX = 0
	AxisY = 1
)

// Platform is one obstacle anchored to a wall and growing toward the centre.
// It is immutable once spawned; the hitbox is authoritative for collision.
type Platform struct {
	Index      int
	Hitbox     [2]core.Range[float64] // Normalized x and y world extents
	Dimensions [2]int                 // Width and height in tiles
	Side       core.Direction
}

// X returns the horizontal extent.
func (p Platform) X() core.Range[float64] { return p.Hitbox[AxisX] }

// Y returns the vertical extent.
func (p Platform) Y() core.Range[float64] { return p.Hitbox[AxisY] }

// Anchor returns the x of the wall the platform is attached to.
func (p Platform) Anchor() float64 {
	if p.Side == core.Left {
		return p.Hitbox[AxisX].Min
	}
	return p.Hitbox[AxisX].Max
}

// InnerEdge returns the x of the platform tip nearest the screen centre.
func (p Platform) InnerEdge() float64 {
	if p.Side == core.Left {
		return p.Hitbox[AxisX].Max
	}
	return p.Hitbox[AxisX].Min
}

// growth is the x direction the platform extends from its anchor.
func growth(side core.Direction) float64 {
	return -side.Sign()
}

// realizePlatform lays a platform of w×h tiles against the side wall with
// its top edge at yMax.
func realizePlatform(index int, side core.Direction, w, h int, yMax float64, scr ScreenModel, tile core.Vec2) Platform {
	anchor := scr.PlayfieldLeft()
	if side == core.Right {
		anchor = scr.PlayfieldRight()
	}
	far := anchor + float64(w)*tile.X*growth(side)
	return Platform{
		Index: index,
		Hitbox: [2]core.Range[float64]{
			core.NewRange(anchor, far),
			{Min: yMax - float64(h)*tile.Y, Max: yMax},
		},
		Dimensions: [2]int{w, h},
		Side:       side,
	}
}

// Platforms is the ordered set of live platforms, oldest first.
type Platforms struct {
	Total int // Platforms ever spawned this run
	List  []Platform

	nextScored int // Lowest index not yet counted toward score
}

// Reset clears the set for a new run.
func (ps *Platforms) Reset() {
	ps.Total = 0
	ps.List = ps.List[:0]
	ps.nextScored = 0
}

// Last returns the most recently spawned platform.
func (ps *Platforms) Last() (Platform, bool) {
	if len(ps.List) == 0 {
		return Platform{}, false
	}
	return ps.List[len(ps.List)-1], true
}

func (ps *Platforms) push(p Platform) {
	ps.List = append(ps.List, p)
	ps.Total++
}

// Prune drops platforms whose bottom edge has risen above the visible area
// and returns how many of them were newly scored. Removal is always from
// the front, and an index is never scored twice.
func (ps *Platforms) Prune(visible core.Range[float64]) int {
	scored := 0
	for len(ps.List) > 0 && ps.List[0].Y().Min > visible.Max {
		p := ps.List[0]
		ps.List = ps.List[1:]
		if p.Index >= ps.nextScored {
			ps.nextScored = p.Index + 1
			scored++
		}
	}
	return scored
}
