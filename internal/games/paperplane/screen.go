package paperplane

import (
	"math"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// ScreenModel is the per-tick view of the window in world pixels.
type ScreenModel struct {
	Width     float64
	Height    float64
	Deadspace float64             // Horizontal margin outside the level on each side
	Visible   core.Range[float64] // World y currently on screen
}

// Refresh recomputes the model from the window and the camera.
// A nil camera means the view is anchored at [0, height].
func (s *ScreenModel) Refresh(width, height, levelWidth float64, cam *Camera) {
	s.Width = width
	s.Height = height
	s.Deadspace = (width - levelWidth) / 2
	if cam == nil {
		s.Visible = core.Range[float64]{Min: 0, Max: height}
		return
	}
	s.Visible = core.Range[float64]{Min: cam.Y - height/2, Max: cam.Y + height/2}
}

// PlayfieldLeft returns the x of the left wall.
func (s ScreenModel) PlayfieldLeft() float64 {
	return s.Deadspace
}

// PlayfieldRight returns the x of the right wall.
func (s ScreenModel) PlayfieldRight() float64 {
	return s.Width - s.Deadspace
}

// ScaleFactor returns how many times the sprite art is enlarged so that
// tilesHigh wall tiles span the window height. Never below 1.
func ScaleFactor(windowHeight, wallHeight float64, tilesHigh int) float64 {
	if wallHeight <= 0 || tilesHigh <= 0 {
		return 1
	}
	return math.Max(1, math.Floor(windowHeight/(wallHeight*float64(tilesHigh))))
}

// Sizes are the sprite sizes multiplied by the current scale factor.
type Sizes struct {
	Scale      float64
	Player     core.Vec2
	Wall       core.Vec2
	Tile       core.Vec2
	LevelWidth float64 // Width of the wall grid between the deadspaces
	EdgeTrim   float64
}

// NewSizes scales the configured sprite sizes.
func NewSizes(cfg config.PaperPlaneConfig, scale float64) Sizes {
	vec := func(s config.Size) core.Vec2 {
		return core.Vec2{X: s.W * scale, Y: s.H * scale}
	}
	wall := vec(cfg.Sprites.Wall)
	return Sizes{
		Scale:      scale,
		Player:     vec(cfg.Sprites.Player),
		Wall:       wall,
		Tile:       vec(cfg.Sprites.Platform),
		LevelWidth: float64(cfg.Level.TilesWide) * wall.X,
		EdgeTrim:   cfg.Platforms.EdgeTrimPixels * scale,
	}
}

// TilesAcross returns how many platform tiles fit between the walls.
func (s Sizes) TilesAcross() int {
	return int(math.Floor(s.LevelWidth / s.Tile.X))
}

// WidthVariance returns k, the number of tiles a platform width may stray
// from half the level. It equals one player width in tiles.
func (s Sizes) WidthVariance() int {
	return int(math.Floor(s.Player.X / s.Tile.X))
}
