package paperplane

import "github.com/vovakirdan/paperplane/internal/core"

// Background streams rows of decorative wall tiles past the camera.
// Rows holds the centre y of each row, top row first.
type Background struct {
	Rows []float64
}

// Fill lays the initial rows from the top of the window downward.
func (b *Background) Fill(scr ScreenModel, wallH float64, prefetch int) {
	b.Rows = b.Rows[:0]
	if wallH <= 0 {
		return
	}
	n := int(scr.Height/wallH) + prefetch
	y := scr.Height - wallH/2
	for i := 0; i < n; i++ {
		b.Rows = append(b.Rows, y)
		y -= wallH
	}
}

// Update appends one row when the stream nears the bottom of the view and
// drops rows that have left the top.
func (b *Background) Update(visible core.Range[float64], wallH float64) {
	if n := len(b.Rows); n > 0 && b.Rows[n-1] > visible.Min-2*wallH {
		b.Rows = append(b.Rows, b.Rows[n-1]-wallH)
	}
	drop := 0
	for drop < len(b.Rows) && b.Rows[drop] > visible.Max+wallH {
		drop++
	}
	b.Rows = b.Rows[drop:]
}
