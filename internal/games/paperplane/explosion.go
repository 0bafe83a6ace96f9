package paperplane

import "github.com/vovakirdan/paperplane/internal/core"

// Crash animation timing.
const (
	ExplosionFrames = 8
	ExplosionFPS    = 8
)

// Explosion is the burst played once where the plane went down.
type Explosion struct {
	Pos     core.Vec2
	age     float64
	started bool
}

// Start begins the animation at pos. It plays once per run; later calls
// are ignored.
func (e *Explosion) Start(pos core.Vec2) {
	if e.started {
		return
	}
	*e = Explosion{Pos: pos, started: true}
}

// Advance moves the animation on by dt seconds.
func (e *Explosion) Advance(dt float64) {
	if e.started {
		e.age += dt
	}
}

// Frame returns the sheet index to draw, or false once the last frame
// has played (or before Start).
func (e Explosion) Frame() (int, bool) {
	if !e.started {
		return 0, false
	}
	frame := int(e.age * ExplosionFPS)
	if frame >= ExplosionFrames {
		return 0, false
	}
	return frame, true
}
