package paperplane

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// World owns every piece of game state and advances it one tick at a time.
// Nothing is global: hosts hold a World and call Step.
type World struct {
	cfg    config.PaperPlaneConfig
	logger *log.Logger
	rng    Rand

	window core.Vec2 // Window size in world pixels; zero until the first Resize
	Sizes  Sizes
	Screen ScreenModel
	Camera Camera

	Player     Player
	Difficulty Difficulty
	Platforms  Platforms
	Background Background
	generator  *Generator

	Score    int
	GameOver bool
	Elapsed  time.Duration // Simulated time of the current run

	scoreDirty bool // Score changed since the difficulty was last derived
}

// NewWorld creates a world without a window. Call Resize before stepping.
// A nil logger discards output.
func NewWorld(cfg config.PaperPlaneConfig, rng Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		cfg:       cfg,
		logger:    logger,
		rng:       rng,
		generator: NewGenerator(rng, cfg.Platforms),
	}
}

// Window returns the current window size in world pixels.
func (w *World) Window() core.Vec2 {
	return w.window
}

// HasWindow reports whether the world has a usable window.
func (w *World) HasWindow() bool {
	return w.window.X > 0 && w.window.Y > 0
}

// Resize sets the window and restarts the run when the size changed.
// The scale factor is only recomputed here.
func (w *World) Resize(width, height float64) {
	if width == w.window.X && height == w.window.Y {
		return
	}
	w.window = core.Vec2{X: width, Y: height}
	if !w.HasWindow() {
		return
	}
	scale := ScaleFactor(height, w.cfg.Sprites.Wall.H, w.cfg.Level.TilesHigh)
	w.Sizes = NewSizes(w.cfg, scale)
	w.logger.Debug("window resized", "width", width, "height", height, "scale", scale)
	w.Restart()
}

// Restart begins a new run in the current window.
func (w *World) Restart() {
	if !w.HasWindow() {
		return
	}
	w.Camera.Center(w.window.X, w.window.Y)
	w.Screen.Refresh(w.window.X, w.window.Y, w.Sizes.LevelWidth, &w.Camera)

	w.Difficulty = NewDifficulty(w.cfg.Difficulty, w.Sizes)
	w.Platforms.Reset()
	w.Background.Fill(w.Screen, w.Sizes.Wall.Y, w.cfg.Platforms.BackgroundPrefetch)
	w.Player = NewPlayer(w.Screen, w.Sizes, w.cfg.Player.HeadingFrames, w.cfg.Player.TurnRate)

	w.Score = 0
	w.GameOver = false
	w.Elapsed = 0
	w.scoreDirty = false
	w.logger.Info("run started", "scale", w.Sizes.Scale, "deadspace", w.Screen.Deadspace)
}

// Step advances the world by dt seconds and returns the signals raised.
// Ticks without a window or after game over do nothing.
func (w *World) Step(in Steering, dt float64) []core.Event {
	if !w.HasWindow() || w.GameOver {
		return nil
	}
	var events []core.Event
	w.Elapsed += time.Duration(dt * float64(time.Second))

	w.Player.Steer(in, dt)
	w.Player.Move(w.Difficulty.PlayerMaxSpeed, dt)
	w.Camera.Follow(w.Player, w.Screen)
	w.Screen.Refresh(w.window.X, w.window.Y, w.Sizes.LevelWidth, &w.Camera)

	if w.scoreDirty {
		w.scoreDirty = false
		if w.Difficulty.Recompute(w.Score) {
			w.logger.Debug("level up", "level", w.Difficulty.Level, "gap", w.Difficulty.PlatformGap, "height", w.Difficulty.PlatformHeight)
			events = append(events, core.Event{Kind: core.EventLevelUp, Value: w.Difficulty.Level})
		}
	}

	w.generator.Extend(&w.Platforms, w.Difficulty, w.Screen, w.Sizes)

	for range w.Platforms.Prune(w.Screen.Visible) {
		w.Score++
		w.scoreDirty = true
		events = append(events, core.Event{Kind: core.EventScoreIncrease, Value: w.Score})
	}

	w.Background.Update(w.Screen.Visible, w.Sizes.Wall.Y)

	if CheckCollision(w.Player.Pos, w.Platforms.List, w.Screen, w.Sizes.EdgeTrim) {
		w.GameOver = true
		w.logger.Info("game over", "score", w.Score, "level", w.Difficulty.Level, "platforms", w.Platforms.Total, "elapsed", w.Elapsed)
		events = append(events, core.Event{Kind: core.EventGameOver, Value: w.Score})
	}
	return events
}
