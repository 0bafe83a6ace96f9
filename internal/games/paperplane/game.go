// Package paperplane implements an endless descent game: a paper plane
// steers between procedurally generated platforms jutting from the walls,
// and the course tightens as the score climbs.
package paperplane

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "paperplane"

// Game adapts a World to the registry.Game interface.
// Screen cells are mapped onto world pixels using the terminal cell size.
type Game struct {
	world     *World
	cfg       config.PaperPlaneConfig
	runtime   core.RuntimeConfig
	logger    *log.Logger
	explosion Explosion
	paused    bool
	ticks     int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes world logging to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game with the embedded default config.
func New(opts ...Option) *Game {
	return NewWithConfig(config.DefaultPaperPlaneConfig(), opts...)
}

// NewWithConfig creates a game driven by cfg.
func NewWithConfig(cfg config.PaperPlaneConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paper Plane"
}

// Reset starts a new run sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, NewRand(runtime.Seed), g.logger)
	g.world.Resize(g.cellsToPixels(runtime.ScreenW, runtime.ScreenH))
	g.explosion = Explosion{}
	g.paused = false
	g.ticks = 0
}

// ResetPixels starts a new run in a window measured in pixels.
func (g *Game) ResetPixels(runtime core.RuntimeConfig, width, height float64) {
	g.Reset(runtime)
	g.world.Resize(width, height)
}

func (g *Game) cellsToPixels(cols, rows int) (float64, float64) {
	return float64(cols) * g.cfg.Terminal.CellWidth, float64(rows) * g.cfg.Terminal.CellHeight
}

// Explosion returns the crash animation state.
func (g *Game) Explosion() Explosion {
	return g.explosion
}

// World exposes the simulation to pixel hosts.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	if g.world.GameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.world.Restart()
			g.explosion = Explosion{}
			g.ticks = 0
			return core.StepResult{State: g.State()}
		}
		g.explosion.Advance(g.runtime.TickSeconds())
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	events := g.world.Step(SteeringFrom(in), g.runtime.TickSeconds())
	if g.world.GameOver {
		g.explosion.Start(g.world.Player.Pos)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// SteeringFrom converts platform actions into steer input.
func SteeringFrom(in core.InputFrame) Steering {
	return Steering{
		LeftPressed:  in.Has(core.ActionLeft),
		RightPressed: in.Has(core.ActionRight),
		LeftHeld:     in.IsHeld(core.ActionLeft),
		RightHeld:    in.IsHeld(core.ActionRight),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
		Level:    g.world.Difficulty.Level,
		GameOver: g.world.GameOver,
		Paused:   g.paused,
	}
}

// RunStats summarises the current run for the history table.
type RunStats struct {
	Score     int
	Level     int
	Platforms int
	Seed      int64
	Duration  time.Duration
}

// Stats returns the summary of the current run.
func (g *Game) Stats() RunStats {
	if g.world == nil {
		return RunStats{Seed: g.runtime.Seed}
	}
	return RunStats{
		Score:     g.world.Score,
		Level:     g.world.Difficulty.Level,
		Platforms: g.world.Platforms.Total,
		Seed:      g.runtime.Seed,
		Duration:  g.world.Elapsed,
	}
}

func init() {
	registry.Register(New())
}
