// Package gui hosts the paper plane game in a desktop window with Ebitengine.
// The world runs in window pixels, so no cell mapping is involved.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 720
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:        {0x1b, 0x1d, 0x2a, 0xff},
	core.ColorBackdrop:       {0x2c, 0x2f, 0x40, 0xff},
	core.ColorWall:           {0x5a, 0x3d, 0x2b, 0xff},
	core.ColorPlatform:       {0x9c, 0x5b, 0x2e, 0xff},
	core.ColorPlatformCorner: {0xd0, 0x8a, 0x3c, 0xff},
	core.ColorPlayer:         {0xf4, 0xf1, 0xe8, 0xff},
	core.ColorAlert:          {0xe8, 0x5d, 0x5d, 0xff},
	core.ColorExplosion:      {0xff, 0xb3, 0x47, 0xff},
}

// fullscreenKey toggles fullscreen outside the game's own bindings.
const fullscreenKey = ebiten.KeyF11

// cursorIdleTimeout is how long the pointer may rest before it is hidden.
const cursorIdleTimeout = 2 * time.Second

// keyBinding maps physical keys to one platform action.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []keyBinding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// Options configure the window host.
type Options struct {
	Width, Height int
	Difficulty    string // Recorded with each run
	Logger        *log.Logger
}

// Host implements ebiten.Game around a paper plane Game.
type Host struct {
	game     *paperplane.Game
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	opts     Options
	width    int
	height   int
	best     int
	runSaved bool
	cursor   cursorIdle
}

// NewHost creates a window host. The store may be nil.
func NewHost(game *paperplane.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) *Host {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	h := &Host{
		game:    game,
		store:   store,
		logger:  opts.Logger,
		runtime: runtime,
		opts:    opts,
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			h.best = best
		}
	}
	h.restart(opts.Width, opts.Height)
	return h
}

func (h *Host) restart(width, height int) {
	h.width, h.height = width, height
	h.game.ResetPixels(h.runtime, float64(width), float64(height))
	h.runSaved = false
}

// ReadInput samples the keyboard: just-pressed keys become edge actions
// and keys still down are marked held.
func ReadInput() core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
			}
			if ebiten.IsKeyPressed(k) {
				frame.Hold(b.action)
			}
		}
	}
	return frame
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(fullscreenKey) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	x, y := ebiten.CursorPosition()
	if hide, changed := h.cursor.update(x, y, h.tickDuration()); changed {
		if hide {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	return h.step(ReadInput())
}

func (h *Host) tickDuration() time.Duration {
	return time.Duration(h.runtime.TickSeconds() * float64(time.Second))
}

// cursorIdle hides the mouse pointer after it rests for cursorIdleTimeout.
type cursorIdle struct {
	x, y   int
	idle   time.Duration
	hidden bool
}

// update records the pointer position one tick of dt later. It returns
// whether the pointer should be hidden and whether that just changed.
func (c *cursorIdle) update(x, y int, dt time.Duration) (hide, changed bool) {
	if x != c.x || y != c.y {
		c.x, c.y = x, y
		c.idle = 0
	} else {
		c.idle += dt
	}
	hide = c.idle >= cursorIdleTimeout
	changed = hide != c.hidden
	c.hidden = hide
	return hide, changed
}

func (h *Host) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) && h.game.State().GameOver {
		h.runtime.Seed = time.Now().UnixNano()
		h.restart(h.width, h.height)
		return nil
	}

	wasOver := h.game.State().GameOver
	result := h.game.Step(in)
	if wasOver && !result.State.GameOver {
		h.runSaved = false
	}
	for _, e := range result.Events {
		if e.Kind == core.EventLevelUp {
			h.logger.Debug("level up", "level", e.Value)
		}
	}
	if result.State.GameOver && !h.runSaved {
		h.saveRun()
		h.runSaved = true
	}
	return nil
}

func (h *Host) saveRun() {
	s := h.game.Stats()
	h.best = max(h.best, s.Score)
	h.logger.Info("run over", "score", s.Score, "level", s.Level, "duration", s.Duration.Round(time.Second))
	if h.store == nil || s.Score == 0 {
		return
	}
	_, err := h.store.SaveRun(storage.Run{
		GameID:     h.game.ID(),
		Score:      s.Score,
		Level:      s.Level,
		Platforms:  s.Platforms,
		Seed:       s.Seed,
		Difficulty: h.opts.Difficulty,
		Duration:   s.Duration,
	})
	if err != nil {
		h.logger.Warn("could not save run", "err", err)
	}
}

// Layout reports the logical screen size. A new size restarts the run.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != h.width || outsideHeight != h.height) {
		h.restart(outsideWidth, outsideHeight)
	}
	return h.width, h.height
}

// Draw renders the world.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(palette[core.ColorDefault])
	w := h.game.World()
	if w == nil || !w.HasWindow() {
		return
	}
	v := view{top: w.Screen.Visible.Max}

	left, right := w.Screen.PlayfieldLeft(), w.Screen.PlayfieldRight()
	fillRect(screen, 0, 0, left, w.Screen.Height, palette[core.ColorWall])
	fillRect(screen, right, 0, w.Screen.Width-right, w.Screen.Height, palette[core.ColorWall])

	seam := math.Max(1, w.Sizes.Scale)
	for _, y := range w.Background.Rows {
		if y := y + w.Sizes.Wall.Y/2; w.Screen.Visible.Contains(y) {
			fillRect(screen, left, v.y(y), right-left, seam, palette[core.ColorBackdrop])
		}
	}

	for _, p := range w.Platforms.List {
		if !p.Y().Overlaps(w.Screen.Visible) {
			continue
		}
		for _, t := range p.Tiles(w.Sizes.Tile) {
			c := palette[core.ColorPlatform]
			if t.Corner {
				c = palette[core.ColorPlatformCorner]
			}
			fillRect(screen, t.Center.X-w.Sizes.Tile.X/2, v.y(t.Center.Y+w.Sizes.Tile.Y/2),
				w.Sizes.Tile.X, w.Sizes.Tile.Y, c)
		}
	}

	explosion := h.game.Explosion()
	frame, exploding := explosion.Frame()
	switch {
	case exploding:
		drawExplosion(screen, v, explosion.Pos, frame, w.Sizes.Player)
	case !w.GameOver:
		drawPlane(screen, v, w.Player, w.Sizes.Player)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Level: %d  Best: %d",
		w.Score, w.Difficulty.Level, max(h.best, w.Score)), int(left)+8, 8)
	switch state := h.game.State(); {
	case state.GameOver && !exploding:
		h.banner(screen, fmt.Sprintf("GAME OVER  score %d\npress R to restart", w.Score))
	case state.Paused:
		h.banner(screen, "PAUSED\npress P to resume")
	}
}

func (h *Host) banner(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, h.width/2-60, h.height/2-8)
}

// view flips world y (up) to image y (down).
type view struct {
	top float64
}

func (v view) y(worldY float64) float64 {
	return v.top - worldY
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawPlane draws the plane body and a nose line along its heading.
func drawPlane(dst *ebiten.Image, v view, p paperplane.Player, size core.Vec2) {
	cx, cy := p.Pos.X, v.y(p.Pos.Y)
	c := palette[core.ColorPlayer]
	fillRect(dst, cx-size.X/4, cy-size.Y/4, size.X/2, size.Y/2, c)

	// Angle 0 dives and ±π/2 glides sideways.
	nose := size.X / 2
	nx := cx + math.Sin(p.Angle)*nose
	ny := cy + math.Cos(p.Angle)*nose
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(nx), float32(ny), float32(math.Max(2, size.Y/6)), c, false)
}

// drawExplosion draws one frame of the crash: a flash that swells to the
// plane's size while its bright core burns out.
func drawExplosion(dst *ebiten.Image, v view, pos core.Vec2, frame int, size core.Vec2) {
	cx, cy := pos.X, v.y(pos.Y)
	grow := 1 + float64(frame)/float64(paperplane.ExplosionFrames-1)
	outer := size.X / 2 * grow
	fillRect(dst, cx-outer/2, cy-outer/2, outer, outer, palette[core.ColorExplosion])
	if inner := outer * (1 - grow/2); inner > 0 {
		fillRect(dst, cx-inner/2, cy-inner/2, inner, inner, palette[core.ColorPlayer])
	}
}

// Run opens the window and blocks until it is closed.
func Run(game *paperplane.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) error {
	h := NewHost(game, store, runtime, opts)

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
