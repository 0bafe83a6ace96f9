package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

// bannerTicks is how long a level-up banner stays on screen.
const bannerTicks = 90

// RunReporter is implemented by games that can summarise a finished run.
type RunReporter interface {
	Stats() paperplane.RunStats
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	difficulty string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	bestScore  int
	banner     string
	bannerLeft int
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
	rank       int  // Leaderboard position of the last saved run, 0 if unknown
	tickOwner  uint64
}

// Options tune a game Model.
type Options struct {
	Difficulty string      // Recorded with each run
	Logger     *log.Logger // Nil discards
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		difficulty: opts.Difficulty,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		tickOwner:  nextTickOwner(),
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.bestScore = best
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickOwner)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Owner != m.tickOwner {
			return m, nil // Left over from an earlier game
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, nil
	case action == core.ActionBack:
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only applies after game over
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The run restarts because the scale factor depends on the window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.rank = 0
		m.banner, m.bannerLeft = "", 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.tickOwner)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false // Restarted by the game itself
		m.rank = 0
	}

	for _, e := range result.Events {
		if e.Kind == core.EventLevelUp {
			m.banner = fmt.Sprintf(" LEVEL %d ", e.Value)
			m.bannerLeft = bannerTicks
		}
	}
	if m.bannerLeft > 0 {
		m.bannerLeft--
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickOwner)
}

// saveRun records the finished run. Failures are logged and otherwise ignored.
func (m *Model) saveRun() {
	score := m.gameState.Score
	m.bestScore = max(m.bestScore, score)
	if m.store == nil || score == 0 {
		return
	}

	var err error
	if rr, ok := m.game.(RunReporter); ok {
		s := rr.Stats()
		_, err = m.store.SaveRun(storage.Run{
			GameID:     m.game.ID(),
			Score:      s.Score,
			Level:      s.Level,
			Platforms:  s.Platforms,
			Seed:       s.Seed,
			Difficulty: m.difficulty,
			Duration:   s.Duration,
		})
	} else {
		_, err = m.store.SaveScore(m.game.ID(), score)
	}
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	if rank, err := m.store.Rank(m.game.ID(), score); err == nil {
		m.rank = rank
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".paperplane", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.bestScore > 0 {
		best := fmt.Sprintf(" Best: %d ", m.bestScore)
		m.screen.DrawText(m.screen.Width()-len(best)-1, 0, best, core.ColorHUD)
	}
	if m.bannerLeft > 0 && !m.gameState.GameOver {
		m.screen.DrawTextCentered(2, m.banner, core.ColorAlert)
	}
	if m.gameState.GameOver && m.rank > 0 {
		rank := fmt.Sprintf(" Rank #%d ", m.rank)
		if m.rank == 1 {
			rank = " New best! "
		}
		m.screen.DrawTextCentered(2, rank, core.ColorHUD)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// standaloneModel quits where an embedded model would return to the menu.
type standaloneModel struct {
	Model
}

func (s standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.Model.Update(msg)
	s.Model = next.(Model)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		standaloneModel{NewModel(game, store, cfg, opts)},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
