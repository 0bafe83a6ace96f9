package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

// difficulties is the cycle order of the difficulty row.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	title      string
	cursor     int
	difficulty int // Index into difficulties
	width      int
	height     int
	bestScore  int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	chosen     bool
}

// NewMenuModel creates a new menu model. The difficulty row starts on preset,
// or normal if preset is empty.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID string, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		title:      menuTitle(gameID),
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.bestScore = best
		}
	}
	return m
}

// menuTitle letter-spaces the registered title of gameID.
func menuTitle(gameID string) string {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}
	letters := strings.Split(strings.ToUpper(title), "")
	return strings.Join(letters, " ")
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < int(MenuQuit) {
			m.cursor++
		}

	case MenuActionLeft:
		if MenuChoice(m.cursor) == MenuDifficulty {
			m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)
		}

	case MenuActionRight:
		if MenuChoice(m.cursor) == MenuDifficulty {
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		}

	case MenuActionScoreboard:
		m.cursor = int(MenuScores)
		m.chosen = true
		return m, tea.Quit

	case MenuActionSelect:
		switch MenuChoice(m.cursor) {
		case MenuDifficulty:
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.chosen = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	if m.bestScore > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best: %d", m.bestScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", difficulties[m.difficulty]),
		"High Scores",
		"Quit",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = menuPickStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry and whether one was made.
func (m MenuModel) Choice() (MenuChoice, bool) {
	return MenuChoice(m.cursor), m.chosen
}

// Difficulty returns the preset shown on the difficulty row.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID string, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, gameID, preset),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	choice, chosen := m.Choice()
	return MenuResult{
		Choice:     choice,
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
		Quit:       m.IsQuitting() || !chosen,
	}, nil
}
