package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/platform/gui"
	"github.com/vovakirdan/paperplane/internal/platform/tui"
	"github.com/vovakirdan/paperplane/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagLogPath    string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Paper Plane",
	Long: `Start a run right away.

Controls:
  A/Left, D/Right  - Steer (tap to snap one heading, hold to turn)
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Q/Ctrl+C         - Quit
  F11              - Fullscreen (with --gui)

Difficulty options:
  easy   - Level up every 30 points
  normal - Level up every 20 points
  hard   - Level up every 12 points
  fixed  - No progression, the first level forever

Examples:
  paperplane play
  paperplane play --difficulty easy
  paperplane play --gui --width 1280 --height 960
  paperplane play --config ./my-plane.yaml --log plane.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")
	playCmd.Flags().IntVar(&flagWidth, "width", gui.DefaultWidth, "Window width in pixels (with --gui)")
	playCmd.Flags().IntVar(&flagHeight, "height", gui.DefaultHeight, "Window height in pixels (with --gui)")
}

// terminalRuntime builds a runtime config sized to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns a file logger for --log, or a discarding one.
// The returned close func is always safe to call.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "paperplane",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// parseDifficulty validates --difficulty. Empty keeps the config's own settings.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	preset := config.ParsePreset(s)
	if s != "" && preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return preset, nil
}

// loadGameConfig resolves --config and --difficulty into a game config.
func loadGameConfig(preset config.DifficultyPreset) (config.PaperPlaneConfig, error) {
	cfg, err := config.LoadPaperPlane(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameCfg, err := loadGameConfig(preset)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game := paperplane.NewWithConfig(gameCfg, paperplane.WithLogger(logger))

	store := openStore()
	runtime := terminalRuntime()
	logger.Info("run starting", "difficulty", preset, "gui", flagGUI, "seed", runtime.Seed)

	if flagGUI {
		err = gui.Run(game, store, runtime, gui.Options{
			Width:      flagWidth,
			Height:     flagHeight,
			Difficulty: string(preset),
			Logger:     logger,
		})
	} else {
		err = tui.Run(game, store, runtime, tui.Options{
			Difficulty: string(preset),
			Logger:     logger,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
