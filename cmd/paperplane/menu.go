package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, fly, and come back to the menu when the run is over.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  paperplane menu
  paperplane menu --fps 30
  paperplane menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset (default normal)")
	menuCmd.Flags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := terminalRuntime()

	for {
		result, err := tui.RunMenu(store, cfg, paperplane.ID, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		preset = result.Difficulty
		if result.Quit {
			return
		}

		if result.Choice == tui.MenuScores {
			goBack, sbErr := tui.RunScoreboard(store, paperplane.ID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return // User quit from scoreboard
		}

		gameCfg, err := loadGameConfig(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// New seed for each run unless --seed pinned it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		opts := tui.Options{Difficulty: string(preset), Logger: logger}
		game := paperplane.NewWithConfig(gameCfg, paperplane.WithLogger(logger))
		if err := tui.Run(game, store, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
