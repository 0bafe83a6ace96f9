// paperplane is an endless descent game for the terminal, a desktop window,
// or remote players over SSH.
//
// Usage:
//
//	paperplane play          - Fly in the terminal (or a window with --gui)
//	paperplane menu          - Start menu with difficulty picker and scoreboard
//	paperplane serve         - Start SSH server for remote play
//	paperplane scores        - Show high scores, best run and stats
//	paperplane config        - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.paperplane/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperplane",
	Short: "Paper Plane - steer a paper plane down an endless shaft",
	Long: `Paper Plane is an endless descent game. Steer the plane between the
platforms jutting out of the walls; every platform you pass scores a point
and the shaft tightens as you level up.

Available commands:
  play     - Play directly in the terminal or a window
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  config   - Print the effective game config

Examples:
  paperplane play
  paperplane play --difficulty hard --gui
  paperplane menu
  paperplane serve --ssh :2222
  paperplane scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paperplane/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
