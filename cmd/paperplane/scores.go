package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top scores, the best run, aggregate stats and the most
recent runs.

Examples:
  paperplane scores
  paperplane scores --limit 25
  paperplane scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(paperplane.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(paperplane.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Paper Plane")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'paperplane play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestRun(paperplane.ID); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best run: %d points, level %d, %d platforms in %s (%s, seed %d)\n",
			best.Score, best.Level, best.Platforms, best.Duration.Round(time.Second),
			orDefault(best.Difficulty, "custom"), best.Seed)
	}

	if stats, err := store.GetGameStats(paperplane.ID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Average: %.1f  Best level: %d  Platforms: %d  Playtime: %s\n",
			stats.GamesCount, stats.AvgScore, stats.BestLevel, stats.TotalPlatforms,
			stats.TotalPlaytime.Round(time.Second))
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	runs, err := store.RecentRuns(paperplane.ID, flagScoresLimit)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-16s  %-6s  %-5s  %-8s  %s\n", "Date", "Score", "Level", "Time", "Mode")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-5d  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Level,
			r.Duration.Round(time.Second), orDefault(r.Difficulty, "custom"))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
