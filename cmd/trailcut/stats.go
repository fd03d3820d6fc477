package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailcut/trailcut/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated play statistics",
	Long: `Display per-variant play statistics: games played, best and
average score, and when each variant was last played.

Examples:
  trailcut stats
  trailcut stats --db ./scores.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Println("Play statistics:")
	fmt.Println()
	fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %s\n", "Variant", "Games", "Best", "Avg", "Last played")
	fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %s\n", "-------", "-----", "----", "---", "-----------")

	for _, s := range stats {
		fmt.Printf("  %-20s  %-6d  %-8d  %-8.1f  %s\n",
			s.GameID, s.GamesCount, s.HighScore, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
