// trailcut is a Qix-style territory-capture game for the terminal.
//
// Usage:
//
//	trailcut play [variant]    - Play a variant directly
//	trailcut menu              - Start the variant picker menu
//	trailcut list              - List available variants
//	trailcut scores <variant>  - Show high scores for a variant
//	trailcut stats             - Show aggregated play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.trailcut/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the variants
	_ "github.com/trailcut/trailcut/internal/games/trailcut"
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
	Use:   "trailcut",
	Short: "Trailcut - Cut the void and claim territory in your terminal",
	Long: `Trailcut is a terminal territory-capture game: ride the coastline of
safe ground, dive into the void leaving a vulnerable trail, and seal the
trail back to a wall to claim one side of the cut. Capture enough of the
board to clear the level; enemies that touch your trail end the run.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  list     - Show all available variants
  scores   - View high scores
  stats    - View aggregated play statistics

Examples:
  trailcut play
  trailcut play trailcut_hardcore
  trailcut menu
  trailcut scores trailcut`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trailcut/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
