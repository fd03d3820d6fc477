package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trailcut/trailcut/internal/core"
	"github.com/trailcut/trailcut/internal/games/trailcut"
	"github.com/trailcut/trailcut/internal/platform/tui"
	"github.com/trailcut/trailcut/internal/registry"
	"github.com/trailcut/trailcut/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: trailcut).

Controls:
  WASD/Arrows - Move along the coastline / dive into the void
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, slow enemies
  normal - Config defaults
  hard   - 2 lives, fast enemies, 80% capture goal
  fixed  - No per-level enemy speedup

Examples:
  trailcut play
  trailcut play trailcut_hardcore
  trailcut play --difficulty easy
  trailcut play --config ./my-trailcut.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "trailcut"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'trailcut list' to see available variants.")
		os.Exit(1)
	}

	// Terminal size decides the playfield layout up front
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Config path and difficulty apply to both variants
	trailcut.SetConfigPath(flagConfig)
	trailcut.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, playing without persistence", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
