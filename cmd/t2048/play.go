package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagSize     int
	flagPickSize bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing 2048. Without an argument the board size comes from
the config file (4x4 unless changed).

Controls:
  Arrows/WASD/hjkl - Slide
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048_6x6
  t2048 play --size 3
  t2048 play --pick
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, fmt.Sprintf("Board side, %d to %d", t2048.MinSide, t2048.MaxSide))
	playCmd.Flags().BoolVar(&flagPickSize, "pick", false, "Choose the board size interactively")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := t2048.IDForSide(0)
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagSize != 0 {
		if flagSize < t2048.MinSide || flagSize > t2048.MaxSide {
			fmt.Fprintf(os.Stderr, "Error: --size must be between %d and %d\n", t2048.MinSide, t2048.MaxSide)
			os.Exit(1)
		}
		gameID = t2048.IDForSide(flagSize)
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	if flagPickSize {
		picked, _, err := tui.RunSizePicker(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed back or quit
		if picked == "" {
			return
		}
		gameID = picked
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	session := openLocalSession()
	_, runErr := tui.Run(game, session.opts, cfg)

	// Close stores before potential exit
	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
