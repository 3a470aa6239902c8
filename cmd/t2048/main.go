// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list              - List available boards
//	t2048 play [game]       - Play a board (default: 2048)
//	t2048 menu              - Start menu to pick boards interactively
//	t2048 serve             - Start SSH server for remote play
//	t2048 scores [game]     - Show high scores and best-score records
//	t2048 replay            - Play a list of moves headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--redis <url>   - Keep best scores in Redis
//	--config <path> - Custom t2048.yaml
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagRedisURL string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - join the tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles that
meet join into one tile worth their sum. A new tile appears after
every move; the game ends when no move is left.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Play a list of moves without the UI

Examples:
  t2048 play
  t2048 play 2048_5x5
  t2048 play --size 3
  t2048 menu --redis redis://localhost:6379/0
  t2048 serve --ssh :2222 --watch :8080
  t2048 scores 2048`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		t2048.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis", "", "Redis URL for best scores (default: keep them in the scores database)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom t2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard while playing)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
