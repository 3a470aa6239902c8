package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/storage/redis"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a board",
	Long: `Display the top 10 finished games for a board, followed by every
stored best-score record.

Examples:
  t2048 scores
  t2048 scores 2048_5x5
  t2048 scores --all
  t2048 scores 2048_3x3 --clear
  t2048 scores --redis redis://localhost:6379/0`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresAll   bool
	flagScoresClear bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show totals for every board played")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game history of the board (best-score records are kept)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := t2048.IDForSide(0)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresAll {
		printStats(store)
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max tile", "Moves", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
		}
	}

	fmt.Println()
	printRecords(store)
}

// printStats lists per-board totals.
func printStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-10s  %-8s  %-9s  %s\n", "Board", "Games", "High", "Max tile", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-10s  %-8s  %-9s  %s\n", "-----", "-----", "----", "--------", "-------", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-10s  %-6d  %-10d  %-8d  %-9.1f  %s\n",
			st.GameID, st.GamesCount, st.HighScore, st.BestTile, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printRecords lists every best score from the active record store.
func printRecords(store *storage.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type row struct {
		key   string
		value int
	}
	var rows []row

	if flagRedisURL != "" {
		cfg := redis.DefaultConfig()
		cfg.URL = flagRedisURL
		rs, err := redis.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to redis: %v\n", err)
			return
		}
		defer rs.Close()

		records, err := rs.Records(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
			return
		}
		for _, r := range records {
			rows = append(rows, row{r.Key, r.Value})
		}
	} else {
		records, err := store.Records(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
			return
		}
		for _, r := range records {
			rows = append(rows, row{r.Key, r.Value})
		}
	}

	if len(rows) == 0 {
		fmt.Println("No best scores stored.")
		return
	}

	fmt.Println("Best scores:")
	for _, r := range rows {
		fmt.Printf("  %-20s  %d\n", r.key, r.value)
	}
}
