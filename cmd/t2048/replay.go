package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Play a list of moves without a terminal UI",
	Long: `Play a fixed list of moves on a fresh board and print the result.
Moves that change nothing are skipped. Replay stops at game over. Best
scores are not touched.

Examples:
  t2048 replay --seed 42 --moves up,left,down,right
  t2048 replay --size 3 --seed 7 --moves "left left up"`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

var (
	flagReplayMoves string
	flagReplaySize  int
)

func init() {
	replayCmd.Flags().StringVar(&flagReplayMoves, "moves", "", "Directions separated by commas or spaces: up, down, left, right")
	replayCmd.Flags().IntVar(&flagReplaySize, "size", 0, fmt.Sprintf("Board side, %d to %d", t2048.MinSide, t2048.MaxSide))
}

// replayReport is what a replay did.
type replayReport struct {
	Played   int // moves that changed the board
	Skipped  int // moves that changed nothing
	Unplayed int // moves left after game over
}

func runReplay(_ *cobra.Command, _ []string) {
	moves, err := t2048.ParseMoves(flagReplayMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if flagReplaySize != 0 {
		if flagReplaySize < t2048.MinSide || flagReplaySize > t2048.MaxSide {
			fmt.Fprintf(os.Stderr, "Error: --size must be between %d and %d\n", t2048.MinSide, t2048.MaxSide)
			os.Exit(1)
		}
		cfg = cfg.WithSide(flagReplaySize)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl, report, err := replay(cfg, seed, moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printReplay(os.Stdout, ctrl, report, seed)
}

// replay plays moves on a fresh board seeded with seed.
func replay(cfg config.T2048Config, seed int64, moves []t2048.Direction) (*t2048.Controller, replayReport, error) {
	settings := t2048.Settings{
		GridSize:        cfg.Board.GridSize,
		FourProbability: cfg.Spawn.FourProbability,
		RecordPrefix:    cfg.Records.KeyPrefix,
	}
	ctrl, err := t2048.NewController(settings, nil, nil, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, replayReport{}, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, replayReport{}, err
	}

	var report replayReport
	for i, dir := range moves {
		_, err := ctrl.Play(dir)
		switch {
		case err == nil:
			report.Played++
		case errors.Is(err, t2048.ErrIllegalMove):
			report.Skipped++
		case errors.Is(err, t2048.ErrGameOver):
			report.Unplayed = len(moves) - i
			return ctrl, report, nil
		default:
			return nil, report, fmt.Errorf("move %d (%s): %w", i+1, dir, err)
		}
	}
	return ctrl, report, nil
}

func printReplay(w io.Writer, ctrl *t2048.Controller, report replayReport, seed int64) {
	values := ctrl.Grid().Values()

	width := len(fmt.Sprint(ctrl.Grid().MaxValue()))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == 0 {
				cells[i] = fmt.Sprintf("%*s", width, ".")
			} else {
				cells[i] = fmt.Sprintf("%*d", width, v)
			}
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, " "))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Seed: %d\n", seed)
	fmt.Fprintf(w, "Score: %d\n", ctrl.Score())
	fmt.Fprintf(w, "Moves: %d played, %d skipped\n", report.Played, report.Skipped)
	if ctrl.GameOver() {
		if report.Unplayed > 0 {
			fmt.Fprintf(w, "Game over (%d moves not played)\n", report.Unplayed)
		} else {
			fmt.Fprintln(w, "Game over")
		}
	}
}
