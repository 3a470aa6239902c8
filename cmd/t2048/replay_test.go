package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// cycle repeats up, left, down, right n times.
func cycle(n int) []t2048.Direction {
	moves := make([]t2048.Direction, 0, 4*n)
	for range n {
		moves = append(moves, t2048.DirUp, t2048.DirLeft, t2048.DirDown, t2048.DirRight)
	}
	return moves
}

func TestReplayIsDeterministic(t *testing.T) {
	cfg := config.DefaultT2048Config().WithSide(4)
	moves, err := t2048.ParseMoves("up left down right up up left")
	if err != nil {
		t.Fatal(err)
	}

	a, ra, err := replay(cfg, 42, moves)
	if err != nil {
		t.Fatal(err)
	}
	b, rb, err := replay(cfg, 42, moves)
	if err != nil {
		t.Fatal(err)
	}

	if ra != rb {
		t.Errorf("reports differ: %+v vs %+v", ra, rb)
	}
	if ra.Played+ra.Skipped+ra.Unplayed != len(moves) {
		t.Errorf("report %+v does not account for %d moves", ra, len(moves))
	}
	if a.Score() != b.Score() {
		t.Errorf("scores differ: %d vs %d", a.Score(), b.Score())
	}
	va, vb := a.Grid().Values(), b.Grid().Values()
	for r := range va {
		for c := range va[r] {
			if va[r][c] != vb[r][c] {
				t.Fatalf("boards differ at (%d,%d): %v vs %v", r, c, va, vb)
			}
		}
	}
}

func TestReplayStopsAtGameOver(t *testing.T) {
	cfg := config.DefaultT2048Config().WithSide(3)
	moves := cycle(3000)

	ctrl, report, err := replay(cfg, 7, moves)
	if err != nil {
		t.Fatal(err)
	}
	if !ctrl.GameOver() {
		t.Fatalf("game not over after %d moves", len(moves))
	}
	if report.Unplayed == 0 {
		t.Error("moves after game over should be reported as unplayed")
	}
	if report.Played+report.Skipped+report.Unplayed != len(moves) {
		t.Errorf("report %+v does not account for %d moves", report, len(moves))
	}
	if ctrl.Moves() != report.Played {
		t.Errorf("controller counted %d moves, report %d", ctrl.Moves(), report.Played)
	}

	var buf bytes.Buffer
	printReplay(&buf, ctrl, report, 7)
	out := buf.String()
	for _, want := range []string{"Seed: 7", "Score: ", "Game over ("} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 3+4 {
		t.Errorf("output too short:\n%s", out)
	}
}

func TestReplayRejectsBadGridSize(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.GridSize = 10
	if _, _, err := replay(cfg, 1, nil); err == nil {
		t.Error("expected an error for a grid size that is not a perfect square")
	}
}
