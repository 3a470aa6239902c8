package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSideFor(t *testing.T) {
	tests := []struct {
		size    int
		side    int
		wantErr bool
	}{
		{1, 1, false},
		{9, 3, false},
		{16, 4, false},
		{36, 6, false},
		{0, 0, true},
		{-4, 0, true},
		{15, 0, true},
	}

	for _, tt := range tests {
		side, err := SideFor(tt.size)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidGridSize) {
				t.Errorf("SideFor(%d) error = %v, want ErrInvalidGridSize", tt.size, err)
			}
			continue
		}
		if err != nil || side != tt.side {
			t.Errorf("SideFor(%d) = %d, %v; want %d", tt.size, side, err, tt.side)
		}
	}
}

func TestInitialTileCount(t *testing.T) {
	tests := map[int]int{1: 1, 9: 3, 16: 4, 25: 5}
	for size, want := range tests {
		if got := InitialTileCount(size); got != want {
			t.Errorf("InitialTileCount(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestGroupingsPointAtDestination(t *testing.T) {
	g, err := NewGrid(9)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dir   Direction
		first Position // index 0 of group 1
		last  Position // final index of group 1
	}{
		{DirLeft, Position{1, 0}, Position{1, 2}},
		{DirRight, Position{1, 2}, Position{1, 0}},
		{DirUp, Position{0, 1}, Position{2, 1}},
		{DirDown, Position{2, 1}, Position{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			groups := g.Grouping(tt.dir)
			if len(groups) != 3 {
				t.Fatalf("got %d groups, want 3", len(groups))
			}
			group := groups[1]
			if got := group[0].Position(); got != tt.first {
				t.Errorf("group[0] = %v, want %v", got, tt.first)
			}
			if got := group[2].Position(); got != tt.last {
				t.Errorf("group[2] = %v, want %v", got, tt.last)
			}
		})
	}

	if g.Grouping(DirNone) != nil {
		t.Error("DirNone should have no grouping")
	}
}

func TestGroupingsShareCells(t *testing.T) {
	g, _ := NewGrid(16)
	for _, dir := range Directions {
		seen := make(map[*Cell]bool)
		for _, group := range g.Grouping(dir) {
			for _, c := range group {
				if seen[c] {
					t.Fatalf("%v: cell %v appears twice", dir, c.Position())
				}
				seen[c] = true
				if g.Cell(c.Position().Row, c.Position().Col) != c {
					t.Fatalf("%v: grouping cell %v is not the grid's cell", dir, c.Position())
				}
			}
		}
		if len(seen) != 16 {
			t.Errorf("%v: grouping covers %d cells, want 16", dir, len(seen))
		}
	}
}

func TestCellOutOfRange(t *testing.T) {
	g, _ := NewGrid(4)
	if g.Cell(-1, 0) != nil || g.Cell(0, 2) != nil {
		t.Error("out-of-range Cell should be nil")
	}
}

// An empty cell with a single candidate is always chosen.
func TestRandomEmptyCellSingleCandidate(t *testing.T) {
	g := gridFrom(t, [][]int{
		{2, 4, 8},
		{16, 0, 32},
		{64, 128, 256},
	})
	for seed := range int64(50) {
		c, err := g.RandomEmptyCell(rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		if c.Position() != (Position{1, 1}) {
			t.Fatalf("seed %d picked %v, want (1,1)", seed, c.Position())
		}
	}
}

func TestRandomEmptyCellFull(t *testing.T) {
	g := gridFrom(t, [][]int{{2, 4}, {8, 16}})
	if _, err := g.RandomEmptyCell(rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoEmptyCell) {
		t.Errorf("error = %v, want ErrNoEmptyCell", err)
	}
}

func TestGridAggregates(t *testing.T) {
	g := gridFrom(t, [][]int{{2, 0}, {8, 2}})
	if g.TileCount() != 3 {
		t.Errorf("TileCount() = %d, want 3", g.TileCount())
	}
	if g.EmptyCount() != 1 {
		t.Errorf("EmptyCount() = %d, want 1", g.EmptyCount())
	}
	if g.Sum() != 12 {
		t.Errorf("Sum() = %d, want 12", g.Sum())
	}
	if g.MaxValue() != 8 {
		t.Errorf("MaxValue() = %d, want 8", g.MaxValue())
	}
}
