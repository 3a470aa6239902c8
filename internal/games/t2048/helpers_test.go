package t2048

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

// gridFrom builds a grid from a row-major value matrix; 0 is empty.
func gridFrom(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	side := len(rows)
	g, err := NewGrid(side * side)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", side*side, err)
	}
	sp := NewSpawner(rand.New(rand.NewSource(1)), 0, nil)
	for r, row := range rows {
		for c, v := range row {
			if v == 0 {
				continue
			}
			cell := g.Cell(r, c)
			cell.LinkTile(sp.NewTileWithValue(cell.Position(), v))
		}
	}
	return g
}

func assertValues(t *testing.T, g *Grid, want [][]int) {
	t.Helper()
	got := g.Values()
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("board = %v, want %v", got, want)
			}
		}
	}
}

// memStore is an in-memory core.RecordStore.
type memStore struct {
	values map[string]int
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]int)}
}

func (m *memStore) Get(_ context.Context, key string) (int, bool, error) {
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, value int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.values[key] = value
	return nil
}

var errStoreDown = errors.New("store down")
