package t2048

import "math/rand"

// DefaultFourProbability is the chance a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// Spawner creates new tiles with random values and places them on empty cells.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
	renderer TileRenderer
	nextID   int
}

// NewSpawner creates a spawner. A nil renderer draws nothing.
func NewSpawner(rng *rand.Rand, fourProb float64, renderer TileRenderer) *Spawner {
	if renderer == nil {
		renderer = InstantRenderer{}
	}
	return &Spawner{
		rng:      rng,
		fourProb: fourProb,
		renderer: renderer,
	}
}

// NewTile creates a tile at pos: 4 with the configured probability, else 2.
func (s *Spawner) NewTile(pos Position) *Tile {
	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}
	return s.NewTileWithValue(pos, value)
}

// NewTileWithValue creates a tile with a fixed value.
func (s *Spawner) NewTileWithValue(pos Position, value int) *Tile {
	s.nextID++
	return NewTile(s.nextID, value, pos, s.renderer.NewVisual(s.nextID))
}

// SpawnInto places a new tile on a random empty cell of g.
func (s *Spawner) SpawnInto(g *Grid) (*Tile, error) {
	cell, err := g.RandomEmptyCell(s.rng)
	if err != nil {
		return nil, err
	}
	tile := s.NewTile(cell.Position())
	cell.LinkTile(tile)
	return tile, nil
}

// InstantRenderer is a TileRenderer whose transitions finish immediately.
// Used headless and in tests.
type InstantRenderer struct{}

// NewVisual implements TileRenderer.
func (InstantRenderer) NewVisual(int) TileVisual {
	return instantVisual{}
}

type instantVisual struct{}

func (instantVisual) Spawn(Position, int) *Signal { return Resolved() }
func (instantVisual) AnimateTo(Position) *Signal { return Resolved() }
func (instantVisual) AnimateMerge(int) *Signal { return Resolved() }
func (instantVisual) Remove() {}
