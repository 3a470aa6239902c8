package t2048

import (
	"math"
	"math/rand"
)

// Grid is the side×side collection of cells with four precomputed
// groupings. Groupings are reordered views over the same cells; index 0 of
// every group is the destination edge for its direction.
type Grid struct {
	side  int
	cells []*Cell // row-major

	byRow            [][]*Cell // left to right
	byReversedRow    [][]*Cell // right to left
	byColumn         [][]*Cell // top to bottom
	byReversedColumn [][]*Cell // bottom to top
}

// SideFor returns the board side for a total cell count.
func SideFor(gridSize int) (int, error) {
	if gridSize <= 0 {
		return 0, ErrInvalidGridSize
	}
	side := int(math.Round(math.Sqrt(float64(gridSize))))
	if side*side != gridSize {
		return 0, ErrInvalidGridSize
	}
	return side, nil
}

// InitialTileCount returns how many tiles a new game starts with: ⌈√gridSize⌉.
func InitialTileCount(gridSize int) int {
	return int(math.Ceil(math.Sqrt(float64(gridSize))))
}

// NewGrid builds an empty grid of gridSize cells (gridSize = side²).
func NewGrid(gridSize int) (*Grid, error) {
	side, err := SideFor(gridSize)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		side:  side,
		cells: make([]*Cell, 0, gridSize),
	}
	for row := range side {
		for col := range side {
			g.cells = append(g.cells, &Cell{pos: Position{Row: row, Col: col}})
		}
	}

	g.byRow = make([][]*Cell, side)
	g.byReversedRow = make([][]*Cell, side)
	g.byColumn = make([][]*Cell, side)
	g.byReversedColumn = make([][]*Cell, side)
	for i := range side {
		g.byRow[i] = make([]*Cell, side)
		g.byReversedRow[i] = make([]*Cell, side)
		g.byColumn[i] = make([]*Cell, side)
		g.byReversedColumn[i] = make([]*Cell, side)
		for k := range side {
			g.byRow[i][k] = g.Cell(i, k)
			g.byReversedRow[i][k] = g.Cell(i, side-1-k)
			g.byColumn[i][k] = g.Cell(k, i)
			g.byReversedColumn[i][k] = g.Cell(side-1-k, i)
		}
	}

	return g, nil
}

// Side returns the board dimension.
func (g *Grid) Side() int {
	return g.side
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// Cell returns the cell at (row, col), or nil when out of range.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= g.side || col < 0 || col >= g.side {
		return nil
	}
	return g.cells[row*g.side+col]
}

// Grouping returns the precomputed grouping for a direction: up uses
// columns, down reversed columns, left rows, right reversed rows.
func (g *Grid) Grouping(dir Direction) [][]*Cell {
	switch dir {
	case DirUp:
		return g.byColumn
	case DirDown:
		return g.byReversedColumn
	case DirLeft:
		return g.byRow
	case DirRight:
		return g.byReversedRow
	default:
		return nil
	}
}

// EmptyCells returns all cells with no linked tile.
func (g *Grid) EmptyCells() []*Cell {
	var empty []*Cell
	for _, c := range g.cells {
		if c.IsEmpty() {
			empty = append(empty, c)
		}
	}
	return empty
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// RandomEmptyCell picks uniformly among empty cells.
func (g *Grid) RandomEmptyCell(rng *rand.Rand) (*Cell, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return nil, ErrNoEmptyCell
	}
	return empty[rng.Intn(len(empty))], nil
}

// Values returns the linked tile values as a row-major matrix; 0 is empty.
func (g *Grid) Values() [][]int {
	vals := make([][]int, g.side)
	for row := range g.side {
		vals[row] = make([]int, g.side)
		for col := range g.side {
			if t := g.Cell(row, col).Tile(); t != nil {
				vals[row][col] = t.Value()
			}
		}
	}
	return vals
}

// Tiles returns the linked tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	var tiles []*Tile
	for _, c := range g.cells {
		if c.tile != nil {
			tiles = append(tiles, c.tile)
		}
	}
	return tiles
}

// TileCount returns the number of linked tiles.
func (g *Grid) TileCount() int {
	return g.Size() - g.EmptyCount()
}

// Sum returns the total of all linked tile values.
func (g *Grid) Sum() int {
	total := 0
	for _, t := range g.Tiles() {
		total += t.Value()
	}
	return total
}

// MaxValue returns the highest tile value, or 0 on an empty board.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for _, t := range g.Tiles() {
		maxVal = max(maxVal, t.Value())
	}
	return maxVal
}
