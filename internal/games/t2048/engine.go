package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four playable directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps a direction name to a Direction, DirNone if unknown.
func ParseDirection(s string) Direction {
	for _, d := range Directions {
		if d.String() == s {
			return d
		}
	}
	return DirNone
}

// ParseMoves parses a list of direction names separated by commas or
// spaces, e.g. "up,left left,down".
func ParseMoves(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	moves := make([]Direction, 0, len(fields))
	for i, f := range fields {
		d := ParseDirection(strings.ToLower(f))
		if d == DirNone {
			return nil, fmt.Errorf("move %d %q: %w", i+1, f, ErrInvalidDirection)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// MoveResult summarises a settled move.
type MoveResult struct {
	Direction   Direction
	Moved       int // tiles that changed cell
	Merges      int // merges applied
	ScoreGained int // sum of the merged values
}

// Engine slides and merges tiles on a grid.
type Engine struct {
	grid *Grid
}

// NewEngine creates an engine operating on g.
func NewEngine(g *Grid) *Engine {
	return &Engine{grid: g}
}

// Grid returns the grid the engine operates on.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// CanMove reports whether any tile could slide or merge in dir. It uses the
// same CanAccept rule as Slide and never mutates the grid.
func (e *Engine) CanMove(dir Direction) bool {
	for _, group := range e.grid.Grouping(dir) {
		if canMoveInGroup(group) {
			return true
		}
	}
	return false
}

// CanMoveAny reports whether at least one direction is playable.
func (e *Engine) CanMoveAny() bool {
	for _, d := range Directions {
		if e.CanMove(d) {
			return true
		}
	}
	return false
}

func canMoveInGroup(group []*Cell) bool {
	for i := 1; i < len(group); i++ {
		if group[i].IsEmpty() {
			continue
		}
		if group[i-1].CanAccept(group[i].Tile()) {
			return true
		}
	}
	return false
}

// Slide starts a move: every tile that can travel is relinked to its target
// cell and its animation started. Merges stay pending until the returned
// Move is settled. The grid is untouched when an error is returned.
func (e *Engine) Slide(dir Direction) (*Move, error) {
	groups := e.grid.Grouping(dir)
	if groups == nil {
		return nil, ErrInvalidDirection
	}
	if !e.CanMove(dir) {
		return nil, ErrIllegalMove
	}

	m := &Move{grid: e.grid, dir: dir}
	for _, group := range groups {
		m.moved += slideGroup(group, &m.join)
	}
	return m, nil
}

// Move runs a full move: slide, wait for every slide animation, then apply
// the merges.
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	m, err := e.Slide(dir)
	if err != nil {
		return MoveResult{Direction: dir}, err
	}
	m.Wait()
	return m.Settle()
}

// slideGroup moves each tile toward index 0 as far as the cells in front of
// it accept it. The scan stops at the first cell that refuses, so a tile
// never passes a blocker. Each tile is considered once per move.
func slideGroup(group []*Cell, join *Join) int {
	moved := 0
	for i := 1; i < len(group); i++ {
		src := group[i]
		if src.IsEmpty() {
			continue
		}
		tile := src.Tile()

		var target *Cell
		for j := i - 1; j >= 0 && group[j].CanAccept(tile); j-- {
			target = group[j]
		}
		if target == nil {
			continue
		}

		var sig *Signal
		if target.IsEmpty() {
			sig = target.LinkTile(tile)
		} else {
			sig = target.LinkTileForMerge(tile)
		}
		src.UnlinkTile()

		*join = append(*join, sig)
		moved++
	}
	return moved
}

// Move is a move whose slides have started. Merges are applied by Settle
// once every slide animation has finished.
type Move struct {
	grid    *Grid
	dir     Direction
	join    Join
	moved   int
	settled bool
	result  MoveResult
}

// Direction returns the move's direction.
func (m *Move) Direction() Direction {
	return m.dir
}

// Ready reports whether all slide animations have finished.
func (m *Move) Ready() bool {
	return m.join.Ready()
}

// Pending returns the number of slide animations still running.
func (m *Move) Pending() int {
	return m.join.Pending()
}

// Wait blocks until all slide animations have finished.
func (m *Move) Wait() {
	m.join.Wait()
}

// Settle applies every pending merge. It fails with ErrMoveInFlight while
// any slide animation is still running. Settling twice returns the first
// result without touching the grid.
func (m *Move) Settle() (MoveResult, error) {
	if m.settled {
		return m.result, nil
	}
	if !m.Ready() {
		return MoveResult{Direction: m.dir}, ErrMoveInFlight
	}

	res := MoveResult{Direction: m.dir, Moved: m.moved}
	for _, c := range m.grid.Cells() {
		if c.HasTileForMerge() {
			res.ScoreGained += c.MergeTiles()
			res.Merges++
		}
	}

	m.settled = true
	m.result = res
	return res, nil
}
