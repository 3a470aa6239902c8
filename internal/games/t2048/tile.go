package t2048

import "fmt"

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// TileVisual is the per-tile visual collaborator. Every animation request
// returns a Signal that resolves when the transition ends.
type TileVisual interface {
	// Spawn draws the tile for the first time.
	Spawn(pos Position, value int) *Signal

	// AnimateTo translates the tile to a new position.
	AnimateTo(pos Position) *Signal

	// AnimateMerge plays the merge pulse for the tile's new value.
	AnimateMerge(value int) *Signal

	// Remove drops the tile from the surface.
	Remove()
}

// TileRenderer creates the visual for each new tile.
type TileRenderer interface {
	NewVisual(id int) TileVisual
}

// Tile is a single numbered entity on the board. A tile is owned by at most
// one cell; it only knows its own position, never its cell.
type Tile struct {
	id     int
	value  int
	pos    Position
	visual TileVisual
	last   *Signal // most recent spawn or merge animation
}

// NewTile creates a tile at pos and asks its visual to draw it.
func NewTile(id, value int, pos Position, visual TileVisual) *Tile {
	t := &Tile{
		id:     id,
		value:  value,
		pos:    pos,
		visual: visual,
	}
	t.last = orResolved(visual.Spawn(pos, value))
	return t
}

// ID returns the tile's identifier, unique within a game.
func (t *Tile) ID() int {
	return t.id
}

// Value returns the tile's number.
func (t *Tile) Value() int {
	return t.value
}

// Position returns where the tile is, or is heading to.
func (t *Tile) Position() Position {
	return t.pos
}

// MoveTo sets the tile's position and requests a translation. Placing a tile
// where it already is starts no animation and returns a resolved signal.
func (t *Tile) MoveTo(pos Position) *Signal {
	if pos == t.pos {
		return Resolved()
	}
	t.pos = pos
	return orResolved(t.visual.AnimateTo(pos))
}

// CompleteMerge absorbs an equal-valued tile, doubling this tile's value,
// and requests the merge pulse.
func (t *Tile) CompleteMerge(otherValue int) *Signal {
	t.value += otherValue
	t.last = orResolved(t.visual.AnimateMerge(t.value))
	return t.last
}

// WaitForAnimation returns the signal of the latest spawn or merge animation.
func (t *Tile) WaitForAnimation() *Signal {
	return t.last
}

func (t *Tile) discard() {
	t.visual.Remove()
}

func orResolved(s *Signal) *Signal {
	if s == nil {
		return Resolved()
	}
	return s
}
