package t2048

// CellState is the tagged state of a cell.
type CellState int

const (
	CellEmpty        CellState = iota // no tile
	CellOccupied                      // one linked tile
	CellPendingMerge                  // linked tile plus an incoming tile waiting to merge
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellPendingMerge:
		return "pending-merge"
	default:
		return "unknown"
	}
}

// Cell is one grid slot. It owns zero or one tile, or two tiles strictly
// between a slide that decided a merge and the merge being applied.
type Cell struct {
	pos     Position
	tile    *Tile
	merging *Tile // non-nil only while a merge is pending; implies tile != nil
}

// Position returns the cell's fixed position.
func (c *Cell) Position() Position {
	return c.pos
}

// Tile returns the linked tile, or nil.
func (c *Cell) Tile() *Tile {
	return c.tile
}

// TileForMerge returns the incoming tile waiting to merge, or nil.
func (c *Cell) TileForMerge() *Tile {
	return c.merging
}

// State returns the cell's current state.
func (c *Cell) State() CellState {
	switch {
	case c.tile == nil:
		return CellEmpty
	case c.merging != nil:
		return CellPendingMerge
	default:
		return CellOccupied
	}
}

// IsEmpty reports whether no tile is linked.
func (c *Cell) IsEmpty() bool {
	return c.tile == nil
}

// LinkTile makes t this cell's tile, clearing the merge slot, and moves t
// here. The returned signal resolves when t arrives.
func (c *Cell) LinkTile(t *Tile) *Signal {
	c.tile = t
	c.merging = nil
	return t.MoveTo(c.pos)
}

// LinkTileForMerge parks t in the merge slot and moves it here.
func (c *Cell) LinkTileForMerge(t *Tile) *Signal {
	c.merging = t
	return t.MoveTo(c.pos)
}

// UnlinkTile releases the linked tile without destroying it; ownership
// passes to whichever cell links it next.
func (c *Cell) UnlinkTile() {
	c.tile = nil
}

// CanAccept reports whether t may slide into this cell: the cell is empty,
// or holds an equal-valued tile with no merge already pending. A pending
// merge blocks a third tile, so one step never combines more than two.
func (c *Cell) CanAccept(t *Tile) bool {
	if c.IsEmpty() {
		return true
	}
	return c.merging == nil && c.tile.value == t.value
}

// HasTileForMerge reports whether a merge is pending.
func (c *Cell) HasTileForMerge() bool {
	return c.merging != nil
}

// MergeTiles applies the pending merge: the linked tile doubles, the incoming
// tile is destroyed and the slot cleared. Returns the new value, which is
// the score increment. Panics when no merge is pending.
func (c *Cell) MergeTiles() int {
	if c.merging == nil {
		panic("t2048: MergeTiles on cell " + c.pos.String() + " without a pending merge")
	}
	c.tile.CompleteMerge(c.merging.value)
	c.merging.discard()
	c.merging = nil
	return c.tile.value
}
