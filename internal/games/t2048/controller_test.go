package t2048

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func newTestController(t *testing.T, gridSize int, renderer TileRenderer, store *memStore) *Controller {
	t.Helper()
	settings := DefaultSettings()
	settings.GridSize = gridSize
	var records core.RecordStore
	if store != nil {
		records = store
	}
	c, err := NewController(settings, renderer, records, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestControllerStart(t *testing.T) {
	c := newTestController(t, 16, nil, newMemStore())
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if got := c.Grid().TileCount(); got != 4 {
		t.Errorf("TileCount() = %d, want 4 on a 4x4 board", got)
	}
	if c.Phase() != PhaseIdle || !c.Accepting() {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
}

func TestControllerInvalidGridSize(t *testing.T) {
	settings := DefaultSettings()
	settings.GridSize = 12
	if _, err := NewController(settings, nil, nil, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("error = %v, want ErrInvalidGridSize", err)
	}
}

// A single-cell board is full after the opening spawn and ends once that
// spawn has appeared.
func TestControllerSingleCellGameOver(t *testing.T) {
	store := newMemStore()
	c := newTestController(t, 1, nil, store)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if !c.GameOver() {
		t.Fatalf("phase = %v, want over", c.Phase())
	}
	if !c.NewRecord() {
		t.Error("first game on an empty store is a record")
	}
	if err := c.Submit(DirLeft); !errors.Is(err, ErrGameOver) {
		t.Errorf("Submit after game over = %v, want ErrGameOver", err)
	}
}

func TestControllerSubmitWhileFinishing(t *testing.T) {
	c := newTestController(t, 1, NewAnimator(0, 0, 3), nil)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if c.Phase() != PhaseFinishing {
		t.Fatalf("phase = %v, want finishing while the spawn animates", c.Phase())
	}
	if err := c.Submit(DirLeft); !errors.Is(err, ErrMoveInFlight) {
		t.Errorf("Submit while finishing = %v, want ErrMoveInFlight", err)
	}
}

func TestControllerSpawnAfterMoveOnFullBoard(t *testing.T) {
	c := newTestController(t, 4, nil, nil)
	g := c.Grid()
	for pos, v := range map[Position]int{{0, 0}: 2, {0, 1}: 4, {1, 0}: 8, {1, 1}: 16} {
		g.Cell(pos.Row, pos.Col).LinkTile(c.spawner.NewTileWithValue(pos, v))
	}

	tile, err := c.spawnAfterMove()
	if err != nil {
		t.Fatalf("spawn on a full board: %v", err)
	}
	if tile != nil {
		t.Fatalf("spawned %d at %v on a full board", tile.Value(), tile.Position())
	}
	if g.TileCount() != 4 {
		t.Errorf("TileCount = %d, want 4", g.TileCount())
	}
	assertValues(t, g, [][]int{{2, 4}, {8, 16}})

	g.Cell(1, 1).UnlinkTile()
	tile, err = c.spawnAfterMove()
	if err != nil {
		t.Fatal(err)
	}
	if tile == nil || tile.Position() != (Position{1, 1}) {
		t.Fatalf("spawn = %v, want a tile in the only empty cell", tile)
	}
}

func TestControllerPlay(t *testing.T) {
	store := newMemStore()
	c := newTestController(t, 16, nil, store)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	played := 0
	for _, dir := range Directions {
		if !c.Engine().CanMove(dir) {
			if _, err := c.Play(dir); !errors.Is(err, ErrIllegalMove) {
				t.Errorf("Play(%v) on a blocked direction = %v, want ErrIllegalMove", dir, err)
			}
			continue
		}
		before := c.Grid().TileCount()
		out, err := c.Play(dir)
		if err != nil {
			t.Fatalf("Play(%v): %v", dir, err)
		}
		played++
		if !out.Settled || out.Spawned == nil {
			t.Fatalf("Play(%v) outcome = %+v, want settled with a spawn", dir, out)
		}
		if got := c.Grid().TileCount(); got != before-out.Result.Merges+1 {
			t.Errorf("tile count %d -> %d with %d merges", before, got, out.Result.Merges)
		}
		break
	}
	if played == 0 {
		t.Fatal("no legal opening move")
	}
	if c.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", c.Moves())
	}
}

func TestControllerOneMoveInFlight(t *testing.T) {
	anim := NewAnimator(3, 2, 0)
	c := newTestController(t, 16, anim, nil)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	dir := firstLegal(t, c)
	if err := c.Submit(dir); err != nil {
		t.Fatal(err)
	}
	if c.Accepting() {
		t.Fatal("controller accepts input while a move is in flight")
	}
	if err := c.Submit(dir); !errors.Is(err, ErrMoveInFlight) {
		t.Errorf("second Submit = %v, want ErrMoveInFlight", err)
	}

	before := c.Grid().Values()
	if out := c.Advance(); out.Settled {
		t.Fatal("move settled before slides finished")
	}

	for range 3 {
		anim.Advance()
	}
	out := c.Advance()
	if !out.Settled {
		t.Fatalf("move not settled after slides finished: %+v", out)
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
	if equalBoards(before, c.Grid().Values()) {
		t.Error("settled move did not change the board")
	}
}

func TestControllerGameOverWaitsForSpawn(t *testing.T) {
	anim := NewAnimator(0, 0, 4)
	store := newMemStore()
	store.values[RecordKey("t2048", 2)] = 1000
	c := newTestController(t, 4, anim, store)

	// 4 4 / 16 32 moved left leaves 8 _ / 16 32; a 2 or a 4 on the freed
	// cell locks the board.
	g := c.Grid()
	for pos, v := range map[Position]int{{0, 0}: 4, {0, 1}: 4, {1, 0}: 16, {1, 1}: 32} {
		g.Cell(pos.Row, pos.Col).LinkTile(c.spawner.NewTileWithValue(pos, v))
	}
	anim.FinishAll()
	if err := c.score.Load(); err != nil {
		t.Fatal(err)
	}

	if err := c.Submit(DirLeft); err != nil {
		t.Fatal(err)
	}
	out := c.Advance()
	if !out.Settled {
		t.Fatal("instant slide should settle at once")
	}
	if c.Phase() != PhaseFinishing {
		t.Fatalf("phase = %v, want finishing", c.Phase())
	}
	if out.GameOver {
		t.Fatal("game over reported before the last spawn appeared")
	}

	for range 4 {
		anim.Advance()
	}
	out = c.Advance()
	if !out.GameOver || out.NewRecord {
		t.Errorf("outcome = %+v, want game over without a record", out)
	}
	if out.Score != 8 {
		t.Errorf("Score = %d, want 8", out.Score)
	}
	if store.values[RecordKey("t2048", 2)] != 1000 {
		t.Error("record must not be overwritten by a lower score")
	}

	// Further advances report the end only once.
	if c.Advance().Phase != PhaseOver {
		t.Error("controller left the over phase")
	}
}

func TestControllerRecordErrorsDoNotStopPlay(t *testing.T) {
	store := newMemStore()
	store.getErr = errStoreDown
	c := newTestController(t, 16, nil, store)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if err := c.RecordErr(); !errors.Is(err, errStoreDown) {
		t.Errorf("RecordErr() = %v, want errStoreDown", err)
	}
	if c.RecordErr() != nil {
		t.Error("RecordErr should clear after being read")
	}
	if _, err := c.Play(firstLegal(t, c)); err != nil {
		t.Fatalf("Play after a store failure: %v", err)
	}
}

func firstLegal(t *testing.T, c *Controller) Direction {
	t.Helper()
	for _, dir := range Directions {
		if c.Engine().CanMove(dir) {
			return dir
		}
	}
	t.Fatal("no legal move")
	return DirNone
}

func equalBoards(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInts(a[i], b[i]) {
			return false
		}
	}
	return true
}
