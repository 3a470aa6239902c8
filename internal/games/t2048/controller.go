package t2048

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Phase is the controller's position in the move cycle.
type Phase int

const (
	PhaseIdle      Phase = iota // waiting for input
	PhaseSliding                // slide animations running, merges pending
	PhaseFinishing              // game over decided, waiting for the last spawn to appear
	PhaseOver                   // game over reported
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSliding:
		return "sliding"
	case PhaseFinishing:
		return "finishing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Settings configures a controller.
type Settings struct {
	GridSize        int     // total cells, a perfect square
	FourProbability float64 // chance a spawned tile is a 4
	RecordPrefix    string  // record-store key prefix
}

// DefaultSettings returns a 4×4 board with the classic spawn odds.
func DefaultSettings() Settings {
	return Settings{
		GridSize:        16,
		FourProbability: DefaultFourProbability,
		RecordPrefix:    "t2048",
	}
}

// Outcome reports what the controller did on one Advance call.
type Outcome struct {
	Phase     Phase
	Settled   bool       // a move was settled on this call
	Result    MoveResult // the settled move, when Settled
	Spawned   *Tile      // tile spawned after the settled move
	GameOver  bool
	NewRecord bool
	Score     int
	Best      int
}

// Controller is the game loop: it accepts a direction, runs the move,
// spawns a tile and decides whether the game is over. At most one move is
// in flight; input is refused until the current move is fully processed.
type Controller struct {
	settings Settings
	grid     *Grid
	engine   *Engine
	spawner  *Spawner
	score    *Scorekeeper

	phase     Phase
	move      *Move
	finishing *Signal
	newRecord bool
	recordErr error
	moves     int
}

// NewController builds a controller with an empty board. Call Start to
// place the initial tiles.
func NewController(settings Settings, renderer TileRenderer, records core.RecordStore, rng *rand.Rand) (*Controller, error) {
	grid, err := NewGrid(settings.GridSize)
	if err != nil {
		return nil, err
	}

	return &Controller{
		settings: settings,
		grid:     grid,
		engine:   NewEngine(grid),
		spawner:  NewSpawner(rng, settings.FourProbability, renderer),
		score:    NewScorekeeper(records, RecordKey(settings.RecordPrefix, grid.Side())),
	}, nil
}

// Start loads the stored best score and spawns ⌈√gridSize⌉ tiles. A board
// that starts with no legal move goes straight to game over.
func (c *Controller) Start() error {
	c.noteRecordErr(c.score.Load())

	var last *Tile
	for range InitialTileCount(c.grid.Size()) {
		t, err := c.spawner.SpawnInto(c.grid)
		if errors.Is(err, ErrNoEmptyCell) {
			break
		}
		if err != nil {
			return err
		}
		last = t
	}

	c.noteRecordErr(c.score.Sync())
	if !c.engine.CanMoveAny() {
		c.beginFinish(last)
		c.Advance()
	}
	return nil
}

// Grid returns the board.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Engine returns the move engine.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the running score.
func (c *Controller) Score() int {
	return c.score.Score()
}

// Best returns the best score known.
func (c *Controller) Best() int {
	return c.score.Best()
}

// Moves returns the number of settled moves.
func (c *Controller) Moves() int {
	return c.moves
}

// GameOver reports whether the game has ended.
func (c *Controller) GameOver() bool {
	return c.phase == PhaseOver
}

// NewRecord reports whether the finished game set a record.
func (c *Controller) NewRecord() bool {
	return c.newRecord
}

// RecordErr returns and clears the last record-store failure. Record
// persistence is best-effort; play continues regardless.
func (c *Controller) RecordErr() error {
	err := c.recordErr
	c.recordErr = nil
	return err
}

// Accepting reports whether the next direction would be processed.
func (c *Controller) Accepting() bool {
	return c.phase == PhaseIdle
}

// Submit starts a move in dir. Input that arrives while a move is in
// flight, after the game ended, or that cannot move anything is rejected
// and leaves the board unchanged.
func (c *Controller) Submit(dir Direction) error {
	switch c.phase {
	case PhaseIdle:
	case PhaseOver:
		return ErrGameOver
	default:
		return ErrMoveInFlight
	}
	m, err := c.engine.Slide(dir)
	if err != nil {
		return err
	}
	c.move = m
	c.phase = PhaseSliding
	return nil
}

// Advance drives the move cycle as far as finished animations allow:
// settle merges once every slide is done, spawn, check for game over, and
// report the end once the last spawn has appeared. It never blocks.
func (c *Controller) Advance() Outcome {
	out := Outcome{}

	for {
		switch c.phase {
		case PhaseSliding:
			if !c.move.Ready() {
				return c.fill(out)
			}
			out.Settled = true
			out.Result, out.Spawned = c.settle()
			continue

		case PhaseFinishing:
			if !c.finishing.IsResolved() {
				return c.fill(out)
			}
			newRecord, err := c.score.Finish()
			c.noteRecordErr(err)
			c.newRecord = newRecord
			c.phase = PhaseOver
			continue
		}
		return c.fill(out)
	}
}

// Play runs one direction to completion, blocking on animations. Intended
// for headless use where visuals resolve on their own.
func (c *Controller) Play(dir Direction) (Outcome, error) {
	if err := c.Submit(dir); err != nil {
		return c.fill(Outcome{}), err
	}
	c.move.Wait()
	out := c.Advance()
	if c.phase == PhaseFinishing {
		c.finishing.Wait()
		final := c.Advance()
		final.Settled, final.Result, final.Spawned = out.Settled, out.Result, out.Spawned
		out = final
	}
	return out, nil
}

func (c *Controller) settle() (MoveResult, *Tile) {
	res, err := c.move.Settle()
	if err != nil {
		// Ready was checked by the caller.
		panic(err)
	}
	c.move = nil
	c.moves++
	c.score.Add(res.ScoreGained)

	spawned, err := c.spawnAfterMove()
	if err != nil {
		// A full board is not an error here, and SpawnInto has no other failure.
		panic(err)
	}

	if !c.engine.CanMoveAny() {
		c.beginFinish(spawned)
		return res, spawned
	}

	c.noteRecordErr(c.score.Sync())
	c.phase = PhaseIdle
	return res, spawned
}

// spawnAfterMove places the tile that follows a settled move. A full board
// gets no tile and no error.
func (c *Controller) spawnAfterMove() (*Tile, error) {
	t, err := c.spawner.SpawnInto(c.grid)
	if errors.Is(err, ErrNoEmptyCell) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (c *Controller) beginFinish(last *Tile) {
	c.finishing = Resolved()
	if last != nil {
		c.finishing = last.WaitForAnimation()
	}
	c.phase = PhaseFinishing
}

func (c *Controller) fill(out Outcome) Outcome {
	out.Phase = c.phase
	out.GameOver = c.phase == PhaseOver
	out.NewRecord = out.GameOver && c.newRecord
	out.Score = c.score.Score()
	out.Best = c.score.Best()
	return out
}

func (c *Controller) noteRecordErr(err error) {
	if err != nil {
		c.recordErr = err
	}
}
