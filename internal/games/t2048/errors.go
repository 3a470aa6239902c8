package t2048

import "errors"

var (
	// ErrInvalidDirection is returned for input that maps to no direction.
	ErrInvalidDirection = errors.New("t2048: invalid direction")

	// ErrIllegalMove is returned when no tile can move in the requested direction.
	ErrIllegalMove = errors.New("t2048: illegal move")

	// ErrNoEmptyCell is returned when a tile is spawned on a full grid.
	ErrNoEmptyCell = errors.New("t2048: no empty cell")

	// ErrInvalidGridSize is returned for grid sizes that are not positive perfect squares.
	ErrInvalidGridSize = errors.New("t2048: grid size must be a positive perfect square")

	// ErrMoveInFlight is returned when input arrives, or a move is settled,
	// before the current move's animations have finished.
	ErrMoveInFlight = errors.New("t2048: move in flight")

	// ErrGameOver is returned for input that arrives after the game ended.
	ErrGameOver = errors.New("t2048: game over")
)
