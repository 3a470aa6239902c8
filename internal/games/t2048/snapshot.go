package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateMoving      GameStateType = "moving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing,
// replay and spectators.
type Snapshot struct {
	GameID    string        `json:"game_id"`
	Tick      uint64        `json:"tick"`
	Side      int           `json:"side"`
	Board     [][]int       `json:"board"`
	Score     int           `json:"score"`
	Best      int           `json:"best"`
	Moves     int           `json:"moves"`
	MaxTile   int           `json:"max_tile"`
	State     GameStateType `json:"state"`
	NewRecord bool          `json:"new_record,omitempty"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{GameID: g.ID(), Tick: g.tick, State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.ctrl.GameOver():
		state = StateGameOver
	case !g.ctrl.Accepting():
		state = StateMoving
	}

	grid := g.ctrl.Grid()
	return Snapshot{
		GameID:    g.ID(),
		Tick:      g.tick,
		Side:      grid.Side(),
		Board:     grid.Values(),
		Score:     g.ctrl.Score(),
		Best:      g.ctrl.Best(),
		Moves:     g.ctrl.Moves(),
		MaxTile:   grid.MaxValue(),
		State:     state,
		NewRecord: g.ctrl.NewRecord(),
	}
}
