package t2048

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Board sizes offered as separate games.
const (
	MinSide = 3
	MaxSide = 6
)

// Game implements the 2048 puzzle game on top of a Controller and a
// tick-driven Animator.
type Game struct {
	side int // fixed board side, 0 uses the configured grid size
	rng  *rand.Rand
	tick uint64

	cfg       config.T2048Config
	configErr error
	ctrl      *Controller
	anim      *Animator
	records   core.RecordStore
	observer  Observer

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	over     bool // game over already reported to the observer
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets a custom config file path. Empty means the default search.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a 2048 game using the configured grid size.
func New() *Game {
	return &Game{}
}

// NewWithSide creates a 2048 game on a side×side board regardless of config.
func NewWithSide(side int) *Game {
	return &Game{side: side}
}

// IDForSide returns the registry ID of the game with the given board side.
// Zero selects the configured size.
func IDForSide(side int) string {
	if side == 0 {
		return "2048"
	}
	return fmt.Sprintf("2048_%dx%d", side, side)
}

func init() {
	registry.Register(IDForSide(0), func() registry.Game {
		return New()
	})
	for side := MinSide; side <= MaxSide; side++ {
		registry.Register(IDForSide(side), func() registry.Game {
			return NewWithSide(side)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForSide(g.side)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.side == 0 {
		return "2048"
	}
	return fmt.Sprintf("2048 (%dx%d)", g.side, g.side)
}

// UseRecords sets the store that keeps best scores. Takes effect on the
// next Reset.
func (g *Game) UseRecords(store core.RecordStore) {
	g.records = store
}

// ConfigErr returns the error from the last config load, if any. The game
// falls back to defaults when loading fails.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// RecordErr returns and clears the last record-store failure.
func (g *Game) RecordErr() error {
	if g.ctrl == nil {
		return nil
	}
	return g.ctrl.RecordErr()
}

// Controller returns the underlying controller. Nil before Reset.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.over = false

	g.cfg, g.configErr = g.loadConfig()

	settings := Settings{
		GridSize:        g.cfg.Board.GridSize,
		FourProbability: g.cfg.Spawn.FourProbability,
		RecordPrefix:    g.cfg.Records.KeyPrefix,
	}
	a := g.cfg.Animation
	g.anim = NewAnimator(a.SlideTicks, a.MergeTicks, a.SpawnTicks)

	ctrl, err := NewController(settings, g.anim, g.records, g.rng)
	if err != nil {
		g.configErr = errors.Join(g.configErr, err)
		ctrl, _ = NewController(DefaultSettings(), g.anim, g.records, g.rng)
	}
	g.ctrl = ctrl
	if err := g.ctrl.Start(); err != nil {
		g.configErr = errors.Join(g.configErr, err)
	}

	g.checkScreenSize()
	g.notify()
	g.over = g.ctrl.GameOver()
}

// loadConfig loads the 2048 config with this game's fixed side applied.
func (g *Game) loadConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(configPath)
	if g.side > 0 {
		cfg = cfg.WithSide(g.side)
	}
	return cfg, err
}

// RecordKey returns the record-store key holding this game's best score.
func (g *Game) RecordKey() string {
	cfg, _ := g.loadConfig()
	return RecordKey(cfg.Records.KeyPrefix, cfg.Side())
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	if g.ctrl != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	side := g.ctrl.Grid().Side()
	minW := side*cellWidth + 1 + 2
	minH := side*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.ctrl.GameOver() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.anim.Advance()
	moved := g.advance()

	if dir := directionFor(in); dir != DirNone && g.ctrl.Accepting() {
		// Illegal and in-flight moves are dropped.
		if err := g.ctrl.Submit(dir); err == nil {
			// Zero-length animations settle on the same tick.
			moved = g.advance() || moved
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// advance runs the controller and notifies the observer when the board
// settles or the game ends.
func (g *Game) advance() bool {
	out := g.ctrl.Advance()
	ended := out.GameOver && !g.over
	if ended {
		g.over = true
	}
	if out.Settled || ended {
		g.notify()
	}
	return out.Settled
}

func directionFor(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	}
	return DirNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.ctrl.Score(),
		BestScore: g.ctrl.Best(),
		GameOver:  g.ctrl.GameOver(),
		NewRecord: g.ctrl.NewRecord(),
		Paused:    g.paused || g.tooSmall,
		Busy:      !g.ctrl.Accepting() && !g.ctrl.GameOver(),
	}
}
