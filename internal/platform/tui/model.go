package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows kept below the game for the key help.
const helpHeight = 1

// Options carries the services a game session uses. Every field is optional.
type Options struct {
	Scores   *storage.Store   // finished-game history
	Records  core.RecordStore // best scores
	Logger   *log.Logger
	Observer t2048.Observer // receives a snapshot whenever the board settles
}

// observable is implemented by games that publish board snapshots.
type observable interface {
	SetObserver(t2048.Observer)
}

// reporter is implemented by games that surface non-fatal errors.
type reporter interface {
	ConfigErr() error
	RecordErr() error
}

// snapshotter is implemented by games that expose their full state.
type snapshotter interface {
	Snapshot() t2048.Snapshot
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // left with the back key rather than quit
	scoreSaved bool // Whether score has been saved for current game over

	lastRecordErr error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if ra, ok := game.(registry.RecordAware); ok && opts.Records != nil {
		ra.UseRecords(opts.Records)
	}
	if ob, ok := game.(observable); ok && opts.Observer != nil {
		ob.SetObserver(opts.Observer)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	return Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		opts:       opts,
		logger:     opts.Logger.With("game", game.ID()),
		keyMapper:  NewKeyMapper(),
		help:       h,
		config:     gameCfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logConfigErr()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	// Games without resize support restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.logConfigErr()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logRecordErr()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	if m.gameState.NewRecord {
		m.logger.Info("new record", "score", m.gameState.Score)
	}
	if m.opts.Scores == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{GameID: m.game.ID(), Score: m.gameState.Score}
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		entry.MaxTile = snap.MaxTile
		entry.Moves = snap.Moves
	}
	if _, err := m.opts.Scores.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// logConfigErr reports a config that failed to load; the game runs on
// defaults.
func (m Model) logConfigErr() {
	if r, ok := m.game.(reporter); ok {
		if err := r.ConfigErr(); err != nil {
			m.logger.Warn("using default config", "error", err)
		}
	}
}

// logRecordErr reports a record-store failure once per distinct error.
func (m *Model) logRecordErr() {
	r, ok := m.game.(reporter)
	if !ok {
		return
	}
	err := r.RecordErr()
	if err == nil || err == m.lastRecordErr {
		return
	}
	m.lastRecordErr = err
	m.logger.Warn("best score not persisted", "error", err)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Quit reports whether the player asked to leave entirely rather than go
// back to the menu.
func (m Model) Quit() bool {
	return m.quitting
}

// WentBack reports whether the player left for the menu.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for game. It returns true when the
// player quit, false when they went back.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Quit(), nil
	}
	return true, nil
}
