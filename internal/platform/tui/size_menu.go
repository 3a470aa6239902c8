package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// SizeKeyMap defines the key bindings for the board-size picker.
type SizeKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SizeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SizeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Select}, {k.Back, k.Quit}}
}

// DefaultSizeKeyMap returns default key bindings.
func DefaultSizeKeyMap() SizeKeyMap {
	return SizeKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k", "h", "w", "a"),
			key.WithHelp("←/↑", "smaller"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j", "l", "s", "d"),
			key.WithHelp("→/↓", "larger"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SizeModel lets users choose the board side for 2048.
type SizeModel struct {
	side     int
	width    int
	height   int
	keys     SizeKeyMap
	help     help.Model
	chosen   bool
	quitting bool
	back     bool
}

// NewSizeModel creates a picker starting at the classic 4x4 board.
func NewSizeModel(width, height int) SizeModel {
	h := help.New()
	h.Width = width
	return SizeModel{
		side:   4,
		width:  width,
		height: height,
		keys:   DefaultSizeKeyMap(),
		help:   h,
	}
}

// Init initializes the model.
func (m SizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.side = core.Clamp(m.side-1, t2048.MinSide, t2048.MaxSide)
		case key.Matches(msg, m.keys.Next):
			m.side = core.Clamp(m.side+1, t2048.MinSide, t2048.MaxSide)
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the picker with a preview of the empty board.
func (m SizeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	var sizes []string
	for side := t2048.MinSide; side <= t2048.MaxSide; side++ {
		label := fmt.Sprintf("%dx%d", side, side)
		if side == m.side {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		sizes = append(sizes, label)
	}
	b.WriteString(centerText(strings.Join(sizes, "  "), m.width))
	b.WriteString("\n\n")

	row := strings.TrimSpace(strings.Repeat(". ", m.side))
	for range m.side {
		b.WriteString(centerText(row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Side returns the highlighted board side.
func (m SizeModel) Side() int {
	return m.side
}

// GameID returns the registry ID for the chosen board, or "" when the
// picker was left without choosing.
func (m SizeModel) GameID() string {
	if !m.chosen {
		return ""
	}
	return t2048.IDForSide(m.side)
}

// IsQuitting returns true if user wants to quit.
func (m SizeModel) IsQuitting() bool {
	return m.quitting
}

// RunSizePicker runs the board-size picker. It returns the chosen game ID,
// or "" when the user went back or quit.
func RunSizePicker(cfg core.RuntimeConfig) (gameID string, quit bool, err error) {
	p := tea.NewProgram(
		NewSizeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(SizeModel)
	if !ok {
		return "", true, nil
	}
	return m.GameID(), m.IsQuitting(), nil
}
