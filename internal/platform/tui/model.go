package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/canvas"
)

// Smallest terminal that still shows the brick grid.
const (
	minWidth  = 40
	minHeight = 16
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a running game.
// Key presses are applied to the game immediately; ticks step it.
type Model struct {
	loop   *breakout.Loop
	list   *canvas.DisplayList
	screen *core.Screen
	styles styleCache
	keys   KeyMap
	help   help.Model
	arena  core.Vec

	width    int
	height   int
	last     breakout.StepResult
	quitting bool
}

// NewModel creates a model that drives game through a display list.
// width and height are the initial terminal size.
func NewModel(game *breakout.Game, width, height int, opts ...breakout.LoopOption) Model {
	list := canvas.NewDisplayList()
	arena := game.Config().Arena

	m := Model{
		loop:   breakout.NewLoop(game, list, opts...),
		list:   list,
		styles: styleCache{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		arena:  core.V(arena.Width, arena.Height),
		last:   breakout.StepResult{Phase: game.Phase()},
	}
	m.screen = core.NewScreen(0, 0)
	m.resize(width, height)
	return m
}

// Init presents the opening frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.loop.Draw()
	return tickCmd(m.loop.Delay(breakout.StepResult{}))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.loop.Game().Apply(action)
	return m, nil
}

// handleTick runs one frame. Ticking stops once the game is over so the
// final frame stays on screen until the player quits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.last.Phase.Terminal() {
		return m, nil
	}

	m.last = m.loop.Frame()
	if m.last.Phase.Terminal() {
		return m, nil
	}
	return m, tickCmd(m.loop.Delay(m.last))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	// One line below the arena for help.
	m.screen.Resize(width, max(height-1, 0))
}

// Phase returns the game phase as of the last frame.
func (m Model) Phase() breakout.Phase {
	return m.last.Phase
}

// Score returns the score as of the last frame.
func (m Model) Score() int {
	return m.loop.Game().Score()
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small: %dx%d (need %dx%d)\nPress q to quit.",
			m.width, m.height, minWidth, minHeight)
	}

	Paint(m.screen, m.list.Front(), m.arena)
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the terminal until the player quits and returns the
// phase the game reached.
func Run(game *breakout.Game, width, height int, opts ...breakout.LoopOption) (breakout.Phase, error) {
	p := tea.NewProgram(NewModel(game, width, height, opts...), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.Phase(), err
	}
	if m, ok := final.(Model); ok {
		return m.Phase(), nil
	}
	return game.Phase(), nil
}
