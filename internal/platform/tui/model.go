package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

// maxQueuedKeys bounds the keys buffered between ticks; extra keys are dropped.
const maxQueuedKeys = 8

// Resizer is implemented by games that follow terminal resizes without a
// reset.
type Resizer interface {
	Resize(w, h int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	queue     []core.Action // Keys waiting for a tick, consumed one per tick
	frame     string        // Last rendered playfield
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// cfg.ScreenW and cfg.ScreenH give the playfield, excluding the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.redraw()
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	if len(m.queue) < maxQueuedKeys {
		m.queue = append(m.queue, action)
	}
	return m, nil
}

// handleResize resizes the screen buffer. Games that implement Resizer
// follow the new size; the others keep the playfield they started with.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := core.Max(msg.Height-1, 1) // Leave the help line
	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, h)
	}
	m.redraw()
	return m, nil
}

// handleTick runs one simulation step with at most one queued action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.NewInputFrame()
	if len(m.queue) > 0 {
		in.Set(m.queue[0])
		m.queue = m.queue[1:]
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.logEvents(result.Events)

	if result.Redraw {
		m.redraw()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventPlatformRecycled, core.EventLanded:
			m.logger.Debug("game event", "game", m.game.ID(), "event", e.Type, "value", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "score", e.Value)
		default:
			m.logger.Info("game event", "game", m.game.ID(), "event", e.Type, "value", e.Value)
		}
	}
}

// redraw renders the game into the cached frame.
func (m *Model) redraw() {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
