package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// footerHeight is the number of rows reserved below the playfield for help.
const footerHeight = 1

// Reconfigurable is implemented by games that accept a new tuning at runtime.
type Reconfigurable interface {
	SetConfig(cfg config.FlappyConfig)
}

// Options configures the terminal frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Width   int             // Initial terminal width
	Height  int             // Initial terminal height
	Watcher *config.Watcher // Optional; enables hot reload
	Logger  *log.Logger     // Optional; discards when nil
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	canvas     *core.ScreenCanvas
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	watcher    *config.Watcher
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Width, opts.Height-footerHeight)
	worldW, worldH := game.Bounds()

	return Model{
		game:       game,
		screen:     screen,
		canvas:     core.NewScreenCanvas(screen, worldW, worldH),
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		watcher:    opts.Watcher,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
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

	case configReloadedMsg:
		return m.handleReload(msg)

	case configErrorMsg:
		m.logger.Error("config reload failed", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey folds key presses into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer. World coordinates are scaled onto
// whatever size the terminal has, so the run is not interrupted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleReload applies a config delivered by the watcher.
func (m Model) handleReload(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	if g, ok := m.game.(Reconfigurable); ok {
		g.SetConfig(msg.cfg)
		worldW, worldH := m.game.Bounds()
		m.canvas = core.NewScreenCanvas(m.screen, worldW, worldH)
		m.logger.Info("config reloaded", "path", m.watchedPath())
	} else {
		m.logger.Warn("game does not support config reload", "game", m.game.ID())
	}
	return m, waitForConfig(m.watcher)
}

// watchedPath returns the hot-reload source for log lines.
func (m Model) watchedPath() string {
	if m.watcher == nil {
		return ""
	}
	return m.watcher.Path()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
