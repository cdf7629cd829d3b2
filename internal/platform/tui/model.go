package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	"github.com/vovakirdan/tui-sand/internal/sandbox"
	"github.com/vovakirdan/tui-sand/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one sandbox.
type Model struct {
	session  *sandbox.Session
	cfg      config.Config
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	keys     SandboxKeyMap
	help     help.Model
	input    core.InputFrame
	user     string // recorded with the run, empty for local play
	embedded bool   // running under a menu, esc/b goes back
	quitting bool
	back     bool
	saved    bool
}

// NewModel creates a new Bubble Tea model for the scene in cfg.Grid.Scene.
// store may be nil to disable run history.
func NewModel(cfg config.Config, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = cfg.Sim.Seed
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.TickRate = cfg.Sim.TickRate

	w, h := sandbox.ScreenSize(cfg.Grid.Size)
	return Model{
		session: sandbox.New(cfg, logger),
		cfg:     cfg,
		screen:  core.NewScreen(w, h),
		store:   store,
		logger:  logger,
		runtime: rc,
		keys:    DefaultSandboxKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
	}
}

// WithUser records runs under the given user name.
func (m Model) WithUser(user string) Model {
	m.user = user
	return m
}

// Embedded marks the model as running under a scene menu.
func (m Model) Embedded() Model {
	m.embedded = true
	return m
}

// Init initializes the model and starts the session.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.runtime)
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case m.embedded && key.Matches(msg, m.keys.Back):
		m.finish()
		m.back = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse tracks the held button. A held button paints every tick.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.input.SetPointer(msg.X, msg.Y, core.PointerPrimary)
		case tea.MouseButtonRight:
			m.input.SetPointer(msg.X, msg.Y, core.PointerSecondary)
		}
	case tea.MouseActionRelease:
		m.input.SetPointer(0, 0, core.PointerNone)
	}
	return m
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	result := m.session.Step(m.input)
	m.input.Clear()

	if result.State.Stopped {
		m.finish()
		if err := m.session.Err(); err != nil {
			m.logger.Error("sandbox stopped", "scene", m.session.Scene(), "error", err)
		}
		if m.embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.cfg.TickInterval())
}

// finish saves the run once.
func (m *Model) finish() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	run := m.session.Summary()
	run.User = m.user
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".sand", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Scene(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session exposes the running sandbox.
func (m Model) Session() *sandbox.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the scene menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a single scene.
func Run(cfg config.Config, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) error {
	model := NewModel(cfg, store, logger, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report drags for painting
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.session.Err() != nil {
		return fm.session.Err()
	}
	return nil
}
