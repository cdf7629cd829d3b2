package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	"github.com/vovakirdan/tui-sand/internal/sandbox"
	"github.com/vovakirdan/tui-sand/internal/storage"
)

// SSHServer wraps a Wish SSH server that hands every connection its own sandbox.
type SSHServer struct {
	cfg    config.Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server from the ssh and storage sections of cfg.
// A nil logger writes timestamped output to stderr.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sand-ssh",
		})
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := config.ExpandHome(cfg.SSH.HostKey)
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".sand", "ssh_host_ed25519")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.SSH.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.SSH.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rc := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.Sim.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.cfg, s.store, logger, rc, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the server until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.SSH.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
			s.closeStore()
			return fmt.Errorf("ssh: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.SSH.Address
}

// FitGridSize shrinks size so the grid, HUD and help line fit a w x h terminal.
// Non-positive dimensions leave size unchanged.
func FitGridSize(size, w, h int) int {
	if w <= 0 || h <= 0 {
		return size
	}
	fit := min(size, w/sandbox.CellWidth, h-sandbox.HUDRows-1)
	return max(fit, 1)
}

// SessionModel manages the full SSH flow: menu -> sandbox or runs -> menu.
type SessionModel struct {
	cfg      config.Config
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	username string
	menu     MenuModel
	sandbox  *Model
	runs     *RunsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg config.Config, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig, username string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		runtime:  rc,
		username: username,
		menu:     NewMenuModel(store, rc.ScreenW, rc.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch {
	case m.sandbox != nil:
		return m.updateSandbox(msg)
	case m.runs != nil:
		return m.updateRuns(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRuns():
		runs := NewRunsModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.runs = &runs
		return m, nil

	case m.menu.Selected() != nil:
		cfg := m.cfg
		cfg.Grid.Scene = m.menu.Selected().SceneID
		cfg.Grid.Size = FitGridSize(cfg.Grid.Size, m.runtime.ScreenW, m.runtime.ScreenH)

		model := NewModel(cfg, m.store, m.logger, m.runtime).WithUser(m.username).Embedded()
		m.sandbox = &model
		m.logger.Info("scene started", "scene", cfg.Grid.Scene, "size", cfg.Grid.Size)
		return m, m.sandbox.Init()
	}

	return m, cmd
}

// updateSandbox handles updates while a scene is running.
func (m SessionModel) updateSandbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sandbox.Update(msg)
	if model, ok := newModel.(Model); ok {
		m.sandbox = &model
	}

	if m.sandbox.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.sandbox.BackToMenu() {
		m.sandbox = nil
		m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRuns handles updates while the run history is shown.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runs, ok := newModel.(RunsModel); ok {
		m.runs = &runs
	}

	if m.runs.IsGoingBack() {
		m.runs = nil
		m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}
	if m.runs.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.sandbox != nil:
		return m.sandbox.View()
	case m.runs != nil:
		return m.runs.View()
	}
	return m.menu.View()
}
