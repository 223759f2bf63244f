package tui

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/snakescript/snakescript/internal/config"
	"github.com/snakescript/snakescript/internal/engine"
	"github.com/snakescript/snakescript/internal/game"
	"github.com/snakescript/snakescript/internal/script"
	"github.com/snakescript/snakescript/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is auto-generated at ~/.snakescript/host_key.
	HostKeyPath string

	// DBPath is the path to the agents/scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Sim holds the simulation settings applied to every session.
	Sim config.Config
}

// SSHServerConfigFrom derives a server config from the application config.
func SSHServerConfigFrom(cfg config.Config) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		DBPath:      cfg.Storage.DB,
		IdleTimeout: cfg.IdleTimeout(),
		Sim:         cfg,
	}
}

// SSHServer wraps a Wish SSH server that runs a simulation per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakescript-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snakescript", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
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

	model := NewSessionModel(s.store, s.config.Sim, s.logger, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: agent menu -> game -> menu.
// Each session gets its own engine and interpreter, so scripts from one
// session cannot touch another.
type SessionModel struct {
	store  *storage.Store
	cfg    config.Config
	logger *log.Logger
	width  int
	height int

	menu      MenuModel
	gameModel *Model
	host      *script.Host
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model showing the agent picker.
func NewSessionModel(store *storage.Store, cfg config.Config, logger *log.Logger, width, height int) SessionModel {
	return SessionModel{
		store:  store,
		cfg:    cfg,
		logger: logger,
		width:  width,
		height: height,
		menu:   NewMenuModel(store, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while in the agent picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(*selected)
	}

	return m, cmd
}

// startGame builds a fresh engine for the chosen agent and switches views.
func (m SessionModel) startGame(item agentItem) (tea.Model, tea.Cmd) {
	m.host = script.New(script.Options{
		Logger:       m.logger,
		ThinkTimeout: m.cfg.ThinkTimeout(),
	})
	m.host.Load(item.code)

	eng := engine.New(engine.Options{
		Game: game.New(game.Config{
			GridSize:      m.cfg.Grid.Size,
			GameOverDelay: m.cfg.GameOverDelay(),
			Seed:          time.Now().UnixNano(),
		}),
		Host:         m.host,
		TickInterval: m.cfg.TickInterval(),
		Logger:       m.logger,
	})

	gm := NewModel(eng, m.store, item.name)
	m.gameModel = &gm
	m.inGame = true

	return m, m.gameModel.Init()
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.closeHost()
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.store, m.width, m.height)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.closeHost()
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *SessionModel) closeHost() {
	if m.host != nil {
		m.host.Close()
		m.host = nil
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}
