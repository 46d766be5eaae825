package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/save"
	"github.com/vovakirdan/arcade-sim/internal/scene"
	"github.com/vovakirdan/arcade-sim/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// SavesDir holds one save directory per SSH user. Empty disables saves.
	SavesDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Runtime is the world every session simulates.
	Runtime core.RuntimeConfig

	// Logger receives server and scene logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		SavesDir:    "~/.arcade/saves/ssh",
		IdleTimeout: 30 * time.Minute,
		Runtime:     core.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions sync.Map // session ID -> *scene.App
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		// Sessions still play; they just keep no scores.
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	if cfg.SavesDir != "" {
		if cfg.SavesDir, err = storage.ExpandHome(cfg.SavesDir); err != nil {
			return nil, fmt.Errorf("cannot resolve saves directory: %w", err)
		}
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
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// SanitizeUser turns an SSH user name into a safe directory name.
func SanitizeUser(user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, user)
	if strings.Trim(clean, "_") == "" {
		return "anonymous"
	}
	return clean
}

// newSessionApp builds the scene App for one SSH user. Sessions are headless
// for audio and share the score database under the user's name.
func (s *SSHServer) newSessionApp(user string) *scene.App {
	rt := s.config.Runtime
	if rt.WorldW <= 0 || rt.WorldH <= 0 {
		rt = core.DefaultConfig()
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	var saves *save.Store
	if s.config.SavesDir != "" {
		saves = save.NewStore(filepath.Join(s.config.SavesDir, SanitizeUser(user)))
	}

	ctx := scene.NewContext(rt, core.NopAudio{}, s.logger.With("user", user), saves)
	app := registry.NewApp(ctx)
	if s.store != nil {
		app.SetScoreSink(s.store.ForPlayer(user))
	}
	return app
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	app := s.newSessionApp(sshSession.User())
	s.sessions.Store(sshSession.Context().SessionID(), app)

	opts := Options{
		TickRate: s.config.Runtime.TickRate,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		Embedded: true,
	}
	return NewSessionModel(app, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware logs session events and stops the session's App when
// the connection ends, so a dropped player still gets their score saved.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		user := sshSession.User()
		remote := sshSession.RemoteAddr().String()
		s.logger.Info("session started", "user", user, "remote", remote)

		next(sshSession)

		if app, ok := s.sessions.LoadAndDelete(sshSession.Context().SessionID()); ok {
			app.(*scene.App).Stop()
		}
		s.logger.Info("session ended", "user", user, "remote", remote)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
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

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full arcade session flow: menu -> scene -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	app      *scene.App
	opts     Options
	menu     MenuModel
	play     *Model
	quitting bool
}

// NewSessionModel creates a session over an App that has not been started.
func NewSessionModel(app *scene.App, opts Options) SessionModel {
	opts.Embedded = true
	return SessionModel{
		app:  app,
		opts: opts,
		menu: NewMenuModel(opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	if m.play != nil {
		return m.updatePlay(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stray tick from a scene that was just left.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The scoreboard needs its own program; over SSH tab just reopens the menu.
	if m.menu.WantsScoreboard() {
		m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		if err := m.app.Start(selected.SceneID); err != nil {
			m.app.Context().Log.Warn("cannot start scene", "scene", selected.SceneID, "err", err)
			m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
			return m, nil
		}
		play := NewModel(m.app, m.opts)
		m.play = &play
		return m, play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while a scene runs.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(Model); ok {
		m.play = &play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		m.play = nil
		m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.play != nil {
		return m.play.View()
	}
	return m.menu.View()
}
