package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/games/riverwood"
	"github.com/vovakirdan/riverwood/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file. Wish generates it if missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Seed is used for users without a save. Zero picks a time-based seed.
	Seed uint64

	// Options are the simulation rules shared by all sessions.
	Options riverwood.Options
}

// SSHServer hosts one Riverwood world per SSH user.
// Each user plays in the slot "ssh-<user>" of the shared backend.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	backend storage.Backend
	logger  *log.Logger

	mu     sync.Mutex
	active map[string]*riverwood.Game // nil until the program starts
}

// NewSSHServer creates a new SSH server backed by the given storage.
// The caller keeps ownership of backend and closes it after Shutdown.
func NewSSHServer(cfg SSHServerConfig, backend storage.Backend, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "riverwood-ssh",
		})
	}
	if cfg.HostKeyPath == "" {
		return nil, errors.New("host key path is required")
	}

	hostKeyPath, err := storage.ExpandPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	srv := &SSHServer{
		config:  cfg,
		backend: backend,
		logger:  logger,
		active:  make(map[string]*riverwood.Game),
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.singleSessionMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// SlotFor returns the save slot used by an SSH user.
func SlotFor(user string) string {
	if user == "" {
		user = "anonymous"
	}
	return "ssh-" + user
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     s.config.Seed,
		Resume:   true,
	}

	slot := SlotFor(sess.User())
	game := riverwood.New(riverwood.NewSlotStorage(s.backend, slot), s.config.Options)
	model := NewModel(game, cfg, slot, s.logger.With("user", sess.User()))

	s.mu.Lock()
	s.active[sess.User()] = game
	s.mu.Unlock()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
}

// singleSessionMiddleware refuses a second concurrent session for the same
// user, since both would write the same slot. When the session ends the world
// is saved, so a dropped connection keeps its progress.
func (s *SSHServer) singleSessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		user := sess.User()

		s.mu.Lock()
		_, busy := s.active[user]
		if !busy {
			s.active[user] = nil
		}
		s.mu.Unlock()

		if busy {
			s.logger.Warn("rejected duplicate session", "user", user)
			wish.Fatalln(sess, "riverwood: this user already has a world open")
			return
		}

		next(sess)

		s.mu.Lock()
		game := s.active[user]
		delete(s.active, user)
		s.mu.Unlock()

		if game == nil || game.State() == nil {
			return
		}
		if err := game.Save(); err != nil {
			s.logger.Error("save on disconnect failed", "user", user, "error", err)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Truncate(time.Second),
		)
	}
}

// ActiveSessions returns the number of users currently playing.
func (s *SSHServer) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	s.logger.Info("shutting down...", "sessions", s.ActiveSessions())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
