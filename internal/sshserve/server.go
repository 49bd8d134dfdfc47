// Package sshserve serves the terminal portfolio over SSH with wish.
package sshserve

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/tui"
)

// Server wires config, middleware and the wish server as a testable unit.
type Server struct {
	cfg    config.Config
	server *ssh.Server
}

// New builds the SSH server. Middleware runs outermost first: rate limit,
// session cap, logging, terminal check, then the bubbletea program.
func New(cfg config.Config, handler bm.Handler) (*Server, error) {
	s, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddr()),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithIdleTimeout(cfg.SSHIdleTimeout),
		wish.WithMiddleware(
			bm.Middleware(handler),
			activeterm.Middleware(),
			logging.Middleware(),
			MaxSessionsMiddleware(cfg.SSHMaxSessions),
			RateLimitMiddleware(cfg.SSHRateLimit, cfg.SSHRateBurst),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, server: s}, nil
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Run listens until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	log.Printf("level=info event=ssh_listen addr=%s host_key_path=%s idle_timeout=%s max_sessions=%d",
		s.server.Addr, s.cfg.SSHHostKeyPath, s.cfg.SSHIdleTimeout, s.cfg.SSHMaxSessions)
	err := s.server.ListenAndServe()
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// TeaHandler starts one portfolio model per session, styled for the
// session's terminal.
func TeaHandler(newModel func(opts tui.Options) tui.Model) bm.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		opts := tui.Options{Renderer: bm.MakeRenderer(sess)}
		if pty, _, ok := sess.Pty(); ok {
			opts.Width = pty.Window.Width
			opts.Height = pty.Window.Height
		}
		return newModel(opts), []tea.ProgramOption{tea.WithAltScreen()}
	}
}
