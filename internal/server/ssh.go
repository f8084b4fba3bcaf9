// Package server provides SSH serving for the nullplayer shell.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/ad-repo/nullplayer-sub002/internal/app"
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/input"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start runs the SSH server until ctx is cancelled. Every connection gets its
// own player shell; sessions are ephemeral and nothing is shared between
// connections.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "nullplayer_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("create SSH server: %w", err)
	}

	go func() {
		log.Info("SSH server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Error("SSH server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down SSH server")
	return srv.Shutdown(ctx)
}

// teaHandler builds a fresh player shell for one SSH session.
func teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	_, _, active := sshSession.Pty()
	if !active {
		return nil, nil
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("could not load config for SSH session, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	app.SetInputHandler(input.HandleInput)
	m := app.New(config.NewKeybindRegistry(userConfig))

	return m, nil
}
