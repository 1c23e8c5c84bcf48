package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riverwood/internal/config"
	"github.com/vovakirdan/riverwood/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Riverwood SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH user gets their own world, saved in the slot "ssh-<user>" of the
configured backend. A user can have one open session at a time.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise the config value, or ~/.riverwood/host_key (generated if missing)

Examples:
  riverwood serve                           # Listen on the configured address
  riverwood serve --ssh :2222               # Listen on port 2222
  riverwood serve --host-key ./my_host_key  # Use specific host key
  riverwood serve --backend leveldb --db ./worlds.ldb

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "riverwood-ssh")
	if err != nil {
		return err
	}

	sc := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.Server.IdleTimeout,
		TickRate:    cfg.Simulation.TickRate,
		Seed:        cfg.World.Seed,
		Options:     cfg.SimOptions(),
	}
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}
	if sc.HostKeyPath == "" {
		sc.HostKeyPath = config.HomeFile("host_key")
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	}

	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open saves: %w", err)
	}
	defer closeBackend(backend, logger)

	server, err := tui.NewSSHServer(sc, backend, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Riverwood SSH server on %s\n", sc.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(sc.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
