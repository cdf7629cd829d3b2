package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sand/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sandbox SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a scene picker menu and its
own world. Runs are stored per-server, so every user shares one history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config (default ~/.sand/ssh_host_ed25519),
    generating it on first start

Examples:
  sand serve                           # Listen on ssh.address from the config
  sand serve --ssh :2222               # Listen on port 2222
  sand serve --host-key ./my_host_key  # Use specific host key
  sand serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides ssh.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides ssh.host_key")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, overrides ssh.idle_timeout")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("sand-ssh"))
	if err != nil {
		return err
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh -p <port> localhost", "address", server.Addr())
	return server.ListenAndServe()
}
