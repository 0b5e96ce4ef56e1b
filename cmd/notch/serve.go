package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/platform/tui"
)

// Environment overrides for serve, also read from ./.env.
const (
	envSSHAddr = "NOTCH_SSH_ADDR"
	envHostKey = "NOTCH_HOST_KEY"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the notch SSH server",
	Long: `Start an SSH server where every connection gets its own widget.

All sessions share one high score and one runs table for as long as the
server runs. Nothing is written to disk except the host key.

Settings are taken from flags, then from the environment (NOTCH_SSH_ADDR,
NOTCH_HOST_KEY, optionally loaded from ./.env), then from defaults.

Host key handling:
  - If --host-key (or NOTCH_HOST_KEY) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.notch/host_key

Examples:
  notch serve                           # Listen on :23234 with auto-generated key
  notch serve --ssh :2222               # Listen on port 2222
  notch serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "notch-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Could not read .env", "error", err)
	}

	game, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = setting(cmd, "ssh", flagSSHAddr, envSSHAddr)
	cfg.HostKeyPath = setting(cmd, "host-key", flagHostKey, envHostKey)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	cfg.Game = game

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting notch SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// setting picks an explicitly set flag, then the environment, then the flag default.
func setting(cmd *cobra.Command, flag, value, env string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return value
}
