// notch runs the notch runner widget in the terminal.
//
// Usage:
//
//	notch play      - Run the widget locally
//	notch serve     - Start an SSH server, one widget per connection
//	notch config    - Print the effective runner configuration
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: 60)
//	--seed <value>       - RNG seed for reproducible obstacle sequences
//	--config <path>      - Runner config file (YAML or TOML)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Where play writes logs (default: discard)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notch",
	Short: "Notch Dino - an endless runner living in a notch",
	Long: `Notch Dino is an endless runner hosted in a small island at the top of
your terminal. The island starts compact; open it to play, collapse it to
pause.

Available commands:
  play     - Run the widget locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  notch play
  notch play --seed 42 --config ./fast.yaml
  notch serve --ssh :2222
  notch config > ~/.notch/dino.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default: discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
