// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                - Play (same as "blockfall play")
//	blockfall play           - Play interactively
//	blockfall simulate       - Run headless bot games and rank them
//	blockfall keys           - Show the effective key bindings
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--config <path>      - Use a specific config file
//	--log-level <level>  - Override log.level from the config
//	--log-file <path>    - Override log.file from the config
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
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
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops seven kinds of pieces into a 10x20 well.
Fill rows to clear them; the game speeds up every ten lines.

Available commands:
  play      - Play interactively (default)
  simulate  - Run headless bot games and print a ranking
  keys      - Show the effective key bindings

Examples:
  blockfall
  blockfall play --seed 42
  blockfall simulate --games 20
  blockfall keys --config ./my-keys.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file during play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads the configuration and applies flag overrides.
// It exits the process on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})

	level, err := cfg.LogLevel()
	if err != nil {
		logger.Warn("invalid log level, using info", "error", err)
	}
	logger.SetLevel(level)
	return logger
}
