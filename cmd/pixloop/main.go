// pixloop runs pixel-framebuffer programs on a fixed poll/input/update/present
// frame loop. The bundled program is a small sketch pad.
//
// Usage:
//
//	pixloop run                 - Open the sketch pad
//	pixloop replay <file>       - Re-run a recording and verify every frame
//	pixloop sessions            - Show recent sessions
//	pixloop keys                - List key names and scancodes
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pixloop, ./configs)
//	--log-level <level> - Override the configured log level
//	--db <path>         - Override the session database path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pixloop/internal/config"
)

var (
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixloop",
	Short: "Pixel framebuffer frame loop",
	Long: `pixloop drives a fixed-resolution pixel surface through a
poll, keyboard, mouse, update, present loop on a desktop window or a
truecolor terminal.

Examples:
  pixloop run
  pixloop run --backend terminal
  pixloop run --record session.pxl
  pixloop replay session.pxl
  pixloop sessions`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig applies the global flags on top of the loaded configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixloop",
		Level:           cfg.Level(),
	})
}
