// Package main provides the legaldoc CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/legaldoc/internal/config"
	"github.com/jonathan/legaldoc/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string

	// Set by the root command's pre-run hook.
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "legaldoc",
	Short: "Render and correct structured legal documents",
	Long: "legaldoc renders structured legal documents (demands, exception responses, dispatch resolutions, withdrawals) " +
		"with their analysis annotations to screen HTML, print HTML, LaTeX and PDF, and serves the same over HTTP.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON, YAML or TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print document and analysis summaries")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (console, json); overrides config")
}

// loadRuntime loads configuration and builds the logger before any subcommand runs.
func loadRuntime(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if logFormat != "" {
		loaded.Logging.Format = logFormat
	}

	l, err := logging.New(loaded.Logging.Level, loaded.Logging.Format)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", configPath),
	)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
