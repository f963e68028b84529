// Package cmd defines the plutonium command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "plutonium",
	Short: "Multi-ecosystem dependency version reporter",
	Long: `Plutonium inventories the dependencies declared by your projects and
compares them against the latest versions published in each ecosystem's
public registry, producing a single Markdown report.

Supported environments: Node.js (package.json), Python (requirements.txt),
Ruby (Gemfile), Maven (pom.xml) and Go (go.mod). Directories may be local
paths or remote git URLs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "",
		"Also write logs to the given file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

// setupLogging configures logrus output, level and format from the global
// flags. When a log file is configured, logs go to both console and file.
func setupLogging() error {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", logFile, err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, file))
	}

	return nil
}
