// Package main provides the enumkit binary entry point.
// Enumkit inspects the enum vocabularies registered in the default
// catalog: closed, ordered sets of named constant values.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	// Register vocabularies via init()
	_ "github.com/c360studio/enumkit/vocabulary/pages"
	_ "github.com/c360studio/enumkit/vocabulary/users"

	"github.com/spf13/cobra"

	"github.com/c360studio/enumkit/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "enumkit"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// settings holds the resolved per-invocation options shared by the
// subcommands.
type settings struct {
	cfg    *config.Config
	format config.Format
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		logLevel   string
	)
	s := &settings{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect enum vocabularies",
		Long: `Enumkit inspects the registered enum vocabularies: closed, ordered
sets of named constant values.

It provides:
- Listing of all registered vocabularies
- Ordered rendering of a vocabulary as a table, JSON, or YAML
- Membership tests against a vocabulary's declared values`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			s.cfg = cfg

			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			configureLogging(logLevel)

			// The flag wins over the config file only when set explicitly.
			if cmd.Flags().Changed("format") {
				s.format = config.Format(format)
			} else {
				s.format = config.Format(cfg.Output.Format)
			}
			if !config.Formats.IsValue(s.format) {
				return fmt.Errorf("unknown format %q, want one of %s", s.format, config.Formats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (table, json, yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newListCmd(s))
	cmd.AddCommand(newShowCmd(s))
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig loads an explicit config file, or falls back to the layered
// loader when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewLoader(slog.Default()).Load()
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
