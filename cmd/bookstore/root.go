package main

import (
	"fmt"
	"log/slog"

	"github.com/JonMunkholm/bookstore/internal/catalog"
	"github.com/JonMunkholm/bookstore/internal/config"
	"github.com/JonMunkholm/bookstore/internal/console"
	"github.com/JonMunkholm/bookstore/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions holds flag values. Flags override environment configuration
// only when explicitly set.
type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string
	strict    bool
	noPause   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Manage an in-memory book catalog from a text menu",
		Long: `bookstore is an interactive book catalog. Books can be added, removed,
looked up by title, listed by title, author or year, and filtered by price.
Nothing is saved: the catalog lives only as long as the session.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "environment file loaded before configuration")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")
	flags.BoolVar(&opts.strict, "strict", false, "reject books with an empty title or negative price (overrides CATALOG_STRICT)")
	flags.BoolVar(&opts.noPause, "no-pause", false, "do not wait for Enter after each action")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	// Overload lets the env file win over variables already set in the shell.
	envErr := godotenv.Overload(opts.envFile)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, logging.Output(cfg.Logging.Output))

	if envErr != nil {
		slog.Debug("no env file loaded, using environment variables", "path", opts.envFile)
	} else {
		slog.Debug("loaded env file", "path", opts.envFile)
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	cat := catalog.New(catalog.Options{Strict: cfg.Catalog.Strict})
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cat, cfg.Console)

	return con.Run(cmd.Context())
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
	if flags.Changed("strict") {
		cfg.Catalog.Strict = opts.strict
	}
	if flags.Changed("no-pause") {
		cfg.Console.Pause = !opts.noPause
	}
}
