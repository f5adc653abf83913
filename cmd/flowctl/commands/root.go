// Package commands implements the flowctl CLI: a thin view layer driving the
// counter store through dispatch and reading it back through selectors and
// the journal.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/statekit/flow/journal"
	"github.com/statekit/flow/observability"
)

var (
	backend     string
	journalPath string
	verbose     bool

	jrnl     journal.Journal
	observer observability.Observer
)

type envConfig struct {
	Journal  journal.Config
	Observer string `env:"FLOW_OBSERVER"`
	Verbose  bool   `env:"FLOW_VERBOSE"`
}

// Execute runs the flowctl root command.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:          "flowctl",
		Short:        "Unidirectional counter state container",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := envConfig{Journal: journal.DefaultConfig(), Observer: "slog"}
			cfg.Journal.Backend = journal.BackendSQLite
			if err := env.Parse(&cfg); err != nil {
				return fmt.Errorf("parse env: %w", err)
			}

			if cmd.Flags().Changed("backend") {
				cfg.Journal.Backend = backend
			}
			if cmd.Flags().Changed("journal") {
				cfg.Journal.Path = journalPath
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}

			if cfg.Journal.Backend == journal.BackendSQLite && cfg.Journal.Path == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				if err := os.MkdirAll(filepath.Join(dir, ".flow"), 0o700); err != nil {
					return err
				}
				cfg.Journal.Path = filepath.Join(dir, ".flow", "journal.db")
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

			var err error
			observer, err = observability.GetObserver(cfg.Observer)
			if err != nil {
				return err
			}

			jrnl, err = journal.New(&cfg.Journal)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if jrnl == nil {
				return nil
			}
			return jrnl.Close()
		},
	}

	root.PersistentFlags().StringVar(&backend, "backend", journal.BackendSQLite, "journal backend (memory or sqlite)")
	root.PersistentFlags().StringVar(&journalPath, "journal", "", "journal database path (default ~/.flow/journal.db)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every store event to stderr")

	root.AddCommand(incCmd(), decCmd(), getCmd(), logCmd(), demoCmd())
	return root.ExecuteContext(ctx)
}
