// Package commands wires the CLI surface. Each command loads the ledger
// fresh from disk, runs the aggregation engine, and renders the result; no
// state is cached between operations.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/buildinfo"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/categories"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/config"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/logger"
)

// rootOptions carries persistent flag values into subcommands.
type rootOptions struct {
	configPath string
	verbose    bool
}

// env is the loaded runtime for one command invocation.
type env struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *ledger.Store
	cats  *categories.Service
}

// load resolves configuration and builds the store. A missing config file
// is not an error: defaults match the original tracker's layout. LEDGER_FILE
// overrides the ledger path for ad-hoc runs.
func (o *rootOptions) load() (*env, error) {
	cfg := config.Default()
	if _, err := os.Stat(o.configPath); err == nil {
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if f := os.Getenv("LEDGER_FILE"); f != "" {
		cfg.Ledger.File = f
	}

	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)

	return &env{
		cfg:   cfg,
		log:   log,
		store: ledger.NewStore(cfg.Ledger.File, log),
		cats:  categories.NewService(cfg.Categories),
	}, nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "expense-tracker",
		Short:   "Personal income and expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to the ledger config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newSummaryCommand(opts),
		newChartCommand(opts),
		newExportCommand(opts),
		newMenuCommand(opts),
	)

	return rootCmd
}
