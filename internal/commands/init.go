package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/config"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the ledger file and a default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return runInit(e, opts.configPath, cmd.OutOrStdout())
		},
	}
}

func runInit(e *env, configPath string, out io.Writer) error {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(configPath, e.cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	} else if err != nil {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := e.store.EnsureExists(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Ledger ready at %s\n", e.store.Path())
	return nil
}
