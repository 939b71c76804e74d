package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/report"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var start, end, category, outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a filtered, date-sorted subset to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			if outFile != "" {
				e.cfg.Export.File = outFile
			}
			return runExport(e, start, end, category, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (DD/MM/YYYY), inclusive")
	cmd.Flags().StringVar(&end, "end", "", "end date (DD/MM/YYYY), inclusive")
	cmd.Flags().StringVar(&category, "category", "", "category filter (case-insensitive)")
	cmd.Flags().StringVar(&outFile, "out", "", "output file (defaults to the configured export file)")

	return cmd
}

// runExport writes the matching rows to the export file. A malformed date
// fails the whole export before anything is read or written; this is
// stricter than the lenient ledger load on purpose.
func runExport(e *env, start, end, category string, out io.Writer) error {
	q, err := report.ParseQuery(start, end, category)
	if err != nil {
		return err
	}

	records, err := e.store.Load()
	if err != nil {
		return err
	}

	filtered := report.Filter(records, q)
	if len(filtered) == 0 {
		fmt.Fprintln(out, "No matching records.")
		return nil
	}

	exporter := ledger.NewExporter(e.cfg.Export.File)
	n, err := exporter.Export(filtered)
	if err != nil {
		return err
	}

	e.log.Info().Int("rows", n).Str("file", exporter.Path()).Msg("export written")
	fmt.Fprintf(out, "Exported %d rows to %s\n", n, exporter.Path())
	return nil
}
