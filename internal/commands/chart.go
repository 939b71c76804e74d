package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/chart"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/report"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Render the category pie and monthly trend charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return runCharts(e, cmd.OutOrStdout())
		},
	}
}

func runCharts(e *env, out io.Writer) error {
	records, err := e.store.Load()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No data to chart.")
		return nil
	}

	if series := report.CategoryChartSeries(records); len(series) > 0 {
		if err := renderToFile(e.cfg.Charts.CategoryFile, func(w io.Writer) error {
			return chart.RenderCategoryPie(w, series, e.cfg.Currency)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved: %s\n", e.cfg.Charts.CategoryFile)
	}

	trend := report.MonthlyTrendSeries(records)
	if err := renderToFile(e.cfg.Charts.TrendFile, func(w io.Writer) error {
		return chart.RenderMonthlyTrend(w, trend, e.cfg.Currency)
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved: %s\n", e.cfg.Charts.TrendFile)
	return nil
}

func renderToFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
