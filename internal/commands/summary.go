package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/report"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show overview, monthly and category summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return runSummary(e, cmd.OutOrStdout())
		},
	}
}

func runSummary(e *env, out io.Writer) error {
	records, err := e.store.Load()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No data yet. Add some records first!")
		return nil
	}

	cur := e.cfg.Currency

	overview := report.ComputeOverview(records)
	balance := "(surplus)"
	if overview.Net.IsNegative() {
		balance = "(deficit)"
	}
	fmt.Fprintln(out, "Overview")
	fmt.Fprintf(out, "Total income:   %s%s\n", cur, overview.TotalIncome.StringFixed(2))
	fmt.Fprintf(out, "Total expenses: %s%s\n", cur, overview.TotalExpense.StringFixed(2))
	fmt.Fprintf(out, "Net balance:    %s%s %s\n", cur, overview.Net.StringFixed(2), balance)

	fmt.Fprintln(out, "\nMonthly Summary")
	fmt.Fprintf(out, "%-10s %12s %12s %12s\n", "Month", "Income", "Expense", "Net")
	for _, row := range report.MonthlySummary(records) {
		fmt.Fprintf(out, "%-10s %12s %12s %12s\n",
			row.Month,
			cur+row.Income.StringFixed(2),
			cur+row.Expense.StringFixed(2),
			cur+row.Net.StringFixed(2))
	}

	categorySummary := report.CategorySummary(records)
	if len(categorySummary) == 0 {
		fmt.Fprintln(out, "\n(no expenses yet)")
		return nil
	}
	fmt.Fprintln(out, "\nExpenses by Category")
	fmt.Fprintf(out, "%-20s %12s\n", "Category", "Total")
	for _, row := range categorySummary {
		fmt.Fprintf(out, "%-20s %12s\n", row.Category, cur+row.Total.StringFixed(2))
	}
	return nil
}
