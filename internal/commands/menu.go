package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

func newMenuCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			if err := e.store.EnsureExists(); err != nil {
				return err
			}
			return runMenu(e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runMenu drives the classic 6-option loop. Every choice re-reads the
// ledger, and an error from one operation never ends the loop.
func runMenu(e *env, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	for {
		fmt.Fprintln(out, "\n========== Expense Tracker ==========")
		fmt.Fprintln(out, "1) Add expense")
		fmt.Fprintln(out, "2) Add income")
		fmt.Fprintln(out, "3) View summaries")
		fmt.Fprintln(out, "4) Generate charts")
		fmt.Fprintln(out, "5) Export filtered data")
		fmt.Fprintln(out, "6) Quit")

		var err error
		switch choice := p.line("Choose an option (1-6): "); choice {
		case "1":
			err = runAdd(e, model.KindExpense, addInput{}, p, out)
		case "2":
			err = runAdd(e, model.KindIncome, addInput{}, p, out)
		case "3":
			err = runSummary(e, out)
		case "4":
			err = runCharts(e, out)
		case "5":
			start := p.line("Start date (DD/MM/YYYY) or leave blank: ")
			end := p.line("End date   (DD/MM/YYYY) or leave blank: ")
			category := p.line("Category (optional): ")
			err = runExport(e, start, end, category, out)
		case "6", "":
			fmt.Fprintln(out, "Goodbye! Keep tracking wisely.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please select 1-6.")
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}
