package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// addInput holds the raw field texts for one new transaction.
type addInput struct {
	date     string
	category string
	amount   string
	note     string
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var in addInput

	cmd := &cobra.Command{
		Use:   "add <income|expense>",
		Short: "Append a transaction to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := ledger.ParseKind(args[0])
			if err != nil {
				return err
			}

			e, err := opts.load()
			if err != nil {
				return err
			}

			// Prompt for everything unless fields came in as flags.
			var p *prompter
			if !cmd.Flags().Changed("date") && !cmd.Flags().Changed("amount") {
				p = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runAdd(e, kind, in, p, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&in.date, "date", "", "transaction date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&in.category, "category", "", "category (defaults to Other)")
	cmd.Flags().StringVar(&in.amount, "amount", "", "positive amount")
	cmd.Flags().StringVar(&in.note, "note", "", "optional note")

	return cmd
}

// runAdd parses the input, and only once both date and amount are valid
// appends the row. A parse failure aborts this single operation with
// nothing written.
func runAdd(e *env, kind model.Kind, in addInput, p *prompter, out io.Writer) error {
	if p != nil {
		fmt.Fprintf(out, "Adding a new %s record\n", kind)
		in.date = p.line("Date (DD/MM/YYYY): ")
		if kind == model.KindExpense {
			fmt.Fprintf(out, "Categories: %s\n", strings.Join(e.cats.All(), ", "))
		}
		in.category = p.line("Category: ")
		in.amount = p.line(fmt.Sprintf("Amount (%s): ", e.cfg.Currency))
		in.note = p.line("Note (optional): ")
	}

	date, err := ledger.ParseDate(in.date)
	if err != nil {
		return err
	}
	amount, err := ledger.ParseAmount(in.amount)
	if err != nil {
		return err
	}

	tx := model.Transaction{
		Date:     date,
		Kind:     kind,
		Category: e.cats.Canonical(ledger.NormalizeCategory(in.category)),
		Amount:   amount,
		Note:     strings.TrimSpace(in.note),
	}

	if err := e.store.Append(tx); err != nil {
		return err
	}

	e.log.Info().
		Str("kind", string(tx.Kind)).
		Str("category", tx.Category).
		Str("amount", tx.Amount.StringFixed(2)).
		Msg("transaction saved")

	fmt.Fprintf(out, "Saved: %s | %s | %s | %s%s | %s\n",
		tx.Date.Format(ledger.DateFormat), tx.Kind, tx.Category,
		e.cfg.Currency, tx.Amount.StringFixed(2), tx.Note)
	return nil
}

// prompter reads line-oriented answers from an interactive session.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

func (p *prompter) line(label string) string {
	fmt.Fprint(p.out, label)
	if !p.sc.Scan() {
		return ""
	}
	return strings.TrimSpace(p.sc.Text())
}
