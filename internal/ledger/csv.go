package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// Header is the CSV header for the ledger file.
const Header = "date,type,category,amount,note"

const (
	numFields   = 5
	colDate     = 0
	colType     = 1
	colCategory = 2
	colAmount   = 3
	colNote     = 4
)

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(DateFormat)
	row[colType] = string(tx.Kind)
	row[colCategory] = tx.Category
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colNote] = tx.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. Every field is
// validated: the caller decides whether a failure drops the row or aborts.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	kind, err := ParseKind(record[colType])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := ParseAmount(record[colAmount])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:     date,
		Kind:     kind,
		Category: NormalizeCategory(record[colCategory]),
		Amount:   amount,
		Note:     record[colNote],
	}, nil
}

// WriteTransactions writes transactions to w, including the header row.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions writes transactions to w without a header.
func AppendTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}
