package ledger

import (
	"fmt"
	"os"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// Exporter writes filtered transaction subsets to a standalone CSV file.
type Exporter struct {
	path string
}

// NewExporter creates an Exporter targeting the given output path.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the export file path.
func (e *Exporter) Path() string { return e.path }

// Export writes the transactions (header included) to the export file,
// overwriting any previous export. Returns the number of rows written.
func (e *Exporter) Export(txs []model.Transaction) (int, error) {
	f, err := os.Create(e.path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txs); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}
	return len(txs), nil
}
