package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// Store reads and appends the ledger CSV. The file path is injected so
// callers (and tests) control where data lives.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a Store for the given ledger file path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// EnsureExists creates the ledger file with its header when missing.
func (s *Store) EnsureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat ledger: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// Load reads every row of the ledger and returns the valid transactions in
// file order. Malformed rows (bad date, non-positive or non-numeric amount,
// unknown type, wrong field count) are dropped, not surfaced as errors:
// reading is lenient so one bad row on disk never blocks the rest.
func (s *Store) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	return s.readLenient(f)
}

func (s *Store) readLenient(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length checked per row so bad rows can be skipped

	var txs []model.Transaction
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ledger CSV: %w", err)
		}
		if line == 1 {
			continue // header
		}

		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			s.log.Debug().Int("line", line).Err(err).Msg("dropping malformed ledger row")
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Append adds one transaction to the end of the ledger, creating the file
// with its header first when needed. The row is written only after the
// transaction was fully parsed, so no partial append can occur.
func (s *Store) Append(tx model.Transaction) error {
	if err := s.EnsureExists(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if err := AppendTransactions(f, []model.Transaction{tx}); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	return nil
}
