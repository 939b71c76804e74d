package report

import (
	"sort"
	"strings"
	"time"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// Query describes an optional date range and category restriction.
// Nil dates and an empty category impose no constraint.
type Query struct {
	Start    *time.Time
	End      *time.Time
	Category string
}

// ParseQuery builds a Query from raw text inputs. Blank inputs are skipped;
// a malformed date fails the whole operation with ErrInvalidDate instead of
// being silently ignored, unlike the lenient store load.
func ParseQuery(start, end, category string) (Query, error) {
	var q Query
	if s := strings.TrimSpace(start); s != "" {
		d, err := ledger.ParseDate(s)
		if err != nil {
			return Query{}, err
		}
		q.Start = &d
	}
	if e := strings.TrimSpace(end); e != "" {
		d, err := ledger.ParseDate(e)
		if err != nil {
			return Query{}, err
		}
		q.End = &d
	}
	q.Category = strings.TrimSpace(category)
	return q, nil
}

// Filter returns the records matching every provided predicate, sorted
// ascending by date. Records with equal dates keep their original relative
// order. Category matching is case-insensitive and exact.
func Filter(records []model.Transaction, q Query) []model.Transaction {
	var out []model.Transaction
	for _, tx := range records {
		if q.Start != nil && tx.Date.Before(*q.Start) {
			continue
		}
		if q.End != nil && tx.Date.After(*q.End) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(tx.Category, q.Category) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
