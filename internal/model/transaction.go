package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is a single row in the ledger CSV.
type Transaction struct {
	Date     time.Time // day resolution, UTC midnight
	Kind     Kind
	Category string          // never empty; "Other" when the user left it blank
	Amount   decimal.Decimal // positive, 2 decimal places
	Note     string
}

// MonthKey identifies the (year, month) bucket a transaction falls into.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Month returns the bucket key for the transaction's date.
func (t Transaction) Month() MonthKey {
	return MonthKey{Year: t.Date.Year(), Month: t.Date.Month()}
}

// Before reports whether k is chronologically earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Start returns the first calendar day of the bucket's month.
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String formats the key as "2006-01".
func (k MonthKey) String() string {
	return k.Start().Format("2006-01")
}
