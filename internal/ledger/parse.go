package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// DateFormat is the ledger's date layout: two-digit day, two-digit month,
// four-digit year.
const DateFormat = "02/01/2006"

var (
	// ErrInvalidDate means the text is not a valid DD/MM/YYYY calendar date.
	ErrInvalidDate = errors.New("invalid date, use DD/MM/YYYY (e.g. 05/11/2025)")
	// ErrInvalidAmount means the text is not a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number (e.g. 12.50)")
)

// ParseDate parses a DD/MM/YYYY date. Any other layout, and impossible
// calendar dates like 31/02/2025, fail with ErrInvalidDate.
func ParseDate(text string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return d, nil
}

// ParseAmount parses a positive decimal amount, rounding half-up to
// 2 decimal places: "12.345" -> 12.35, "12.5" -> 12.50.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return d.Round(2), nil
}

// NormalizeCategory trims whitespace and falls back to "Other" when the
// result is empty.
func NormalizeCategory(text string) string {
	c := strings.TrimSpace(text)
	if c == "" {
		return "Other"
	}
	return c
}

// ParseKind matches text against income/expense after lower-casing and
// trimming.
func ParseKind(text string) (model.Kind, error) {
	switch k := model.Kind(strings.ToLower(strings.TrimSpace(text))); k {
	case model.KindIncome, model.KindExpense:
		return k, nil
	default:
		return "", fmt.Errorf("type must be %q or %q, got %q", model.KindIncome, model.KindExpense, text)
	}
}
