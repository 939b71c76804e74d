package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

var hundred = decimal.NewFromInt(100)

// CategorySlice is one slice of the expenses-by-category pie.
type CategorySlice struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal // share of all expenses, 0-100, 2dp
}

// MonthPoint is one x position on the monthly trend chart.
type MonthPoint struct {
	MonthStart time.Time
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
}

// CategoryChartSeries shapes the category summary for pie rendering. The
// series is empty when there are no expenses, so callers can skip the chart
// instead of dividing by zero.
func CategoryChartSeries(records []model.Transaction) []CategorySlice {
	summary := CategorySummary(records)

	sum := decimal.Zero
	for _, row := range summary {
		sum = sum.Add(row.Total)
	}
	if sum.IsZero() {
		return nil
	}

	out := make([]CategorySlice, 0, len(summary))
	for _, row := range summary {
		out = append(out, CategorySlice{
			Category: row.Category,
			Total:    row.Total,
			Percent:  row.Total.Mul(hundred).Div(sum).Round(2),
		})
	}
	return out
}

// MonthlyTrendSeries shapes the monthly summary for line rendering, keyed
// by the first calendar day of each month.
func MonthlyTrendSeries(records []model.Transaction) []MonthPoint {
	summary := MonthlySummary(records)

	out := make([]MonthPoint, 0, len(summary))
	for _, row := range summary {
		out = append(out, MonthPoint{
			MonthStart: row.Month.Start(),
			Income:     row.Income,
			Expense:    row.Expense,
			Net:        row.Net,
		})
	}
	return out
}

// ExportRows shapes records into persisted-schema CSV rows, ascending by
// date, ready for serialization.
func ExportRows(records []model.Transaction) [][]string {
	sorted := Filter(records, Query{})

	out := make([][]string, 0, len(sorted))
	for _, tx := range sorted {
		out = append(out, ledger.MarshalTransaction(tx))
	}
	return out
}
