// Package report turns a loaded record set into the summaries, filtered
// subsets and chart series the CLI presents. Everything here is pure: the
// store loads, report computes, commands render.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

// Overview holds aggregate totals across the whole record set.
type Overview struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// MonthTotal is one row of the monthly summary.
type MonthTotal struct {
	Month   model.MonthKey
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// CategoryTotal is one row of the expenses-by-category summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ComputeOverview sums income and expense amounts across all records.
// An empty record set yields all zeros.
func ComputeOverview(records []model.Transaction) Overview {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range records {
		switch tx.Kind {
		case model.KindIncome:
			income = income.Add(tx.Amount)
		case model.KindExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Overview{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
}

// MonthlySummary groups records by (year, month) and returns one row per
// distinct month present in the data, ascending. A month with no income or
// no expenses contributes zero for that side, never an absent row.
func MonthlySummary(records []model.Transaction) []MonthTotal {
	byMonth := make(map[model.MonthKey]*MonthTotal)
	var keys []model.MonthKey
	for _, tx := range records {
		key := tx.Month()
		row, ok := byMonth[key]
		if !ok {
			row = &MonthTotal{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = row
			keys = append(keys, key)
		}
		switch tx.Kind {
		case model.KindIncome:
			row.Income = row.Income.Add(tx.Amount)
		case model.KindExpense:
			row.Expense = row.Expense.Add(tx.Amount)
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]MonthTotal, 0, len(keys))
	for _, key := range keys {
		row := *byMonth[key]
		row.Net = row.Income.Sub(row.Expense)
		out = append(out, row)
	}
	return out
}

// CategorySummary groups expense records by category and sorts descending
// by total. Equal totals are ordered by category name ascending so the
// result is deterministic.
func CategorySummary(records []model.Transaction) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range records {
		if tx.Kind != model.KindExpense {
			continue
		}
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for cat, total := range byCategory {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
