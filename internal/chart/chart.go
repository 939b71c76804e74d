// Package chart renders the two ledger chart artifacts as PNG images.
// It consumes the prepared series from internal/report; all aggregation
// happens there.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/report"
)

// ErrNoData means there is nothing to chart.
var ErrNoData = errors.New("no data to chart")

// RenderCategoryPie writes a pie chart of expenses by category. Slice labels
// carry the share and absolute total, e.g. "Groceries 62.5% (£50.00)".
func RenderCategoryPie(w io.Writer, series []report.CategorySlice, currency string) error {
	if len(series) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(series))
	for _, s := range series {
		values = append(values, chart.Value{
			Value: s.Total.InexactFloat64(),
			Label: fmt.Sprintf("%s %s%% (%s%s)", s.Category, s.Percent.StringFixed(1), currency, s.Total.StringFixed(2)),
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Expenses by Category (%s)", currency),
		Width:  800,
		Height: 600,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering category pie: %w", err)
	}
	return nil
}

// RenderMonthlyTrend writes a line chart with income, expense and net
// series, one point per month.
func RenderMonthlyTrend(w io.Writer, series []report.MonthPoint, currency string) error {
	if len(series) == 0 {
		return ErrNoData
	}

	months := make([]time.Time, 0, len(series))
	incomes := make([]float64, 0, len(series))
	expenses := make([]float64, 0, len(series))
	nets := make([]float64, 0, len(series))
	for _, p := range series {
		months = append(months, p.MonthStart)
		incomes = append(incomes, p.Income.InexactFloat64())
		expenses = append(expenses, p.Expense.InexactFloat64())
		nets = append(nets, p.Net.InexactFloat64())
	}

	xaxis := chart.XAxis{
		ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
	}
	if len(series) == 1 {
		// A single month has no x extent; widen the axis so the range
		// is non-zero and the lone point still renders.
		only := series[0].MonthStart
		xaxis.Range = &chart.ContinuousRange{
			Min: float64(only.AddDate(0, 0, -15).UnixNano()),
			Max: float64(only.AddDate(0, 0, 15).UnixNano()),
		}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Monthly Income vs Expenses (%s)", currency),
		Width:  1000,
		Height: 600,
		XAxis:  xaxis,
		Series: []chart.Series{
			chart.TimeSeries{Name: "Income", XValues: months, YValues: incomes},
			chart.TimeSeries{Name: "Expenses", XValues: months, YValues: expenses},
			chart.TimeSeries{Name: "Net", XValues: months, YValues: nets},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering monthly trend: %w", err)
	}
	return nil
}
