package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/ledger"
	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("01/01/2025", "31/01/2025", " Groceries ")
	require.NoError(t, err)
	require.NotNil(t, q.Start)
	require.NotNil(t, q.End)
	assert.True(t, q.Start.Equal(date(2025, 1, 1)))
	assert.True(t, q.End.Equal(date(2025, 1, 31)))
	assert.Equal(t, "Groceries", q.Category)
}

func TestParseQuery_BlankInputsImposeNoConstraint(t *testing.T) {
	q, err := ParseQuery("", "  ", "")
	require.NoError(t, err)
	assert.Nil(t, q.Start)
	assert.Nil(t, q.End)
	assert.Empty(t, q.Category)
}

func TestParseQuery_MalformedDateFailsOperation(t *testing.T) {
	_, err := ParseQuery("2025-01-01", "", "")
	assert.ErrorIs(t, err, ledger.ErrInvalidDate)

	_, err = ParseQuery("", "31/02/2025", "")
	assert.ErrorIs(t, err, ledger.ErrInvalidDate)
}

func TestFilter_NoPredicatesReturnsAllDateSorted(t *testing.T) {
	records := []model.Transaction{
		expense(2025, 3, 1, "Bills", "10.00"),
		income(2025, 1, 1, "1000.00"),
		expense(2025, 2, 1, "Rent", "800.00"),
	}

	got := Filter(records, Query{})
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.Equal(date(2025, 1, 1)))
	assert.True(t, got[1].Date.Equal(date(2025, 2, 1)))
	assert.True(t, got[2].Date.Equal(date(2025, 3, 1)))
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	records := []model.Transaction{
		expense(2025, 1, 1, "Bills", "1.00"),
		expense(2025, 1, 15, "Bills", "2.00"),
		expense(2025, 1, 31, "Bills", "3.00"),
		expense(2025, 2, 1, "Bills", "4.00"),
	}

	start := date(2025, 1, 15)
	end := date(2025, 1, 31)
	got := Filter(records, Query{Start: &start, End: &end})
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("2.00")))
	assert.True(t, got[1].Amount.Equal(dec("3.00")))
}

func TestFilter_CategoryCaseInsensitive(t *testing.T) {
	records := []model.Transaction{
		expense(2025, 1, 5, "Groceries", "50.00"),
		expense(2025, 1, 6, "Transport", "20.00"),
	}

	exact := Filter(records, Query{Category: "Groceries"})
	lower := Filter(records, Query{Category: "groceries"})
	assert.Equal(t, exact, lower)
	require.Len(t, lower, 1)
	assert.Equal(t, "Groceries", lower[0].Category)
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	records := []model.Transaction{
		expense(2025, 1, 5, "Groceries", "50.00"),
		expense(2025, 2, 5, "Groceries", "60.00"),
		expense(2025, 1, 10, "Rent", "800.00"),
	}

	start := date(2025, 1, 1)
	end := date(2025, 1, 31)
	got := Filter(records, Query{Start: &start, End: &end, Category: "groceries"})
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("50.00")))
}

func TestFilter_StableOnEqualDates(t *testing.T) {
	records := []model.Transaction{
		expense(2025, 1, 5, "Groceries", "1.00"),
		expense(2025, 1, 5, "Groceries", "2.00"),
		expense(2025, 1, 5, "Groceries", "3.00"),
	}

	got := Filter(records, Query{})
	require.Len(t, got, 3)
	assert.True(t, got[0].Amount.Equal(dec("1.00")))
	assert.True(t, got[1].Amount.Equal(dec("2.00")))
	assert.True(t, got[2].Amount.Equal(dec("3.00")))
}

func TestFilter_NoMatches(t *testing.T) {
	records := []model.Transaction{expense(2025, 1, 5, "Groceries", "50.00")}
	got := Filter(records, Query{Category: "Travel"})
	assert.Empty(t, got)
}
