package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/model"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "expenses.csv"), testLogger())
}

func TestEnsureExists(t *testing.T) {
	store := newTestStore(t)

	err := store.EnsureExists()
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))

	// Idempotent: a second call must not truncate.
	require.NoError(t, store.Append(model.Transaction{
		Date:     date(2025, 1, 1),
		Kind:     model.KindIncome,
		Category: "Other",
		Amount:   dec("10.00"),
	}))
	require.NoError(t, store.EnsureExists())

	txs, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	txs, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLoad_DropsMalformedRows(t *testing.T) {
	store := newTestStore(t)

	raw := strings.Join([]string{
		Header,
		"01/01/2025,income,,1000.00,",
		"31/02/2025,expense,Bills,10.00,bad date",
		"05/01/2025,expense,Groceries,abc,bad amount",
		"06/01/2025,expense,Groceries,-5,non-positive",
		"07/01/2025,transfer,Groceries,5.00,bad type",
		"08/01/2025,expense,Groceries",
		"05/01/2025,expense,Groceries,50.00,food",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	txs, err := store.Load()
	require.NoError(t, err)
	require.Len(t, txs, 2, "only the two fully valid rows survive")

	// File order is preserved.
	assert.Equal(t, model.KindIncome, txs[0].Kind)
	assert.True(t, txs[0].Amount.Equal(dec("1000.00")))
	assert.Equal(t, "Groceries", txs[1].Category)
	assert.Equal(t, "food", txs[1].Note)
}

func TestLoad_NormalizesTypeAndCategory(t *testing.T) {
	store := newTestStore(t)

	raw := Header + "\n" +
		"01/01/2025, INCOME ,,1000,\n" +
		"02/01/2025,Expense,  Rent  ,800,\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	txs, err := store.Load()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, model.KindIncome, txs[0].Kind)
	assert.Equal(t, "Other", txs[0].Category)
	assert.Equal(t, model.KindExpense, txs[1].Kind)
	assert.Equal(t, "Rent", txs[1].Category)
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	store := newTestStore(t)

	err := store.Append(model.Transaction{
		Date:     date(2025, 11, 5),
		Kind:     model.KindExpense,
		Category: "Groceries",
		Amount:   dec("50.00"),
		Note:     "weekly shop",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))

	txs, err := store.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(dec("50.00")))
}

func TestAppend_PreservesExistingRows(t *testing.T) {
	store := newTestStore(t)

	first := model.Transaction{Date: date(2025, 1, 1), Kind: model.KindIncome, Category: "Other", Amount: dec("100.00")}
	second := model.Transaction{Date: date(2025, 1, 2), Kind: model.KindExpense, Category: "Bills", Amount: dec("30.00")}

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	txs, err := store.Load()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].Date.Equal(first.Date))
	assert.True(t, txs[1].Date.Equal(second.Date))
}

func TestLoad_HeaderOnly(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureExists())

	txs, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLoad_Testdata(t *testing.T) {
	store := NewStore(filepath.Join("..", "..", "testdata", "expenses.csv"), testLogger())

	txs, err := store.Load()
	require.NoError(t, err)
	require.Len(t, txs, 8, "testdata has 8 valid rows and 2 malformed ones")

	for i, tx := range txs {
		assert.False(t, tx.Date.IsZero(), "row %d missing date", i)
		assert.NotEmpty(t, tx.Category, "row %d missing category", i)
		assert.True(t, tx.Amount.IsPositive(), "row %d amount not positive", i)
	}
}
