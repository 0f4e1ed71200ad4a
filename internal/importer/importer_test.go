package importer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/storage"
)

func makeTx(t *testing.T, amount, fitID, name string) ofxgo.Transaction {
	t.Helper()
	var amt ofxgo.Amount
	_, ok := amt.SetString(amount)
	require.True(t, ok, "bad amount literal %q", amount)

	return ofxgo.Transaction{
		TrnAmt:   amt,
		FiTID:    ofxgo.String(fitID),
		Name:     ofxgo.String(name),
		DtPosted: ofxgo.Date{Time: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
	}
}

func TestConvertDebit(t *testing.T) {
	entry := convert(makeTx(t, "-12.50", "fit-1", "STARBUCKS #1234"))

	assert.True(t, entry.Debit)
	assert.InDelta(t, 12.50, entry.Amount, 0.001)
	assert.Equal(t, "fit-1", entry.FitID)
	assert.Equal(t, "STARBUCKS #1234", entry.Description)
	assert.Equal(t, model.CategoryFood, entry.Category, "debits get a keyword category")
}

func TestConvertCredit(t *testing.T) {
	entry := convert(makeTx(t, "2500.00", "fit-2", "PAYROLL DEPOSIT"))

	assert.False(t, entry.Debit)
	assert.InDelta(t, 2500, entry.Amount, 0.001)
	assert.Empty(t, entry.Category, "credits are not categorized")
}

func TestConvertStripsCardPrefixes(t *testing.T) {
	entry := convert(makeTx(t, "-8.00", "fit-3", "POS PURCHASE Uber Trip"))
	assert.Equal(t, "Uber Trip", entry.Description)
	assert.Equal(t, model.CategoryTransport, entry.Category)
}

func TestConvertPrefersPayee(t *testing.T) {
	tx := makeTx(t, "-20.00", "fit-4", "RAW BANK STRING")
	tx.Payee = &ofxgo.Payee{Name: ofxgo.String("Corner Bakery")}

	entry := convert(tx)
	assert.Equal(t, "Corner Bakery", entry.Description)
}

func TestConvertFallsBackToMemo(t *testing.T) {
	tx := makeTx(t, "-5.00", "fit-5", "")
	tx.Memo = ofxgo.String("metro card top-up")

	entry := convert(tx)
	assert.Equal(t, "metro card top-up", entry.Description)
}

func TestPreprocessFixesCommonMalformations(t *testing.T) {
	in := "\n  <SEVERITY>info</SEVERITY>\n<STMTTRN\n"
	out := preprocess(in)
	assert.Contains(t, out, "<SEVERITY>INFO</SEVERITY>")
	assert.Contains(t, out, "<STMTTRN>")
}

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	led := ledger.New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, led.Load(ctx))
	return led
}

func TestImport(t *testing.T) {
	led := newTestLedger(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Date: date, FitID: "a", Description: "Grocery Store", Category: model.CategoryFood, Amount: 60, Debit: true},
		{Date: date, FitID: "b", Description: "Paycheck", Amount: 2000, Debit: false},
		{Date: date, FitID: "a", Description: "Grocery Store", Category: model.CategoryFood, Amount: 60, Debit: true}, // duplicate id
	}

	result := Import(ctx, led, entries, io.Discard)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	snap := led.Snapshot()
	assert.Len(t, snap.Expenses, 1)
	assert.Len(t, snap.Incomes, 1)
}

func TestImportSkipsAlreadyRecorded(t *testing.T) {
	led := newTestLedger(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	led.AddExpense(ctx, ledger.ExpenseInput{
		Date: date, Description: "Grocery Store", Category: model.CategoryFood, Amount: 60,
	})

	entries := []Entry{
		// Same date, description, and amount as the recorded expense.
		{Date: date, FitID: "x", Description: "Grocery Store", Category: model.CategoryFood, Amount: 60, Debit: true},
		{Date: date, FitID: "y", Description: "Something Else", Category: model.CategoryOther, Amount: 25, Debit: true},
	}

	result := Import(ctx, led, entries, io.Discard)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, led.Snapshot().Expenses, 2)
}

func TestImportEmptyBatch(t *testing.T) {
	led := newTestLedger(t)
	result := Import(context.Background(), led, nil, io.Discard)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Skipped)
}
