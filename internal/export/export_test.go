package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
)

func TestWriteCSV(t *testing.T) {
	expenses := []model.Expense{
		{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Description: "groceries", Category: model.CategoryFood, Amount: 42.5},
	}
	incomes := []model.Income{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Source: "salary", Amount: 3000},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, expenses, incomes))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"date", "type", "description", "category", "amount"}, records[0])
	// Rows are date-ordered: the income predates the expense.
	assert.Equal(t, []string{"2025-06-01", "income", "salary", "", "3000.00"}, records[1])
	assert.Equal(t, []string{"2025-06-10", "expense", "groceries", "food", "-42.50"}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestBackupRoundTrip(t *testing.T) {
	backup := Backup{
		Profile:  &model.UserProfile{ID: "p1", Name: "Sam", Currency: "USD", MonthlyIncome: 3000},
		Expenses: []model.Expense{{ID: "e1", Amount: 10, Description: "lunch", Category: model.CategoryFood}},
		Budgets: []model.Budget{{
			ID: "b1", Category: model.CategoryFood,
			Month: model.Month{Year: 2025, Month: time.June}, Limit: 400,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, backup))
	assert.Contains(t, buf.String(), `"version": 1`)
	assert.Contains(t, buf.String(), `"month": "2025-06"`)

	got, err := ReadBackup(&buf)
	require.NoError(t, err)
	assert.Equal(t, BackupVersion, got.Version)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Sam", got.Profile.Name)
	require.Len(t, got.Expenses, 1)
	require.Len(t, got.Budgets, 1)
	assert.Equal(t, model.Month{Year: 2025, Month: time.June}, got.Budgets[0].Month)
}

func TestReadBackupRejectsUnknownVersion(t *testing.T) {
	_, err := ReadBackup(strings.NewReader(`{"version": 99}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backup version")

	_, err = ReadBackup(strings.NewReader(`{}`))
	require.Error(t, err)
}

func TestReadBackupRejectsGarbage(t *testing.T) {
	_, err := ReadBackup(strings.NewReader("not json"))
	assert.Error(t, err)
}
