// Package export writes one-way, user-triggered dumps of the record
// set: a flattened CSV of cash movements and a versioned JSON backup.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// BackupVersion identifies the JSON backup envelope format.
const BackupVersion = 1

// Backup is the versioned envelope holding the full record set.
type Backup struct {
	ExportedAt time.Time           `json:"exportedAt"`
	Profile    *model.UserProfile  `json:"profile"`
	Expenses   []model.Expense     `json:"expenses"`
	Incomes    []model.Income      `json:"incomes"`
	Budgets    []model.Budget      `json:"budgets"`
	Goals      []model.SavingsGoal `json:"goals"`
	Version    int                 `json:"version"`
}

// WriteCSV writes expenses and incomes as flattened rows: date, type,
// description, category, signed amount. Expenses are negative, incomes
// positive, ordered by date.
func WriteCSV(w io.Writer, expenses []model.Expense, incomes []model.Income) error {
	type row struct {
		date        time.Time
		kind        string
		description string
		category    string
		amount      float64
	}

	rows := make([]row, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		rows = append(rows, row{e.Date, "expense", e.Description, string(e.Category), -e.Amount})
	}
	for _, in := range incomes {
		rows = append(rows, row{in.Date, "income", in.Source, "", in.Amount})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "description", "category", "amount"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.date.Format("2006-01-02"),
			r.kind,
			r.description,
			r.category,
			fmt.Sprintf("%.2f", r.amount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBackup writes the versioned JSON backup envelope.
func WriteBackup(w io.Writer, backup Backup) error {
	backup.Version = BackupVersion
	if backup.ExportedAt.IsZero() {
		backup.ExportedAt = time.Now().UTC()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// ReadBackup parses a JSON backup envelope, rejecting unknown versions.
func ReadBackup(r io.Reader) (*Backup, error) {
	var backup Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %d", backup.Version)
	}
	return &backup, nil
}
