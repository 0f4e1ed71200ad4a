package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/pennywise-app/pennywise/internal/ledger"
)

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Import records parsed statement entries into the ledger, skipping
// duplicates. Entries are deduplicated by bank transaction id within
// the batch and against already-recorded entries by date, description,
// and amount.
func Import(ctx context.Context, led *ledger.Ledger, entries []Entry, progressOut io.Writer) Result {
	snap := led.Snapshot()

	seen := make(map[string]bool, len(entries))
	existing := make(map[string]bool, len(snap.Expenses)+len(snap.Incomes))
	for _, e := range snap.Expenses {
		existing[fingerprint(e.Date.Format("2006-01-02"), e.Description, e.Amount)] = true
	}
	for _, in := range snap.Incomes {
		existing[fingerprint(in.Date.Format("2006-01-02"), in.Source, in.Amount)] = true
	}

	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing entries..."),
	)

	var result Result
	for _, entry := range entries {
		_ = bar.Add(1)

		if entry.FitID != "" && seen[entry.FitID] {
			result.Skipped++
			continue
		}
		seen[entry.FitID] = true

		fp := fingerprint(entry.Date.Format("2006-01-02"), entry.Description, entry.Amount)
		if existing[fp] {
			result.Skipped++
			continue
		}
		existing[fp] = true

		if entry.Debit {
			led.AddExpense(ctx, ledger.ExpenseInput{
				Amount:      entry.Amount,
				Description: entry.Description,
				Category:    entry.Category,
				Date:        entry.Date,
			})
		} else {
			led.AddIncome(ctx, ledger.IncomeInput{
				Amount: entry.Amount,
				Source: entry.Description,
				Date:   entry.Date,
			})
		}
		result.Imported++
	}

	_ = bar.Finish()
	return result
}

func fingerprint(date, description string, amount float64) string {
	return fmt.Sprintf("%s|%s|%.2f", date, description, amount)
}
