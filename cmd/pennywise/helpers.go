package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pennywise-app/pennywise/internal/categorize"
	"github.com/pennywise-app/pennywise/internal/common"
	"github.com/pennywise-app/pennywise/internal/config"
	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
	"github.com/pennywise-app/pennywise/internal/storage"
)

// initStorage opens the SQLite database with proper path expansion and
// runs any pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath(viper.GetString("sync.user_id"))
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the budget database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("could not upgrade the budget database", err)
	}

	return store, nil
}

// openLedger initializes storage and loads the full application state.
// The caller owns the returned store and must Close it.
func openLedger(ctx context.Context) (*ledger.Ledger, *storage.SQLiteStorage, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	led := ledger.New(store, slog.Default())
	if err := led.Load(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	return led, store, nil
}

// buildClassifier assembles the text classifier from configuration.
// Without a configured endpoint this is the local keyword matcher.
func buildClassifier() service.TextClassifier {
	return categorize.New(categorize.Config{
		Endpoint: viper.GetString("classify.endpoint"),
		APIToken: viper.GetString("classify.api_token"),
		Timeout:  viper.GetDuration("classify.timeout"),
	}, slog.Default())
}

// parseAmount parses a positive decimal amount from a CLI argument.
func parseAmount(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(arg, "$"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %q", arg)
	}
	return v, nil
}

// parseDate accepts YYYY-MM-DD, "today", or "yesterday". Empty means
// today.
func parseDate(arg string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	case "yesterday":
		return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1), nil
	}

	t, err := time.ParseInLocation("2006-01-02", arg, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t, nil
}

// parseMonthFlag resolves a --month value. Empty means the current
// calendar month.
func parseMonthFlag(arg string) (model.Month, error) {
	if arg == "" {
		return model.CurrentMonth(), nil
	}
	return model.ParseMonth(arg)
}

// activeCurrency picks the display currency from the profile, falling
// back to USD before onboarding.
func activeCurrency(snap ledger.State) string {
	if snap.Profile != nil && snap.Profile.Currency != "" {
		return snap.Profile.Currency
	}
	return "USD"
}

// joinWords glues remaining positional args into one description so
// users can skip quoting.
func joinWords(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// shortID abbreviates a record id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a full id or unique prefix against the known ids.
func resolveID(arg string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no record matching %q: %w", arg, common.ErrNotFound)
	default:
		return "", fmt.Errorf("ambiguous id %q matches %d records", arg, len(matches))
	}
}
