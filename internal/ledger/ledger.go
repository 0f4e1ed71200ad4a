// Package ledger holds the in-memory application state: the record
// collections, the active month, and the derived aggregates. It is the
// single source of truth for callers; every mutation applies to memory
// first and then attempts the durable write, logging failures instead
// of surfacing or rolling back.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
)

// State is an immutable snapshot of the ledger published to observers.
type State struct {
	Profile    *model.UserProfile
	LastSync   time.Time
	Stats      model.MonthlyStats
	Expenses   []model.Expense
	Incomes    []model.Income
	Budgets    []model.Budget
	Goals      []model.SavingsGoal
	Insights   []model.Insight
	SyncError  string
	Month      model.Month
	Health     model.FinancialHealth
	Loaded     bool
}

// Ledger is the mutable state container. It is injectable rather than
// a package global so tests can run isolated instances.
type Ledger struct {
	store   service.Storage
	logger  *slog.Logger
	subs    map[int]func(State)
	state   State
	nextSub int
	mu      sync.RWMutex
}

// New creates an empty ledger bound to a storage backend. The active
// month starts at the current calendar month.
func New(store service.Storage, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		store:  store,
		logger: logger,
		subs:   make(map[int]func(State)),
		state: State{
			Month: model.CurrentMonth(),
		},
	}
}

// Load bootstraps the ledger from storage. A completely empty store is
// fine: every field falls back to a safe default. One recalculation
// runs immediately after loading.
func (l *Ledger) Load(ctx context.Context) error {
	expenses, err := l.store.GetAllExpenses(ctx)
	if err != nil {
		return err
	}
	incomes, err := l.store.GetAllIncomes(ctx)
	if err != nil {
		return err
	}
	budgets, err := l.store.GetAllBudgets(ctx)
	if err != nil {
		return err
	}
	goals, err := l.store.GetAllGoals(ctx)
	if err != nil {
		return err
	}
	insights, err := l.store.GetAllInsights(ctx)
	if err != nil {
		return err
	}
	profile, err := l.store.GetProfile(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.state.Expenses = expenses
	l.state.Incomes = incomes
	l.state.Budgets = budgets
	l.state.Goals = goals
	l.state.Insights = insights
	l.state.Profile = profile
	l.state.Loaded = true
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	return nil
}

// Reset clears every collection in storage and restores the initial
// empty state. Safe to call on an already-empty store.
func (l *Ledger) Reset(ctx context.Context) error {
	for _, clear := range []func(context.Context) error{
		l.store.ClearExpenses,
		l.store.ClearIncomes,
		l.store.ClearBudgets,
		l.store.ClearGoals,
		l.store.ClearInsights,
		l.store.ClearProfile,
	} {
		if err := clear(ctx); err != nil {
			return err
		}
	}

	l.mu.Lock()
	l.state = State{
		Month:  model.CurrentMonth(),
		Loaded: true,
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	return nil
}

// Snapshot returns a copy of the current state. Slices are copied so
// callers can't alias the ledger's internal storage.
func (l *Ledger) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// Subscribe registers an observer called with a snapshot after every
// published state change. The returned function unsubscribes.
func (l *Ledger) Subscribe(fn func(State)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// SetMonth changes the active month pointer and recomputes all derived
// aggregates against the new window. Stored records are not altered.
func (l *Ledger) SetMonth(ctx context.Context, month model.Month) {
	l.mu.Lock()
	l.state.Month = month
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
}

// Recalculate forces a full aggregate recomputation. Mutation methods
// call this implicitly; it exists for callers that changed inputs out
// of band (e.g. after a sync pull).
func (l *Ledger) Recalculate(ctx context.Context) {
	l.mu.Lock()
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
}

func (l *Ledger) snapshotLocked() State {
	snap := l.state
	snap.Expenses = append([]model.Expense(nil), l.state.Expenses...)
	snap.Incomes = append([]model.Income(nil), l.state.Incomes...)
	snap.Budgets = append([]model.Budget(nil), l.state.Budgets...)
	snap.Goals = append([]model.SavingsGoal(nil), l.state.Goals...)
	snap.Insights = append([]model.Insight(nil), l.state.Insights...)
	if l.state.Profile != nil {
		p := *l.state.Profile
		snap.Profile = &p
	}
	if l.state.Stats.ByCategory != nil {
		byCat := make(map[model.Category]float64, len(l.state.Stats.ByCategory))
		for k, v := range l.state.Stats.ByCategory {
			byCat[k] = v
		}
		snap.Stats.ByCategory = byCat
	}
	return snap
}

func (l *Ledger) notify(snap State) {
	l.mu.RLock()
	fns := make([]func(State), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// persist runs a durable write and logs a failure instead of returning
// it. The in-memory state has already changed by the time persist runs;
// a lost write costs durability, not correctness of the session.
func (l *Ledger) persist(op string, write func() error) {
	if err := write(); err != nil {
		l.logger.Error("persistence failed", "op", op, "error", err)
	}
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
