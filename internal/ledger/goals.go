package ledger

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// GoalInput carries the caller-validated fields for a new savings goal.
type GoalInput struct {
	Deadline     *time.Time
	Name         string
	Color        string
	Icon         string
	TargetAmount float64
}

// GoalPatch holds partial updates; nil fields are left unchanged.
// CurrentAmount is deliberately absent: funds only move through
// AddFunds so the balance never decreases.
type GoalPatch struct {
	Deadline     *time.Time
	Name         *string
	Color        *string
	Icon         *string
	TargetAmount *float64
}

// AddGoal creates a new savings goal starting at zero.
func (l *Ledger) AddGoal(ctx context.Context, input GoalInput) model.SavingsGoal {
	ts := now()
	goal := model.SavingsGoal{
		ID:           newID(),
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		Deadline:     input.Deadline,
		Color:        input.Color,
		Icon:         input.Icon,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	l.mu.Lock()
	l.state.Goals = append(l.state.Goals, goal)
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("add goal", func() error {
		return l.store.AddGoal(ctx, &goal)
	})
	l.notify(snap)
	return goal
}

// AddFunds increases a goal's balance. Negative or zero amounts and
// missing ids are silent no-ops; the balance never decreases.
func (l *Ledger) AddFunds(ctx context.Context, id string, amount float64) {
	if amount <= 0 {
		return
	}

	l.mu.Lock()
	idx := -1
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}

	l.state.Goals[idx].CurrentAmount += amount
	l.state.Goals[idx].UpdatedAt = now()
	updated := l.state.Goals[idx]

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("add funds", func() error {
		return l.store.PutGoal(ctx, &updated)
	})
	l.notify(snap)
}

// UpdateGoal merges a patch into an existing goal.
func (l *Ledger) UpdateGoal(ctx context.Context, id string, patch GoalPatch) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}

	g := &l.state.Goals[idx]
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.TargetAmount != nil {
		g.TargetAmount = *patch.TargetAmount
	}
	if patch.Deadline != nil {
		g.Deadline = patch.Deadline
	}
	if patch.Color != nil {
		g.Color = *patch.Color
	}
	if patch.Icon != nil {
		g.Icon = *patch.Icon
	}
	g.UpdatedAt = now()
	updated := *g

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("update goal", func() error {
		return l.store.PutGoal(ctx, &updated)
	})
	l.notify(snap)
}

// DeleteGoal removes a goal by id; missing ids are a no-op.
func (l *Ledger) DeleteGoal(ctx context.Context, id string) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.state.Goals = append(l.state.Goals[:idx], l.state.Goals[idx+1:]...)

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("delete goal", func() error {
		return l.store.DeleteGoal(ctx, id)
	})
	l.notify(snap)
}
