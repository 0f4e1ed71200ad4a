package ledger

import (
	"context"

	"github.com/pennywise-app/pennywise/internal/model"
)

// ProfileInput carries the fields for creating or replacing the
// singleton profile.
type ProfileInput struct {
	Name          string
	Email         string
	Currency      string
	MonthlyIncome float64
}

// SaveProfile creates or replaces the profile record. The id and
// CreatedAt of an existing profile are kept so the record stays a
// singleton across edits.
func (l *Ledger) SaveProfile(ctx context.Context, input ProfileInput) model.UserProfile {
	ts := now()

	l.mu.Lock()
	profile := model.UserProfile{
		ID:            newID(),
		Name:          input.Name,
		Email:         input.Email,
		Currency:      input.Currency,
		MonthlyIncome: input.MonthlyIncome,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if l.state.Profile != nil {
		profile.ID = l.state.Profile.ID
		profile.CreatedAt = l.state.Profile.CreatedAt
		profile.OnboardingCompleted = l.state.Profile.OnboardingCompleted
	}
	if profile.Currency == "" {
		profile.Currency = "USD"
	}
	l.state.Profile = &profile

	// Monthly income feeds the no-income fallback, so totals may move.
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("save profile", func() error {
		return l.store.SaveProfile(ctx, &profile)
	})
	l.notify(snap)
	return profile
}

// CompleteOnboarding marks the profile as onboarded. A missing profile
// is a no-op.
func (l *Ledger) CompleteOnboarding(ctx context.Context) {
	l.mu.Lock()
	if l.state.Profile == nil {
		l.mu.Unlock()
		return
	}
	profile := *l.state.Profile
	profile.OnboardingCompleted = true
	profile.UpdatedAt = now()
	l.state.Profile = &profile
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("complete onboarding", func() error {
		return l.store.SaveProfile(ctx, &profile)
	})
	l.notify(snap)
}

// MarkInsightRead dismisses an insight by marking it read. Dismissal
// never deletes; the record survives until the next regeneration.
func (l *Ledger) MarkInsightRead(ctx context.Context, id string) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Insights {
		if l.state.Insights[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.state.Insights[idx].IsRead = true
	updated := l.state.Insights[idx]
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("mark insight read", func() error {
		return l.store.PutInsight(ctx, &updated)
	})
	l.notify(snap)
}
