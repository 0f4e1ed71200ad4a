package insight

import "math/rand"

// tipPool is the fixed set of generic tips rotated into the UI.
var tipPool = []string{
	"Track every expense for a week — small leaks sink big budgets.",
	"Set a budget for your top three spending categories first.",
	"Automate a transfer to savings on payday, before you can spend it.",
	"Review subscriptions quarterly; most people pay for at least one they forgot.",
	"Use the 24-hour rule: sleep on any non-essential purchase over $50.",
	"Cook at home twice more per week and watch your food spend drop.",
	"Keep an emergency fund covering three months of expenses.",
	"Compare insurance and utility providers once a year.",
	"Give every savings goal a deadline — targets without dates slip.",
	"Check your budgets mid-month, not just at the end.",
}

// WeeklyTips returns three distinct tips sampled at random from the
// pool. Callers can rely only on the structural contract: three items,
// all from the pool, no repeats.
func WeeklyTips() []string {
	idx := rand.Perm(len(tipPool))
	tips := make([]string, 0, 3)
	for _, i := range idx[:3] {
		tips = append(tips, tipPool[i])
	}
	return tips
}

// TipPool exposes the fixed pool for structural assertions.
func TipPool() []string {
	out := make([]string, len(tipPool))
	copy(out, tipPool)
	return out
}
