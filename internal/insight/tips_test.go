package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyTips(t *testing.T) {
	pool := make(map[string]bool)
	for _, tip := range TipPool() {
		pool[tip] = true
	}

	for i := 0; i < 50; i++ {
		tips := WeeklyTips()
		require.Len(t, tips, 3)

		seen := make(map[string]bool)
		for _, tip := range tips {
			assert.True(t, pool[tip], "tip not from the pool: %q", tip)
			assert.False(t, seen[tip], "duplicate tip in one draw: %q", tip)
			seen[tip] = true
		}
	}
}

func TestTipPoolIsACopy(t *testing.T) {
	pool := TipPool()
	require.NotEmpty(t, pool)
	original := pool[0]
	pool[0] = "mutated"
	assert.Equal(t, original, TipPool()[0])
}
