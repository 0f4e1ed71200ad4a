package categorize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennywise-app/pennywise/internal/model"
)

func TestLocal(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        model.Category
	}{
		{name: "coffee shop", description: "Starbucks coffee", want: model.CategoryFood},
		{name: "rideshare", description: "Uber ride downtown", want: model.CategoryTransport},
		{name: "streaming", description: "Netflix monthly", want: model.CategorySubscriptions},
		{name: "online retail", description: "AMAZON MARKETPLACE", want: model.CategoryShopping},
		{name: "utility bill", description: "electricity bill march", want: model.CategoryUtilities},
		{name: "gym", description: "Gym membership dues", want: model.CategoryHealth},
		{name: "course", description: "Udemy course on Go", want: model.CategoryEducation},
		{name: "flight", description: "flight to Lisbon", want: model.CategoryTravel},
		{name: "case insensitive", description: "PIZZA PALACE", want: model.CategoryFood},
		{name: "no match", description: "xyz123", want: model.CategoryOther},
		{name: "empty", description: "", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Local(tt.description))
		})
	}
}

func TestLocalDeterministic(t *testing.T) {
	// Earlier table rows shadow later ones, so a description matching
	// several categories always resolves the same way.
	const description = "coffee at the airport before the flight"
	first := Local(description)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Local(description))
	}
	assert.Equal(t, model.CategoryFood, first)
}

func TestLocalInsuranceIsHealth(t *testing.T) {
	assert.Equal(t, model.CategoryHealth, Local("car insurance payment"))
}

func TestKeywordClassifier(t *testing.T) {
	k := NewKeyword()
	assert.Equal(t, model.CategoryTransport, k.Classify(context.Background(), "gas station fill up"))
	assert.Equal(t, model.CategoryOther, k.Classify(context.Background(), "misc"))
}
