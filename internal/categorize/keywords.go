// Package categorize derives a category tag from a free-text expense
// description, locally via a keyword table or remotely via a zero-shot
// text-classification service with a local fallback.
package categorize

import (
	"context"
	"strings"

	"github.com/pennywise-app/pennywise/internal/model"
)

// keywordRule binds one category to its trigger substrings. Rules are
// evaluated in declaration order; the first category with any match
// wins, so earlier rules shadow later ones.
type keywordRule struct {
	category model.Category
	keywords []string
}

var keywordTable = []keywordRule{
	{model.CategoryFood, []string{
		"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "burger",
		"pizza", "grocery", "groceries", "supermarket", "lunch", "dinner",
		"breakfast", "bakery", "deli",
	}},
	{model.CategoryTransport, []string{
		"uber", "lyft", "taxi", "bus", "train", "metro", "subway",
		"gas", "fuel", "parking", "toll", "car wash",
	}},
	{model.CategoryShopping, []string{
		"amazon", "ebay", "mall", "clothing", "clothes", "shoes",
		"electronics", "target", "walmart", "ikea", "furniture",
	}},
	{model.CategoryUtilities, []string{
		"electric", "electricity", "water bill", "internet", "wifi",
		"phone bill", "mobile", "utility", "heating", "trash", "sewer",
	}},
	{model.CategoryEntertainment, []string{
		"movie", "cinema", "concert", "theater", "theatre", "game",
		"gaming", "bowling", "club", "bar", "party",
	}},
	{model.CategoryHealth, []string{
		"pharmacy", "doctor", "dentist", "hospital", "clinic", "gym",
		"fitness", "medicine", "vitamins", "therapy", "insurance",
	}},
	{model.CategoryEducation, []string{
		"course", "tuition", "book", "textbook", "school", "university",
		"college", "udemy", "coursera", "workshop", "seminar",
	}},
	{model.CategoryTravel, []string{
		"flight", "airline", "hotel", "airbnb", "hostel", "vacation",
		"trip", "cruise", "booking", "visa fee", "luggage",
	}},
	{model.CategorySubscriptions, []string{
		"netflix", "spotify", "subscription", "hulu", "disney", "prime",
		"youtube premium", "icloud", "dropbox", "membership", "patreon",
	}},
}

// Keyword matches descriptions against a fixed keyword table. It is
// pure and deterministic: same input, same output.
type Keyword struct{}

// NewKeyword returns the keyword-table classifier.
func NewKeyword() *Keyword {
	return &Keyword{}
}

// Classify implements service.TextClassifier. The match is a
// case-insensitive substring test; no match yields CategoryOther.
func (k *Keyword) Classify(_ context.Context, description string) model.Category {
	return Local(description)
}

// Local is the synchronous keyword categorization used everywhere a
// guess is needed without a classifier instance in hand.
func Local(description string) model.Category {
	lower := strings.ToLower(description)
	for _, rule := range keywordTable {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}
