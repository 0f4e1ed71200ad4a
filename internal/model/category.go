// Package model defines the core domain records used throughout the application.
package model

import "fmt"

// Category is one of the ten fixed classification tags applied to an expense.
type Category string

// The closed category set. Every category-keyed map must cover all ten.
const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryTravel        Category = "travel"
	CategorySubscriptions Category = "subscriptions"
	CategoryOther         Category = "other"
)

// Categories lists every category in canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryTravel,
		CategorySubscriptions,
		CategoryOther,
	}
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFood:
		return "Food & Dining"
	case CategoryTransport:
		return "Transport"
	case CategoryShopping:
		return "Shopping"
	case CategoryUtilities:
		return "Utilities"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryHealth:
		return "Health"
	case CategoryEducation:
		return "Education"
	case CategoryTravel:
		return "Travel"
	case CategorySubscriptions:
		return "Subscriptions"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
