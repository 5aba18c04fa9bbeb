package magazzino

import (
	"fmt"
	"strings"
)

// Category classifies goods. The set is closed: a stock entry or a movement
// always belongs to exactly one of the declared categories.
type Category string

const (
	// Food covers solid goods, counted in pieces.
	Food Category = "Cibo"
	// Beverage covers drinks, counted in bottles.
	Beverage Category = "Bevande"
)

// Categories returns all declared categories, in their canonical sort order.
func Categories() []Category { return []Category{Beverage, Food} }

// ParseCategory parses a string into a Category. The label is matched
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Unit returns the default unit of measure implied by the category.
func (c Category) Unit() string {
	if c == Beverage {
		return "bott"
	}
	return "pz"
}

func (c Category) String() string { return string(c) }
