/*
Copyright © 2025 changheonshin
*/
package category

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultBucket is the category used when a label matches nothing.
const DefaultBucket = "misc"

// Category pairs a canonical folder name with the keywords that map a
// free-text label onto it.
type Category struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// Matcher resolves free-text labels to canonical category names.
// Categories are kept as an ordered slice so that matching is
// deterministic: the first category whose name or keywords match wins.
type Matcher struct {
	categories []Category
}

// NewMatcher creates a Matcher over the given ordered category table.
// An empty table falls back to the built-in defaults.
func NewMatcher(categories []Category) *Matcher {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	return &Matcher{categories: categories}
}

// Match returns the canonical category for a free-text label: an exact
// (case-insensitive) name match first, then the first category with any
// keyword contained in the label, then DefaultBucket. Pure; no side
// effects.
func (m *Matcher) Match(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return DefaultBucket
	}

	for _, c := range m.categories {
		if label == strings.ToLower(c.Name) {
			return c.Name
		}
	}

	for _, c := range m.categories {
		for _, keyword := range c.Keywords {
			if strings.Contains(label, strings.ToLower(keyword)) {
				return c.Name
			}
		}
	}

	return DefaultBucket
}

// Names returns the canonical category names in table order.
func (m *Matcher) Names() []string {
	return lo.Map(m.categories, func(c Category, _ int) string {
		return c.Name
	})
}
