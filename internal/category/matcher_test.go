/*
Copyright © 2025 changheonshin
*/
package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() []Category {
	return []Category{
		{Name: "animals", Keywords: []string{"dog", "cat"}},
		{Name: "food", Keywords: []string{"meal"}},
	}
}

func TestMatcher_ExactMatch(t *testing.T) {
	m := NewMatcher(testTable())

	assert.Equal(t, "animals", m.Match("animals"))
	assert.Equal(t, "animals", m.Match("  Animals  "))
	assert.Equal(t, "food", m.Match("FOOD"))
}

func TestMatcher_KeywordFallback(t *testing.T) {
	m := NewMatcher(testTable())

	assert.Equal(t, "animals", m.Match("a cute dog"))
	assert.Equal(t, "animals", m.Match("My CAT sleeping"))
	assert.Equal(t, "food", m.Match("a hearty meal on a table"))
}

func TestMatcher_NoMatchFallsBackToDefault(t *testing.T) {
	m := NewMatcher(testTable())

	assert.Equal(t, DefaultBucket, m.Match("xyz"))
	assert.Equal(t, DefaultBucket, m.Match(""))
	assert.Equal(t, DefaultBucket, m.Match("   "))
}

func TestMatcher_FirstCategoryWinsOnMultipleMatches(t *testing.T) {
	table := []Category{
		{Name: "pets", Keywords: []string{"dog"}},
		{Name: "strays", Keywords: []string{"dog"}},
	}
	m := NewMatcher(table)

	assert.Equal(t, "pets", m.Match("a dog on the street"))
}

func TestMatcher_DefaultTable(t *testing.T) {
	m := NewMatcher(nil)

	assert.Equal(t, "vehicles", m.Match("a red car in a garage"))
	assert.Equal(t, "sports", m.Match("a sports match"))
	assert.Equal(t, "nature", m.Match("sunset over the ocean"))
	assert.Equal(t, "characters", m.Match("anime girl with blue hair"))
	assert.Equal(t, DefaultBucket, m.Match("qqq"))
}

func TestMatcher_Names(t *testing.T) {
	m := NewMatcher(testTable())

	assert.Equal(t, []string{"animals", "food"}, m.Names())
}
