package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-catalog/core/filter"
)

func TestQueryEquality(t *testing.T) {
	t.Run("EqualAcrossDistinctFilterInstances", func(t *testing.T) {
		a := New("/pack", []filter.Filter{filter.NewSearchFilter("couch")}, SortMostRelevant)
		b := New("/pack", []filter.Filter{filter.NewSearchFilter("couch")}, SortMostRelevant)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("DifferentSearchDiffers", func(t *testing.T) {
		a := New("/pack", []filter.Filter{filter.NewSearchFilter("couch")}, SortMostRelevant)
		b := New("/pack", []filter.Filter{filter.NewSearchFilter("table")}, SortMostRelevant)
		assert.False(t, a.Equal(b))
	})

	t.Run("DifferentCategoryDiffers", func(t *testing.T) {
		a := New("/pack", nil, SortAlphabeticalAsc)
		b := New("/other", nil, SortAlphabeticalAsc)
		assert.False(t, a.Equal(b))
	})

	t.Run("DifferentSortModeDiffers", func(t *testing.T) {
		a := New("/pack", nil, SortAlphabeticalAsc)
		b := New("/pack", nil, SortAlphabeticalDesc)
		assert.False(t, a.Equal(b))
	})

	t.Run("DifferentRecursionDiffers", func(t *testing.T) {
		a := NewWithRecursive("/pack", nil, SortAlphabeticalAsc, true)
		b := NewWithRecursive("/pack", nil, SortAlphabeticalAsc, false)
		assert.False(t, a.Equal(b))
	})

	t.Run("NilNeverEqual", func(t *testing.T) {
		a := New("/pack", nil, SortAlphabeticalAsc)
		assert.False(t, a.Equal(nil))
	})
}

func TestQueryKeyIsStableSnapshot(t *testing.T) {
	search := filter.NewSearchFilter("couch")
	q := New("/pack", []filter.Filter{search}, SortMostRelevant)
	key := q.Key()

	// mutating the filter afterwards must not change the snapshotted key
	search.Search = "changed"
	assert.Equal(t, key, q.Key())
	assert.Equal(t, key, q.String())
}

func TestQueryDict(t *testing.T) {
	q := NewWithRecursive(
		"/pack", []filter.Filter{filter.NewSearchFilter("sofa")}, SortAlphabeticalAsc, false,
	)
	dict := q.Dict()

	assert.Equal(t, "/pack", dict["category_id"])
	assert.Equal(t, false, dict["recursive"])
	assert.Equal(t, string(SortAlphabeticalAsc), dict["sort_mode"])
	assert.Equal(t, "sofa", dict["builtin:search"])
}
