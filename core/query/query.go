package query

import (
	"encoding/json"
	"fmt"

	"asset-catalog/core/catalog"
	"asset-catalog/core/filter"
)

// SortMode selects the ordering of a query's result set.
type SortMode string

const (
	// SortAlphabeticalAsc sorts ascending by title.
	SortAlphabeticalAsc SortMode = "ABC (A)"
	// SortAlphabeticalDesc sorts descending by title.
	SortAlphabeticalDesc SortMode = "ABC (D)"
	// SortMostRelevant sorts descending by the relevance score recorded by the
	// query's search filter.
	SortMostRelevant SortMode = "Most Relevant"
)

// Query is an immutable, hashable description of "which assets, filtered how,
// sorted how".
//
// The canonical representation is built eagerly on construction: filters are
// mutable elsewhere in the system, and the query snapshot must stay stable
// even if the filters that produced it change later. Equality and caching are
// defined solely on the canonical representation, never on filter object
// identity.
type Query struct {
	CategoryID catalog.CategoryID
	Filters    []filter.Filter
	SortMode   SortMode
	Recursive  bool

	dict map[string]any
	key  string
}

// New builds a query over a category, recursively including child categories.
func New(categoryID catalog.CategoryID, filters []filter.Filter, sortMode SortMode) *Query {
	return NewWithRecursive(categoryID, filters, sortMode, true)
}

// NewWithRecursive builds a query with explicit recursion behavior.
func NewWithRecursive(
	categoryID catalog.CategoryID, filters []filter.Filter, sortMode SortMode, recursive bool,
) *Query {
	q := &Query{
		CategoryID: categoryID,
		Filters:    append([]filter.Filter(nil), filters...),
		SortMode:   sortMode,
		Recursive:  recursive,
	}
	q.dict = q.asDict()
	q.key = canonicalKey(q.dict)
	return q
}

func (q *Query) asDict() map[string]any {
	ret := map[string]any{
		"category_id": string(q.CategoryID),
		"recursive":   q.Recursive,
		"sort_mode":   string(q.SortMode),
	}
	for _, f := range q.Filters {
		for key, value := range f.AsDict() {
			ret[key] = value
		}
	}
	return ret
}

// canonicalKey serializes the dict with sorted keys at every nesting level,
// which encoding/json guarantees for maps.
func canonicalKey(dict map[string]any) string {
	data, err := json.Marshal(dict)
	if err != nil {
		// the dicts only hold plain data, failing to serialize one is a
		// programming error
		panic(fmt.Sprintf("query: canonical representation not serializable: %v", err))
	}
	return string(data)
}

// Key returns the stable canonical serialization of the query, suitable as a
// cache key.
func (q *Query) Key() string {
	return q.key
}

// Dict returns the canonical map representation snapshotted at construction.
func (q *Query) Dict() map[string]any {
	return q.dict
}

// Equal reports whether two queries have structurally equal canonical
// representations.
func (q *Query) Equal(other *Query) bool {
	return other != nil && q.key == other.key
}

// String implements fmt.Stringer for debug logging.
func (q *Query) String() string {
	return q.key
}
