package filter

import "asset-catalog/core/catalog"

// Filter is a composable predicate over assets, used in queries against an
// asset provider.
//
// Shared policy: a filter at its default/no-op configuration passes every
// asset, even assets lacking the corresponding parameter. Filters only exclude
// when actively configured away from default and the asset is missing or
// mismatches the targeted parameter.
type Filter interface {
	// Match reports whether the asset passes the filter.
	Match(a *catalog.Asset) bool

	// AsDict returns a canonical map entry representing this filter -
	// {key: filter-parameters}. The key has to be unique across all filters of
	// one query; parameter filters use their kind-prefixed name for that.
	// The representation defines query identity and is used for persistence.
	AsDict() map[string]any
}
