// Package filter provides composable predicates used in queries against an
// asset provider.
//
// Each filter implements the two-method Filter interface: Match decides
// whether an asset is kept, AsDict produces the canonical representation that
// defines query identity and can be persisted.
//
// # Catalogue
//
//   - NumericParameterFilter: open-interval range over a numeric parameter,
//     e.g. 0.0 < "width" < 10.0.
//   - TagFilter: tag membership.
//   - TextParameterFilter: text parameter value in an allowed set, e.g.
//     "country_of_origin" in {"Czechia", "Poland"}.
//   - VectorParameterFilter: vector parameter accepted by a pluggable
//     comparator (distance to a target, lexicographic range, component-wise
//     range). Color proximity plugs colorutil.PerceptualDistance in as the
//     distance function.
//   - LocationParameterFilter: any observation of a location parameter falls
//     into a selected tile of the 16x16 map grid.
//   - AssetTypesFilter: asset type flag matching.
//   - SearchFilter: fuzzy multi-token search with relevance scoring.
//
// # Default configuration
//
// A filter at its default configuration passes every asset, including assets
// lacking the targeted parameter. Only a filter actively configured away from
// default excludes anything.
package filter
