package filter

import "asset-catalog/core/catalog"

// NumericParameterFilter passes assets whose numeric parameter lies strictly
// inside (RangeStart, RangeEnd). The owning layer treats a filter spanning the
// full known range of the parameter as default.
type NumericParameterFilter struct {
	// Name is the kind-prefixed parameter name, e.g. "num:width".
	Name       string
	RangeStart float64
	RangeEnd   float64

	bareName string
}

// NewNumericParameterFilter creates a numeric range filter.
func NewNumericParameterFilter(name string, rangeStart, rangeEnd float64) *NumericParameterFilter {
	return &NumericParameterFilter{
		Name:       name,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		bareName:   catalog.NameWithoutKind(name),
	}
}

// Match reports whether the asset has the parameter and its value lies in the
// open interval.
func (f *NumericParameterFilter) Match(a *catalog.Asset) bool {
	value, ok := a.NumericParameters[f.bareName]
	if !ok {
		return false
	}
	return f.RangeStart < value && value < f.RangeEnd
}

// AsDict returns the canonical representation of the filter.
func (f *NumericParameterFilter) AsDict() map[string]any {
	return map[string]any{f.Name: map[string]any{"min": f.RangeStart, "max": f.RangeEnd}}
}
