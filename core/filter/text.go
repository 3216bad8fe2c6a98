package filter

import (
	"sort"

	"asset-catalog/core/catalog"
)

// TextParameterFilter passes assets whose text parameter value is one of the
// allowed values.
type TextParameterFilter struct {
	// Name is the kind-prefixed parameter name, e.g. "text:genus".
	Name   string
	Values map[string]struct{}

	bareName string
}

// NewTextParameterFilter creates a text value filter.
func NewTextParameterFilter(name string, values ...string) *TextParameterFilter {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return &TextParameterFilter{Name: name, Values: set, bareName: catalog.NameWithoutKind(name)}
}

// Match reports whether the asset has the parameter and its value is allowed.
func (f *TextParameterFilter) Match(a *catalog.Asset) bool {
	value, ok := a.TextParameters[f.bareName]
	if !ok {
		return false
	}
	_, allowed := f.Values[value]
	return allowed
}

// AsDict returns the canonical representation of the filter. Values are sorted
// so equal filters always serialize identically.
func (f *TextParameterFilter) AsDict() map[string]any {
	values := make([]string, 0, len(f.Values))
	for value := range f.Values {
		values = append(values, value)
	}
	sort.Strings(values)
	return map[string]any{f.Name: values}
}
