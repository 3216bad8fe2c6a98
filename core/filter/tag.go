package filter

import "asset-catalog/core/catalog"

// TagFilter passes assets that carry a tag.
type TagFilter struct {
	// Name is the kind-prefixed tag name, e.g. "tag:Outdoor".
	Name string
	// Include is part of the canonical representation; instantiating the
	// filter means the tag is actively filtered on.
	Include bool

	bareName string
}

// NewTagFilter creates a filter passing assets tagged with the given tag.
func NewTagFilter(name string) *TagFilter {
	return &TagFilter{Name: name, Include: true, bareName: catalog.NameWithoutKind(name)}
}

// Match reports whether the tag is present in the asset's tag set.
func (f *TagFilter) Match(a *catalog.Asset) bool {
	return a.Tags.Has(f.bareName)
}

// AsDict returns the canonical representation of the filter.
func (f *TagFilter) AsDict() map[string]any {
	return map[string]any{f.Name: f.Include}
}
