package filter

import (
	"asset-catalog/core/catalog"
	"asset-catalog/core/geo"
)

// mapProjection is shared by all location filters so the coordinate memoization
// accumulates across queries.
var mapProjection = geo.NewMapProjection()

// LocationParameterFilter passes assets with at least one location of the
// targeted parameter inside a selected map tile.
//
// Every (lat, lon) pair of the parameter is projected onto the 16x16 grid; the
// asset passes if any resulting tile is selected. With no tile selected the
// filter is at its default configuration and passes everything.
type LocationParameterFilter struct {
	// Name is the kind-prefixed parameter name, e.g. "loc:native_observations".
	Name string
	// SelectedTiles is indexed [y][x], row 0 being the northernmost.
	SelectedTiles [geo.GridHeight][geo.GridWidth]bool

	bareName string
}

// NewLocationParameterFilter creates a location filter with the given tile
// selection.
func NewLocationParameterFilter(
	name string, selected [geo.GridHeight][geo.GridWidth]bool,
) *LocationParameterFilter {
	return &LocationParameterFilter{
		Name:          name,
		SelectedTiles: selected,
		bareName:      catalog.NameWithoutKind(name),
	}
}

// Match reports whether any location of the parameter projects onto a selected
// tile.
func (f *LocationParameterFilter) Match(a *catalog.Asset) bool {
	if !f.anySelected() {
		return true
	}

	locations, ok := a.LocationParameters[f.bareName]
	if !ok {
		return false
	}
	for _, location := range locations {
		x, y := mapProjection.Project(location.Lat, location.Lon)
		if f.SelectedTiles[y][x] {
			return true
		}
	}
	return false
}

// AsDict returns the canonical representation of the filter - the sorted list
// of selected [y, x] tiles.
func (f *LocationParameterFilter) AsDict() map[string]any {
	tiles := [][2]int{}
	for y := 0; y < geo.GridHeight; y++ {
		for x := 0; x < geo.GridWidth; x++ {
			if f.SelectedTiles[y][x] {
				tiles = append(tiles, [2]int{y, x})
			}
		}
	}
	return map[string]any{f.Name: map[string]any{"tiles": tiles}}
}

func (f *LocationParameterFilter) anySelected() bool {
	for y := range f.SelectedTiles {
		for x := range f.SelectedTiles[y] {
			if f.SelectedTiles[y][x] {
				return true
			}
		}
	}
	return false
}
