package catalog

import "fmt"

// NumericParameterMeta tracks the observed range of one numeric parameter.
type NumericParameterMeta struct {
	Name string
	Min  float64
	Max  float64
}

// RegisterValue widens the observed range by the value.
func (m *NumericParameterMeta) RegisterValue(value float64) {
	if value < m.Min {
		m.Min = value
	}
	if value > m.Max {
		m.Max = value
	}
}

// TextParameterMeta tracks the distinct observed values of one text parameter.
type TextParameterMeta struct {
	Name         string
	UniqueValues map[string]struct{}
}

// RegisterValue adds the value to the observed set.
func (m *TextParameterMeta) RegisterValue(value string) {
	m.UniqueValues[value] = struct{}{}
}

// VectorParameterMeta tracks the per-component range of one vector parameter.
// All values of one parameter are required to have the same length.
type VectorParameterMeta struct {
	Name   string
	Length int
	Min    []float64
	Max    []float64
}

// RegisterValue widens the per-component ranges by the value. Panics on vector
// length mismatch - that means a data model invariant was broken upstream.
func (m *VectorParameterMeta) RegisterValue(value []float64) {
	if len(value) != m.Length {
		panic(fmt.Sprintf(
			"vector parameter %q: length mismatch, got %d, expected %d", m.Name, len(value), m.Length))
	}
	for i, component := range value {
		if component < m.Min[i] {
			m.Min[i] = component
		}
		if component > m.Max[i] {
			m.Max[i] = component
		}
	}
}

// LocationParameterMeta records presence of one location parameter. Locations
// have no aggregate beyond their existence.
type LocationParameterMeta struct {
	Name string
}

// AssetParametersMeta aggregates meta information (ranges, values, tags) about
// the parameters of a set of assets. Downstream filter interfaces are built
// from it.
//
// All names here are prefixed by their kind so the flat namespace stays
// unambiguous: "num:width", "text:genus", "vec:introduced_in",
// "loc:native_observations", "tag:Outdoor".
type AssetParametersMeta struct {
	Numeric  map[string]*NumericParameterMeta
	Text     map[string]*TextParameterMeta
	Vector   map[string]*VectorParameterMeta
	Location map[string]*LocationParameterMeta

	UniqueTags           map[string]struct{}
	UniqueParameterNames map[string]struct{}
}

// NewAssetParametersMeta aggregates parameter meta over the given assets.
func NewAssetParametersMeta(assets []*Asset) *AssetParametersMeta {
	meta := &AssetParametersMeta{
		Numeric:              map[string]*NumericParameterMeta{},
		Text:                 map[string]*TextParameterMeta{},
		Vector:               map[string]*VectorParameterMeta{},
		Location:             map[string]*LocationParameterMeta{},
		UniqueTags:           map[string]struct{}{},
		UniqueParameterNames: map[string]struct{}{},
	}

	for _, asset := range assets {
		for name, value := range asset.NumericParameters {
			uniqueName := "num:" + name
			if existing, ok := meta.Numeric[uniqueName]; ok {
				existing.RegisterValue(value)
			} else {
				meta.Numeric[uniqueName] = &NumericParameterMeta{Name: uniqueName, Min: value, Max: value}
			}
		}

		for name, value := range asset.TextParameters {
			uniqueName := "text:" + name
			if existing, ok := meta.Text[uniqueName]; ok {
				existing.RegisterValue(value)
			} else {
				meta.Text[uniqueName] = &TextParameterMeta{
					Name:         uniqueName,
					UniqueValues: map[string]struct{}{value: {}},
				}
			}
		}

		for name, value := range asset.VectorParameters {
			uniqueName := "vec:" + name
			if existing, ok := meta.Vector[uniqueName]; ok {
				existing.RegisterValue(value)
			} else {
				meta.Vector[uniqueName] = &VectorParameterMeta{
					Name:   uniqueName,
					Length: len(value),
					Min:    append([]float64(nil), value...),
					Max:    append([]float64(nil), value...),
				}
			}
		}

		for name := range asset.LocationParameters {
			uniqueName := "loc:" + name
			if _, ok := meta.Location[uniqueName]; !ok {
				meta.Location[uniqueName] = &LocationParameterMeta{Name: uniqueName}
			}
		}

		for tag := range asset.Tags {
			meta.UniqueTags["tag:"+tag] = struct{}{}
		}
	}

	for name := range meta.Numeric {
		meta.UniqueParameterNames[name] = struct{}{}
	}
	for name := range meta.Text {
		meta.UniqueParameterNames[name] = struct{}{}
	}
	for name := range meta.Vector {
		meta.UniqueParameterNames[name] = struct{}{}
	}
	for name := range meta.Location {
		meta.UniqueParameterNames[name] = struct{}{}
	}
	for name := range meta.UniqueTags {
		meta.UniqueParameterNames[name] = struct{}{}
	}

	return meta
}
