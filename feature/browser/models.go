package browser

import (
	"fmt"
	"sort"

	"asset-catalog/core/catalog"
	"asset-catalog/core/colorutil"
	"asset-catalog/core/filter"
	"asset-catalog/core/geo"
	"asset-catalog/core/query"
)

// QueryRequest is the JSON body of a catalog query. Absent filter sections
// are simply not applied; an empty request returns the whole catalog.
type QueryRequest struct {
	CategoryID string `json:"category_id,omitempty"`
	Recursive  *bool  `json:"recursive,omitempty"`
	SortMode   string `json:"sort_mode,omitempty"`
	Search     string `json:"search,omitempty"`

	AssetTypes []string                `json:"asset_types,omitempty"`
	Tags       []string                `json:"tags,omitempty"`
	Numeric    []NumericFilterRequest  `json:"numeric,omitempty"`
	Text       []TextFilterRequest     `json:"text,omitempty"`
	Vector     []VectorFilterRequest   `json:"vector,omitempty"`
	Location   []LocationFilterRequest `json:"location,omitempty"`
}

// NumericFilterRequest filters a numeric parameter to an open interval.
type NumericFilterRequest struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// TextFilterRequest filters a text parameter to a set of allowed values.
type TextFilterRequest struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// VectorFilterRequest filters a vector parameter through a comparator.
//
// Comparator selects the semantics: "distance" and "color" compare Value
// against the asset's vector within Distance (Euclidean and perceptual color
// distance respectively), "lexicographic" and "component_wise" check the
// asset's vector against the inclusive [Min, Max] bounds.
type VectorFilterRequest struct {
	Name       string    `json:"name"`
	Comparator string    `json:"comparator"`
	Value      []float64 `json:"value,omitempty"`
	Distance   float64   `json:"distance,omitempty"`
	Min        []float64 `json:"min,omitempty"`
	Max        []float64 `json:"max,omitempty"`
}

// LocationFilterRequest filters a location parameter to selected map tiles,
// each tile given as [y, x] on the 16x16 grid.
type LocationFilterRequest struct {
	Name  string   `json:"name"`
	Tiles [][2]int `json:"tiles"`
}

// ToQuery converts the request into a canonical query value.
func (r *QueryRequest) ToQuery() (*query.Query, error) {
	categoryID := catalog.CategoryID(r.CategoryID)
	if categoryID == "" {
		categoryID = catalog.RootCategoryID
	}
	recursive := true
	if r.Recursive != nil {
		recursive = *r.Recursive
	}

	filters := []filter.Filter{}

	if len(r.AssetTypes) > 0 {
		types := make([]catalog.AssetType, 0, len(r.AssetTypes))
		for _, name := range r.AssetTypes {
			assetType, err := parseAssetType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, assetType)
		}
		filters = append(filters, filter.NewAssetTypesFilter(types...))
	}
	for _, tag := range r.Tags {
		filters = append(filters, filter.NewTagFilter(tag))
	}
	for _, numeric := range r.Numeric {
		filters = append(filters, filter.NewNumericParameterFilter(numeric.Name, numeric.Min, numeric.Max))
	}
	for _, text := range r.Text {
		filters = append(filters, filter.NewTextParameterFilter(text.Name, text.Values...))
	}
	for _, vector := range r.Vector {
		f, err := vector.toFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	for _, location := range r.Location {
		var selected [geo.GridHeight][geo.GridWidth]bool
		for _, tile := range location.Tiles {
			y, x := tile[0], tile[1]
			if y < 0 || y >= geo.GridHeight || x < 0 || x >= geo.GridWidth {
				return nil, fmt.Errorf("location filter %s: tile [%d, %d] out of grid", location.Name, y, x)
			}
			selected[y][x] = true
		}
		filters = append(filters, filter.NewLocationParameterFilter(location.Name, selected))
	}
	// the search filter goes last so its scores drive relevance sorting
	if r.Search != "" {
		filters = append(filters, filter.NewSearchFilter(r.Search))
	}

	sortMode, err := r.sortMode()
	if err != nil {
		return nil, err
	}
	return query.NewWithRecursive(categoryID, filters, sortMode, recursive), nil
}

func (r *QueryRequest) sortMode() (query.SortMode, error) {
	switch query.SortMode(r.SortMode) {
	case query.SortAlphabeticalAsc, query.SortAlphabeticalDesc, query.SortMostRelevant:
		return query.SortMode(r.SortMode), nil
	case "":
		if r.Search != "" {
			return query.SortMostRelevant, nil
		}
		return query.SortAlphabeticalAsc, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", r.SortMode)
	}
}

func (r VectorFilterRequest) toFilter() (filter.Filter, error) {
	var comparator filter.VectorComparator
	switch r.Comparator {
	case "distance":
		comparator = filter.NewVectorDistanceComparator(r.Value, r.Distance)
	case "color":
		if len(r.Value) != 3 {
			return nil, fmt.Errorf("vector filter %s: color comparator needs an RGB value", r.Name)
		}
		comparator = filter.NewVectorDistanceComparatorFunc(r.Value, r.Distance, colorDistance, "color")
	case "lexicographic":
		if len(r.Min) != len(r.Max) {
			return nil, fmt.Errorf("vector filter %s: min and max lengths differ", r.Name)
		}
		comparator = filter.NewVectorLexicographicComparator(r.Min, r.Max)
	case "component_wise":
		if len(r.Min) != len(r.Max) {
			return nil, fmt.Errorf("vector filter %s: min and max lengths differ", r.Name)
		}
		comparator = filter.NewVectorComponentWiseComparator(r.Min, r.Max)
	default:
		return nil, fmt.Errorf("vector filter %s: unknown comparator %q", r.Name, r.Comparator)
	}
	return filter.NewVectorParameterFilter(r.Name, comparator), nil
}

func colorDistance(a, b []float64) float64 {
	return colorutil.PerceptualDistance(
		[3]float64{a[0], a[1], a[2]},
		[3]float64{b[0], b[1], b[2]},
	)
}

func parseAssetType(name string) (catalog.AssetType, error) {
	switch t := catalog.AssetType(name); t {
	case catalog.AssetTypeModel,
		catalog.AssetTypeMaterial,
		catalog.AssetTypeParticleSystem,
		catalog.AssetTypeScene,
		catalog.AssetTypeWorld,
		catalog.AssetTypeGeometryNodes:
		return t, nil
	default:
		return "", fmt.Errorf("unknown asset type %q", name)
	}
}

// CategoryResponse is the JSON shape of one category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PreviewFile string `json:"preview_file,omitempty"`
}

// NewCategoryResponse converts a category.
func NewCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          string(c.ID),
		Title:       c.Title,
		PreviewFile: string(c.PreviewFile),
	}
}

// LocationResponse is one (lat, lon) observation.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AssetResponse is the JSON shape of one asset.
type AssetResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	PreviewFile string   `json:"preview_file,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	NumericParameters  map[string]float64            `json:"numeric_parameters,omitempty"`
	VectorParameters   map[string][]float64          `json:"vector_parameters,omitempty"`
	TextParameters     map[string]string             `json:"text_parameters,omitempty"`
	LocationParameters map[string][]LocationResponse `json:"location_parameters,omitempty"`

	// DataIDs is only populated by the asset detail endpoint.
	DataIDs []string `json:"data_ids,omitempty"`
}

// NewAssetResponse converts an asset.
func NewAssetResponse(a *catalog.Asset) AssetResponse {
	locations := map[string][]LocationResponse{}
	for name, observations := range a.LocationParameters {
		converted := make([]LocationResponse, 0, len(observations))
		for _, location := range observations {
			converted = append(converted, LocationResponse{Lat: location.Lat, Lon: location.Lon})
		}
		locations[name] = converted
	}
	return AssetResponse{
		ID:                 string(a.ID),
		Title:              a.Title,
		Type:               string(a.Type),
		PreviewFile:        string(a.PreviewFile),
		Tags:               a.Tags.Sorted(),
		NumericParameters:  a.NumericParameters,
		VectorParameters:   a.VectorParameters,
		TextParameters:     a.TextParameters,
		LocationParameters: locations,
	}
}

// AssetDataResponse is the JSON shape of one asset data record.
type AssetDataResponse struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	PrimaryFile     string   `json:"primary_file"`
	DependencyFiles []string `json:"dependency_files,omitempty"`
}

// NewAssetDataResponse converts an asset data record.
func NewAssetDataResponse(d *catalog.AssetData) AssetDataResponse {
	dependencies := make([]string, 0, len(d.DependencyFiles))
	for _, dep := range d.DependencyFiles {
		dependencies = append(dependencies, string(dep))
	}
	return AssetDataResponse{
		ID:              string(d.ID),
		Type:            string(d.Type),
		PrimaryFile:     string(d.PrimaryFile),
		DependencyFiles: dependencies,
	}
}

// NumericMetaResponse is the observed range of one numeric parameter.
type NumericMetaResponse struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// TextMetaResponse is the observed value set of one text parameter.
type TextMetaResponse struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// VectorMetaResponse is the observed per-component range of one vector
// parameter.
type VectorMetaResponse struct {
	Name   string    `json:"name"`
	Length int       `json:"length"`
	Min    []float64 `json:"min"`
	Max    []float64 `json:"max"`
}

// ParametersMetaResponse aggregates parameter metadata of a query result,
// sorted by name so the output is stable.
type ParametersMetaResponse struct {
	Numeric  []NumericMetaResponse `json:"numeric"`
	Text     []TextMetaResponse    `json:"text"`
	Vector   []VectorMetaResponse  `json:"vector"`
	Location []string              `json:"location"`
	Tags     []string              `json:"tags"`
}

// NewParametersMetaResponse converts aggregated parameter meta.
func NewParametersMetaResponse(meta *catalog.AssetParametersMeta) ParametersMetaResponse {
	ret := ParametersMetaResponse{
		Numeric:  []NumericMetaResponse{},
		Text:     []TextMetaResponse{},
		Vector:   []VectorMetaResponse{},
		Location: []string{},
		Tags:     []string{},
	}
	// the meta names are kind-prefixed, the response sections already separate
	// the kinds so the prefix is dropped
	for name, numeric := range meta.Numeric {
		ret.Numeric = append(ret.Numeric, NumericMetaResponse{
			Name: catalog.NameWithoutKind(name),
			Min:  numeric.Min,
			Max:  numeric.Max,
		})
	}
	for name, text := range meta.Text {
		values := make([]string, 0, len(text.UniqueValues))
		for value := range text.UniqueValues {
			values = append(values, value)
		}
		sort.Strings(values)
		ret.Text = append(ret.Text, TextMetaResponse{Name: catalog.NameWithoutKind(name), Values: values})
	}
	for name, vector := range meta.Vector {
		ret.Vector = append(ret.Vector, VectorMetaResponse{
			Name:   catalog.NameWithoutKind(name),
			Length: vector.Length,
			Min:    vector.Min,
			Max:    vector.Max,
		})
	}
	for name := range meta.Location {
		ret.Location = append(ret.Location, catalog.NameWithoutKind(name))
	}
	for tag := range meta.UniqueTags {
		ret.Tags = append(ret.Tags, catalog.NameWithoutKind(tag))
	}
	sort.Slice(ret.Numeric, func(i, j int) bool { return ret.Numeric[i].Name < ret.Numeric[j].Name })
	sort.Slice(ret.Text, func(i, j int) bool { return ret.Text[i].Name < ret.Text[j].Name })
	sort.Slice(ret.Vector, func(i, j int) bool { return ret.Vector[i].Name < ret.Vector[j].Name })
	sort.Strings(ret.Location)
	sort.Strings(ret.Tags)
	return ret
}

// QueryResponse is the result of a catalog query.
type QueryResponse struct {
	Assets         []AssetResponse        `json:"assets"`
	ParametersMeta ParametersMetaResponse `json:"parameters_meta"`
	Count          int                    `json:"count"`
}

// KnowledgeResponse describes the tags and parameters the catalog tooling
// understands, for building filter interfaces.
type KnowledgeResponse struct {
	Tags               map[string]catalog.ParameterInfo `json:"tags"`
	NumericParameters  map[string]catalog.ParameterInfo `json:"numeric_parameters"`
	TextParameters     map[string]catalog.ParameterInfo `json:"text_parameters"`
	VectorParameters   map[string]catalog.ParameterInfo `json:"vector_parameters"`
	LocationParameters map[string]catalog.ParameterInfo `json:"location_parameters"`
	Grouping           map[string][]string              `json:"grouping"`
}
