package catalog

import "strings"

// DefaultSearchWeight is used for tags and parameter values not present in the
// search weight table. Zero weight excludes a value from search entirely.
const DefaultSearchWeight = 1.0

const (
	// TitleTokenSearchWeight is the minimum weight of every individual token of
	// an asset title.
	TitleTokenSearchWeight = 2.0
	// TitlePhraseSearchWeight is the minimum weight of the full lowercase title
	// phrase.
	TitlePhraseSearchWeight = 1.0
)

// searchWeights overrides the search weight of known tags and parameters, keyed
// by their kind-prefixed name. Names absent here use DefaultSearchWeight.
// Mostly used to exclude machine-oriented values (ids, versions, coordinates)
// from free text search.
var searchWeights = map[string]float64{
	"num:price_usd":              0,
	"num:triangle_count":         0,
	"num:triangle_count_applied": 0,
	"num:object_count":           0,
	"num:material_count":         0,
	"num:image_count":            0,

	"text:license":       0,
	"text:author":        0,
	"text:asset_id":      0,
	"text:asset_data_id": 0,

	"vec:introduced_in":  0,
	"vec:viewport_color": 0,

	"loc:native_observations": 0,
	"loc:all_observations":    0,
	"loc:location_of_origin":  0,
}

// SearchWeight returns the search weight of a tag or parameter value. The name
// has to be kind-prefixed ("tag:Outdoor", "num:width", ...).
func SearchWeight(prefixedName string) float64 {
	if weight, ok := searchWeights[prefixedName]; ok {
		return weight
	}
	return DefaultSearchWeight
}

// ParameterInfo carries display metadata of a known tag or parameter. Assets
// can have tags and parameters that are not on the known list, those simply
// have no extra metadata.
type ParameterInfo struct {
	// Description is shown as a tooltip in filter interfaces.
	Description string `json:"description,omitempty"`
	// Unit of numeric parameter values, empty when unitless.
	Unit string `json:"unit,omitempty"`
	// Type hints how vector values should be presented - "float", "int" or "color".
	Type string `json:"type,omitempty"`
}

// KnownTags lists tags the catalog tooling understands. Assets may carry tags
// outside of this list.
var KnownTags = map[string]ParameterInfo{
	"Indoor":    {},
	"Outdoor":   {},
	"Furniture": {},
	"Lights":    {},
	"Kitchen":   {},
	"Office":    {},
	"Park":      {},
	"Spring":    {},
	"Summer":    {},
	"Autumn":    {},
	"Winter":    {},
	"Rigged":    {Description: "Asset that has a rig for animation"},
	"Photoscan": {Description: "Assets created using photogrammetry"},
}

// KnownNumericParameters lists numeric parameters the catalog tooling understands.
var KnownNumericParameters = map[string]ParameterInfo{
	"width":  {Description: "Width of the asset in meters", Unit: "m"},
	"height": {Description: "Height of the asset in meters", Unit: "m"},
	"depth":  {Description: "Depth of the asset in meters", Unit: "m"},
	"model_year": {
		Description: "When was this man-made object made",
		Type:        "int",
	},
	"price_usd": {
		Description: "Price in USD for which this man-made object was typically sold",
		Unit:        "$",
	},
	"triangle_count": {
		Description: "Number of triangles used in the asset before applying modifiers",
		Type:        "int",
	},
	"object_count": {
		Description: "Number of objects used in the asset",
		Type:        "int",
	},
	"material_count": {
		Description: "Number of materials used in the asset",
		Type:        "int",
	},
}

// KnownTextParameters lists text parameters the catalog tooling understands.
var KnownTextParameters = map[string]ParameterInfo{
	"license":           {Description: "What license applies to this asset"},
	"brand":             {Description: "Brand of the manufacturer of this man-made object"},
	"country_of_origin": {Description: "Where this asset originates from"},
	"genus":             {Description: "Biological genus of the specimen"},
	"species":           {Description: "Biological species of the specimen"},
}

// KnownVectorParameters lists vector parameters the catalog tooling understands.
var KnownVectorParameters = map[string]ParameterInfo{
	"introduced_in":  {Description: "Version of the asset pack this asset was introduced in", Type: "int"},
	"viewport_color": {Description: "Representative color of the asset", Type: "color"},
}

// KnownLocationParameters lists location parameters the catalog tooling understands.
var KnownLocationParameters = map[string]ParameterInfo{
	"native_observations": {Description: "Coordinates where the asset is naturally occurring"},
	"all_observations": {
		Description: "Coordinates where the asset is naturally occurring or was artificially introduced",
	},
	"location_of_origin": {Description: "Coordinates inferred from the country of origin"},
}

// ParameterGrouping maps a group name to the kind-prefixed parameter names that
// belong together in filter interfaces. Parameters not listed here are ungrouped.
var ParameterGrouping = map[string][]string{
	"dimensions": {"num:width", "num:height", "num:depth"},
	"taxonomy":   {"text:genus", "text:species"},
	"manufacturing": {
		"text:brand",
		"text:country_of_origin",
		"loc:location_of_origin",
		"num:model_year",
		"num:price_usd",
	},
	"observations": {"loc:native_observations", "loc:all_observations"},
	"data_count":   {"num:triangle_count", "num:object_count", "num:material_count"},
}

// FormatParameterName formats a parameter or group name to human readable
// form. A kind prefix is stripped first.
//
//	"text:country_of_origin" -> "Country Of Origin"
func FormatParameterName(name string) string {
	words := strings.Fields(strings.ReplaceAll(NameWithoutKind(name), "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// NameWithoutKind strips the kind prefix from a parameter name.
//
//	"num:width" -> "width"
//	"tag:Outdoor" -> "Outdoor"
func NameWithoutKind(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}
