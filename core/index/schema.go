package index

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"asset-catalog/core/catalog"
)

// Index is the JSON contract every provider backend ultimately produces. The
// local provider reads it from a file, the remote provider from object storage
// and the database provider assembles it from rows, after which all three
// share the same snapshot construction.
type Index struct {
	// ChildCategories maps a category ID to the IDs of its child categories.
	ChildCategories map[catalog.CategoryID][]catalog.CategoryID `json:"child_categories"`
	// ChildAssets maps a category ID to the IDs of assets directly in it.
	ChildAssets map[catalog.CategoryID][]catalog.AssetID `json:"child_assets"`
	// ChildAssetData maps an asset ID to the IDs of its data records.
	ChildAssetData map[catalog.AssetID][]catalog.AssetDataID `json:"child_asset_data"`

	CategoryMetadata map[catalog.CategoryID]CategoryMetadata `json:"category_metadata"`
	AssetMetadata    map[catalog.AssetID]AssetMetadata       `json:"asset_metadata"`
	AssetData        map[catalog.AssetDataID]AssetDataEntry  `json:"asset_data"`
}

// CategoryMetadata is the indexed metadata of one category.
type CategoryMetadata struct {
	Title       string `json:"title"`
	PreviewFile string `json:"preview_file,omitempty"`
}

// AssetMetadata is the indexed metadata of one asset.
type AssetMetadata struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	PreviewFile string   `json:"preview_file,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	NumericParameters  map[string]float64      `json:"numeric_parameters,omitempty"`
	VectorParameters   map[string][]float64    `json:"vector_parameters,omitempty"`
	TextParameters     map[string]string       `json:"text_parameters,omitempty"`
	LocationParameters map[string][][2]float64 `json:"location_parameters,omitempty"`

	// ColorParameters is the legacy spelling of vector parameters from packs
	// indexed before vector parameters existed. Merged into VectorParameters
	// at load time, a color wins over a vector of the same name.
	ColorParameters map[string][]float64 `json:"color_parameters,omitempty"`
}

// AssetDataEntry is the indexed record of one materializable asset payload.
type AssetDataEntry struct {
	Type            string   `json:"type"`
	PrimaryFile     string   `json:"primary_file"`
	DependencyFiles []string `json:"dependency_files,omitempty"`
}

// ValidationError identifies the offending key of a malformed index. A
// provider whose index fails validation does not load, callers log and skip
// it instead of aborting the whole multiplexer.
type ValidationError struct {
	Section string
	Key     string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid index: %s[%q]: %s", e.Section, e.Key, e.Reason)
}

// ParseIndex decodes and validates index JSON.
func ParseIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to decode index JSON: %w", err)
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Validate checks the referential integrity of the index. It returns the
// first problem found, walking sections in a deterministic order.
func (idx *Index) Validate() error {
	for _, id := range sortedKeys(idx.AssetMetadata) {
		meta := idx.AssetMetadata[id]
		if meta.Title == "" {
			return &ValidationError{"asset_metadata", string(id), "missing title"}
		}
		if _, ok := ParseAssetType(meta.Type); !ok {
			return &ValidationError{
				"asset_metadata", string(id),
				fmt.Sprintf("unknown asset type %q", meta.Type),
			}
		}
	}
	for _, id := range sortedKeys(idx.AssetData) {
		entry := idx.AssetData[id]
		if _, ok := ParseAssetType(entry.Type); !ok {
			return &ValidationError{
				"asset_data", string(id),
				fmt.Sprintf("unknown asset data type %q", entry.Type),
			}
		}
		if entry.PrimaryFile == "" {
			return &ValidationError{"asset_data", string(id), "missing primary_file"}
		}
	}
	for _, parent := range sortedKeys(idx.ChildAssets) {
		for _, assetID := range idx.ChildAssets[parent] {
			if _, ok := idx.AssetMetadata[assetID]; !ok {
				return &ValidationError{
					"child_assets", string(parent),
					fmt.Sprintf("references asset %q with no asset_metadata entry", assetID),
				}
			}
		}
	}
	for _, assetID := range sortedKeys(idx.ChildAssetData) {
		if _, ok := idx.AssetMetadata[assetID]; !ok {
			return &ValidationError{
				"child_asset_data", string(assetID), "no asset_metadata entry",
			}
		}
		for _, dataID := range idx.ChildAssetData[assetID] {
			if _, ok := idx.AssetData[dataID]; !ok {
				return &ValidationError{
					"child_asset_data", string(assetID),
					fmt.Sprintf("references asset data %q with no asset_data entry", dataID),
				}
			}
		}
	}
	for _, parent := range sortedKeys(idx.ChildCategories) {
		for _, child := range idx.ChildCategories[parent] {
			if _, ok := idx.CategoryMetadata[child]; !ok {
				return &ValidationError{
					"child_categories", string(parent),
					fmt.Sprintf("references category %q with no category_metadata entry", child),
				}
			}
		}
	}
	return nil
}

// ParseAssetType maps an index type string to the catalog asset type. Older
// indexes prefix the type with the target application, e.g. "blender_model",
// the prefix is ignored.
func ParseAssetType(s string) (catalog.AssetType, bool) {
	s = strings.TrimPrefix(s, "blender_")
	switch t := catalog.AssetType(s); t {
	case catalog.AssetTypeUnknown,
		catalog.AssetTypeModel,
		catalog.AssetTypeMaterial,
		catalog.AssetTypeParticleSystem,
		catalog.AssetTypeScene,
		catalog.AssetTypeWorld,
		catalog.AssetTypeGeometryNodes:
		return t, true
	default:
		return catalog.AssetTypeUnknown, false
	}
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
