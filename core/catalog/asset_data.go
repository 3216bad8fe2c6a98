package catalog

import "strings"

// AssetDataID is an opaque identifier of one asset data record.
type AssetDataID string

// FileID is a string identifier of a file that a FileProvider can materialize.
// The catalog never touches the file contents itself.
type FileID string

// AssetType describes what kind of content an asset (or one of its data
// records) materializes into.
type AssetType string

const (
	AssetTypeUnknown        AssetType = "unknown"
	AssetTypeModel          AssetType = "model"
	AssetTypeMaterial       AssetType = "material"
	AssetTypeParticleSystem AssetType = "particle_system"
	AssetTypeScene          AssetType = "scene"
	AssetTypeWorld          AssetType = "world"
	AssetTypeGeometryNodes  AssetType = "geometry_nodes"
)

// SearchTokens returns the lowercase searchable tokens of the type, each with
// the default search weight.
//
//	"material" -> {"material": 1.0}
//	"particle_system" -> {"particle": 1.0, "system": 1.0}
func (t AssetType) SearchTokens() map[string]float64 {
	ret := map[string]float64{}
	for _, token := range strings.Split(string(t), "_") {
		if token == "" {
			continue
		}
		ret[token] = DefaultSearchWeight
	}
	return ret
}

// AssetData describes one concrete, materializable payload of an asset, e.g.
// one LOD or one variant. One Asset owns 1..N AssetData records, related purely
// by ID lookup through the provider.
type AssetData struct {
	ID   AssetDataID
	Type AssetType

	// PrimaryFile is the file that has to be materialized to use this payload.
	PrimaryFile FileID
	// DependencyFiles are additional files the primary file depends on, e.g.
	// textures or linked libraries.
	DependencyFiles []FileID
}
