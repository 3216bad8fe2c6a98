package filter

import "asset-catalog/core/catalog"

// assetTypesFilterName is the unique canonical key of AssetTypesFilter.
const assetTypesFilterName = "builtin:asset_types"

// AssetTypesFilter passes assets whose type matches one of the enabled flags.
// With no flag enabled the filter is at its default configuration and passes
// everything.
type AssetTypesFilter struct {
	Model          bool
	Material       bool
	ParticleSystem bool
	Scene          bool
	World          bool
	GeometryNodes  bool
}

// NewAssetTypesFilter creates a filter passing only the given types. With no
// types given it passes everything.
func NewAssetTypesFilter(types ...catalog.AssetType) *AssetTypesFilter {
	f := &AssetTypesFilter{}
	for _, t := range types {
		switch t {
		case catalog.AssetTypeModel:
			f.Model = true
		case catalog.AssetTypeMaterial:
			f.Material = true
		case catalog.AssetTypeParticleSystem:
			f.ParticleSystem = true
		case catalog.AssetTypeScene:
			f.Scene = true
		case catalog.AssetTypeWorld:
			f.World = true
		case catalog.AssetTypeGeometryNodes:
			f.GeometryNodes = true
		}
	}
	return f
}

// Match reports whether the asset's type is enabled.
func (f *AssetTypesFilter) Match(a *catalog.Asset) bool {
	enabled := false
	for _, flag := range f.flags() {
		if flag {
			enabled = true
			break
		}
	}
	if !enabled {
		return true
	}

	switch a.Type {
	case catalog.AssetTypeModel:
		return f.Model
	case catalog.AssetTypeMaterial:
		return f.Material
	case catalog.AssetTypeParticleSystem:
		return f.ParticleSystem
	case catalog.AssetTypeScene:
		return f.Scene
	case catalog.AssetTypeWorld:
		return f.World
	case catalog.AssetTypeGeometryNodes:
		return f.GeometryNodes
	default:
		return false
	}
}

// AsDict returns the canonical representation of the filter.
func (f *AssetTypesFilter) AsDict() map[string]any {
	return map[string]any{assetTypesFilterName: f.flags()}
}

func (f *AssetTypesFilter) flags() []bool {
	return []bool{f.Model, f.Material, f.ParticleSystem, f.Scene, f.World, f.GeometryNodes}
}
