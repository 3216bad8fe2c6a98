package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-catalog/core/catalog"
)

func TestParseAssetType(t *testing.T) {
	tests := []struct {
		raw  string
		want catalog.AssetType
		ok   bool
	}{
		{"model", catalog.AssetTypeModel, true},
		{"material", catalog.AssetTypeMaterial, true},
		{"world", catalog.AssetTypeWorld, true},
		{"unknown", catalog.AssetTypeUnknown, true},
		{"blender_model", catalog.AssetTypeModel, true},
		{"blender_particle_system", catalog.AssetTypeParticleSystem, true},
		{"spaceship", catalog.AssetTypeUnknown, false},
		{"", catalog.AssetTypeUnknown, false},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, ok := ParseAssetType(test.raw)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, got)
		})
	}
}

// validIndex returns a minimal index passing validation, mutated by tests to
// produce specific failures.
func validIndex() *Index {
	return &Index{
		ChildCategories: map[catalog.CategoryID][]catalog.CategoryID{
			"/": {"/pack"},
		},
		ChildAssets: map[catalog.CategoryID][]catalog.AssetID{
			"/pack": {"/pack/Couch"},
		},
		ChildAssetData: map[catalog.AssetID][]catalog.AssetDataID{
			"/pack/Couch": {"/pack/Couch:blend"},
		},
		CategoryMetadata: map[catalog.CategoryID]CategoryMetadata{
			"/pack": {Title: "Pack"},
		},
		AssetMetadata: map[catalog.AssetID]AssetMetadata{
			"/pack/Couch": {Title: "Couch", Type: "model"},
		},
		AssetData: map[catalog.AssetDataID]AssetDataEntry{
			"/pack/Couch:blend": {Type: "model", PrimaryFile: "/pack:blends/Couch.blend"},
		},
	}
}

func requireValidationError(t *testing.T, err error, section, key string) {
	t.Helper()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, section, validationErr.Section)
	assert.Equal(t, key, validationErr.Key)
}

func TestIndexValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validIndex().Validate())
	})

	t.Run("AssetMissingTitle", func(t *testing.T) {
		idx := validIndex()
		idx.AssetMetadata["/pack/Couch"] = AssetMetadata{Type: "model"}
		requireValidationError(t, idx.Validate(), "asset_metadata", "/pack/Couch")
	})

	t.Run("AssetUnknownType", func(t *testing.T) {
		idx := validIndex()
		idx.AssetMetadata["/pack/Couch"] = AssetMetadata{Title: "Couch", Type: "spaceship"}
		requireValidationError(t, idx.Validate(), "asset_metadata", "/pack/Couch")
	})

	t.Run("AssetDataMissingPrimaryFile", func(t *testing.T) {
		idx := validIndex()
		idx.AssetData["/pack/Couch:blend"] = AssetDataEntry{Type: "model"}
		requireValidationError(t, idx.Validate(), "asset_data", "/pack/Couch:blend")
	})

	t.Run("ChildAssetWithoutMetadata", func(t *testing.T) {
		idx := validIndex()
		idx.ChildAssets["/pack"] = append(idx.ChildAssets["/pack"], "/pack/Ghost")
		requireValidationError(t, idx.Validate(), "child_assets", "/pack")
	})

	t.Run("ChildAssetDataOfUnknownAsset", func(t *testing.T) {
		idx := validIndex()
		idx.ChildAssetData["/pack/Ghost"] = []catalog.AssetDataID{"/pack/Couch:blend"}
		requireValidationError(t, idx.Validate(), "child_asset_data", "/pack/Ghost")
	})

	t.Run("ChildAssetDataWithoutEntry", func(t *testing.T) {
		idx := validIndex()
		idx.ChildAssetData["/pack/Couch"] = append(idx.ChildAssetData["/pack/Couch"], "/pack/Couch:ghost")
		requireValidationError(t, idx.Validate(), "child_asset_data", "/pack/Couch")
	})

	t.Run("ChildCategoryWithoutMetadata", func(t *testing.T) {
		idx := validIndex()
		idx.ChildCategories["/pack"] = []catalog.CategoryID{"/pack/ghost"}
		requireValidationError(t, idx.Validate(), "child_categories", "/pack")
	})
}

func TestParseIndex(t *testing.T) {
	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := ParseIndex([]byte("{not json"))
		assert.ErrorContains(t, err, "failed to decode index JSON")
	})

	t.Run("ValidDocument", func(t *testing.T) {
		idx, err := ParseIndex([]byte(`{
			"child_categories": {"/": ["/pack"]},
			"child_assets": {"/pack": ["/pack/Couch"]},
			"child_asset_data": {"/pack/Couch": ["/pack/Couch:blend"]},
			"category_metadata": {"/pack": {"title": "Pack"}},
			"asset_metadata": {
				"/pack/Couch": {
					"title": "Couch",
					"type": "blender_model",
					"tags": ["Furniture"],
					"numeric_parameters": {"width": 1.8},
					"color_parameters": {"viewport_color": [1, 0, 0]}
				}
			},
			"asset_data": {
				"/pack/Couch:blend": {
					"type": "blender_model",
					"primary_file": "/pack:blends/Couch.blend",
					"dependency_files": ["/pack:textures/couch.png"]
				}
			}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Couch", idx.AssetMetadata["/pack/Couch"].Title)
		assert.Equal(t, []float64{1, 0, 0}, idx.AssetMetadata["/pack/Couch"].ColorParameters["viewport_color"])
		assert.Equal(t, "/pack:blends/Couch.blend", idx.AssetData["/pack/Couch:blend"].PrimaryFile)
	})

	t.Run("InvalidDocumentRejected", func(t *testing.T) {
		_, err := ParseIndex([]byte(`{"asset_metadata": {"/pack/X": {"type": "model"}}}`))
		requireValidationError(t, err, "asset_metadata", "/pack/X")
	})
}
