package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-catalog/core/catalog"
)

func TestMultiplexerEnumeration(t *testing.T) {
	first := newFakeProvider()
	first.addCategory(catalog.Category{ID: "/pack", Title: "Pack"})
	first.addAsset("/pack", catalog.Asset{ID: "/pack/Couch", Title: "Couch", Type: catalog.AssetTypeModel})

	second := newFakeProvider()
	second.addCategory(catalog.Category{ID: "/pack", Title: "Pack Patched"})
	second.addCategory(catalog.Category{ID: "/other", Title: "Other"})
	second.addAsset("/pack", catalog.Asset{ID: "/pack/Table", Title: "Table", Type: catalog.AssetTypeModel})

	m := NewMultiplexer(first, second)

	t.Run("CategoryUnionDeduplicatedFirstSeen", func(t *testing.T) {
		assert.Equal(t,
			[]catalog.CategoryID{"/pack", "/other"},
			m.ListChildCategoryIDs(catalog.RootCategoryID))
	})

	t.Run("AssetUnion", func(t *testing.T) {
		assert.Equal(t,
			[]catalog.AssetID{"/pack/Couch", "/pack/Table"},
			m.ListChildAssetIDs("/pack"))
	})
}

func TestMultiplexerLookupLastRegisteredWins(t *testing.T) {
	base := newFakeProvider()
	base.addCategory(catalog.Category{ID: "/pack", Title: "Original"})

	patch := newFakeProvider()
	patch.addCategory(catalog.Category{ID: "/pack", Title: "Patched"})

	m := NewMultiplexer(base, patch)
	assert.Equal(t, "Patched", m.GetCategory("/pack").Title)

	m.RemoveAssetProvider(patch)
	assert.Equal(t, "Original", m.GetCategory("/pack").Title)
}

func TestMultiplexerUnknownLookups(t *testing.T) {
	m := NewMultiplexer(furniturePack())

	assert.Nil(t, m.GetCategory("/nope"))
	assert.Nil(t, m.GetAsset("/nope"))
	assert.Nil(t, m.GetAssetData("/nope"))
}

func TestMultiplexerClearProviders(t *testing.T) {
	m := NewMultiplexer(furniturePack())
	assert.NotNil(t, m.GetAsset("/pack/Couch"))

	m.ClearProviders()
	assert.Nil(t, m.GetAsset("/pack/Couch"))
	assert.Empty(t, m.ListChildCategoryIDs(catalog.RootCategoryID))
}
