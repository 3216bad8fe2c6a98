package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-catalog/core/catalog"
)

// fakeProvider is an in-memory AssetProvider for tests.
type fakeProvider struct {
	categories      map[catalog.CategoryID]*catalog.Category
	childCategories map[catalog.CategoryID][]catalog.CategoryID
	assets          map[catalog.AssetID]*catalog.Asset
	childAssets     map[catalog.CategoryID][]catalog.AssetID
	assetData       map[catalog.AssetDataID]*catalog.AssetData
	childAssetData  map[catalog.AssetID][]catalog.AssetDataID
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		categories:      map[catalog.CategoryID]*catalog.Category{},
		childCategories: map[catalog.CategoryID][]catalog.CategoryID{},
		assets:          map[catalog.AssetID]*catalog.Asset{},
		childAssets:     map[catalog.CategoryID][]catalog.AssetID{},
		assetData:       map[catalog.AssetDataID]*catalog.AssetData{},
		childAssetData:  map[catalog.AssetID][]catalog.AssetDataID{},
	}
}

func (f *fakeProvider) addCategory(c catalog.Category) *fakeProvider {
	f.categories[c.ID] = &c
	parent := catalog.InferParentCategoryID(c.ID)
	f.childCategories[parent] = append(f.childCategories[parent], c.ID)
	return f
}

func (f *fakeProvider) addAsset(parent catalog.CategoryID, a catalog.Asset) *fakeProvider {
	f.assets[a.ID] = catalog.NewAsset(a)
	f.childAssets[parent] = append(f.childAssets[parent], a.ID)
	return f
}

func (f *fakeProvider) addAssetData(owner catalog.AssetID, d catalog.AssetData) *fakeProvider {
	f.assetData[d.ID] = &d
	f.childAssetData[owner] = append(f.childAssetData[owner], d.ID)
	return f
}

func (f *fakeProvider) ListChildCategoryIDs(parent catalog.CategoryID) []catalog.CategoryID {
	return f.childCategories[parent]
}

func (f *fakeProvider) ListChildAssetIDs(parent catalog.CategoryID) []catalog.AssetID {
	return f.childAssets[parent]
}

func (f *fakeProvider) ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID {
	return f.childAssetData[id]
}

func (f *fakeProvider) GetCategory(id catalog.CategoryID) *catalog.Category {
	return f.categories[id]
}

func (f *fakeProvider) GetAsset(id catalog.AssetID) *catalog.Asset {
	return f.assets[id]
}

func (f *fakeProvider) GetAssetData(id catalog.AssetDataID) *catalog.AssetData {
	return f.assetData[id]
}

// furniturePack builds a small two-level provider used across the tests.
func furniturePack() *fakeProvider {
	p := newFakeProvider()
	p.addCategory(catalog.Category{ID: "/pack", Title: "Pack"})
	p.addCategory(catalog.Category{ID: "/pack/seating", Title: "Seating"})
	p.addCategory(catalog.Category{ID: "/pack/tables", Title: "Tables"})
	p.addAsset("/pack/seating", catalog.Asset{
		ID: "/pack/Couch", Title: "Couch", Type: catalog.AssetTypeModel,
	})
	p.addAsset("/pack/tables", catalog.Asset{
		ID: "/pack/Table", Title: "Table", Type: catalog.AssetTypeModel,
	})
	p.addAssetData("/pack/Couch", catalog.AssetData{
		ID: "/pack/Couch:blend", Type: catalog.AssetTypeModel, PrimaryFile: "/pack:blends/Couch.blend",
	})
	return p
}

func TestListCategories(t *testing.T) {
	p := furniturePack()

	t.Run("DirectChildrenOnly", func(t *testing.T) {
		categories := ListCategories(p, "/pack", false)
		assert.Len(t, categories, 2)
	})

	t.Run("Recursive", func(t *testing.T) {
		categories := ListCategories(p, catalog.RootCategoryID, true)
		assert.Len(t, categories, 3)
	})
}

func TestListSortedCategories(t *testing.T) {
	p := newFakeProvider()
	p.addCategory(catalog.Category{ID: "/pack", Title: "Pack"})
	p.addCategory(catalog.Category{ID: "/pack/zebra", Title: "Zebra"})
	p.addCategory(catalog.Category{ID: "/pack/apple", Title: "Apple"})

	categories := ListSortedCategories(p, "/pack")
	assert.Equal(t, "Apple", categories[0].Title)
	assert.Equal(t, "Zebra", categories[1].Title)
}

func TestListAssets(t *testing.T) {
	p := furniturePack()

	t.Run("DirectChildrenOnly", func(t *testing.T) {
		assert.Empty(t, ListAssets(p, "/pack", false))
		assert.Len(t, ListAssets(p, "/pack/seating", false), 1)
	})

	t.Run("Recursive", func(t *testing.T) {
		assets := ListAssets(p, catalog.RootCategoryID, true)
		assert.Len(t, assets, 2)
	})
}

func TestListAssetData(t *testing.T) {
	p := furniturePack()

	data := ListAssetData(p, "/pack/Couch")
	assert.Len(t, data, 1)
	assert.Equal(t, catalog.AssetDataID("/pack/Couch:blend"), data[0].ID)

	assert.Empty(t, ListAssetData(p, "/pack/Table"))
}

func TestGetCategorySafe(t *testing.T) {
	t.Run("KnownID", func(t *testing.T) {
		p := furniturePack()
		assert.Equal(t, "Seating", GetCategorySafe(p, "/pack/seating").Title)
	})

	t.Run("UnknownIDFallsBackToRoot", func(t *testing.T) {
		p := newFakeProvider()
		p.addCategory(catalog.Category{ID: catalog.RootCategoryID, Title: "Everything"})
		assert.Equal(t, "Everything", GetCategorySafe(p, "/nope").Title)
	})

	t.Run("NoRootFallsBackToDefault", func(t *testing.T) {
		p := newFakeProvider()
		category := GetCategorySafe(p, "/nope")
		assert.Equal(t, catalog.DefaultRootCategory.ID, category.ID)
		assert.Equal(t, catalog.DefaultRootCategory.Title, category.Title)
	})
}

func TestGetCategoryIDSafe(t *testing.T) {
	p := furniturePack()
	assert.Equal(t, catalog.CategoryID("/pack/tables"), GetCategoryIDSafe(p, "/pack/tables"))
	assert.Equal(t, catalog.RootCategoryID, GetCategoryIDSafe(p, "/does/not/exist"))
}
