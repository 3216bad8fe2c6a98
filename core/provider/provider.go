package provider

import (
	"sort"

	"asset-catalog/core/catalog"
)

// AssetProvider is a source of categories, assets and asset data.
//
// All operations are pure and read-only. Lookup methods return nil for unknown
// ids - absence is a normal, expected outcome (e.g. asset pack not installed) -
// and never fail otherwise. Enumerations list direct children only; the
// recursive variants are the package-level helpers below.
//
// The category tree of every provider is rooted at catalog.RootCategoryID.
type AssetProvider interface {
	// ListChildCategoryIDs lists ids of all categories that are direct
	// children of the parent category. Low level API, consider ListCategories.
	ListChildCategoryIDs(parent catalog.CategoryID) []catalog.CategoryID
	// ListChildAssetIDs lists ids of all assets that are direct children of
	// the parent category. Low level API, consider ListAssets.
	ListChildAssetIDs(parent catalog.CategoryID) []catalog.AssetID
	// ListAssetDataIDs lists all asset data ids of the asset. Low level API,
	// consider ListAssetData.
	ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID

	// GetCategory returns metadata of the category, nil when unknown.
	GetCategory(id catalog.CategoryID) *catalog.Category
	// GetAsset returns metadata of the asset, nil when unknown.
	GetAsset(id catalog.AssetID) *catalog.Asset
	// GetAssetData returns the asset data record, nil when unknown.
	GetAssetData(id catalog.AssetDataID) *catalog.AssetData
}

// ListCategories lists child categories of the parent category. With recursive
// set, all descendant categories are included.
func ListCategories(p AssetProvider, parent catalog.CategoryID, recursive bool) []*catalog.Category {
	ret := []*catalog.Category{}
	for _, id := range p.ListChildCategoryIDs(parent) {
		if category := p.GetCategory(id); category != nil {
			ret = append(ret, category)
		}
		if recursive {
			ret = append(ret, ListCategories(p, id, true)...)
		}
	}
	return ret
}

// ListSortedCategories lists direct child categories ordered by title.
func ListSortedCategories(p AssetProvider, parent catalog.CategoryID) []*catalog.Category {
	ret := ListCategories(p, parent, false)
	sort.Slice(ret, func(i, j int) bool { return ret[i].Title < ret[j].Title })
	return ret
}

// ListAssets lists child assets of the parent category. With recursive set,
// assets contained in all descendant categories are included as well.
func ListAssets(p AssetProvider, parent catalog.CategoryID, recursive bool) []*catalog.Asset {
	ret := []*catalog.Asset{}
	for _, id := range p.ListChildAssetIDs(parent) {
		if asset := p.GetAsset(id); asset != nil {
			ret = append(ret, asset)
		}
	}
	if recursive {
		for _, id := range p.ListChildCategoryIDs(parent) {
			ret = append(ret, ListAssets(p, id, true)...)
		}
	}
	return ret
}

// ListAssetData lists the asset data records of the asset.
func ListAssetData(p AssetProvider, id catalog.AssetID) []*catalog.AssetData {
	ret := []*catalog.AssetData{}
	for _, dataID := range p.ListAssetDataIDs(id) {
		if data := p.GetAssetData(dataID); data != nil {
			ret = append(ret, data)
		}
	}
	return ret
}

// GetCategorySafe returns the category with the given id, falling back to the
// provider's root category and finally to catalog.DefaultRootCategory.
// Callers displaying categories never receive nil from this.
func GetCategorySafe(p AssetProvider, id catalog.CategoryID) *catalog.Category {
	if category := p.GetCategory(id); category != nil {
		return category
	}
	if root := p.GetCategory(catalog.RootCategoryID); root != nil {
		return root
	}
	fallback := catalog.DefaultRootCategory
	return &fallback
}

// GetCategoryIDSafe returns the id if a category with it exists, the root
// category id otherwise.
func GetCategoryIDSafe(p AssetProvider, id catalog.CategoryID) catalog.CategoryID {
	if category := p.GetCategory(id); category != nil {
		return category.ID
	}
	return catalog.RootCategoryID
}
