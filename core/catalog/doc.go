// Package catalog defines the asset metadata data model.
//
// It contains the immutable value types describing reusable content assets
// and the vocabulary around them:
//
//   - Asset: one spawnable piece of content with its title, tags and typed
//     parameters (numeric, vector, text, location), plus the derived search
//     matter used by full text search.
//   - AssetData: one concrete materializable payload belonging to an Asset.
//   - Category: a node of the category tree assets are organized into.
//   - AssetParametersMeta: aggregated parameter ranges/values over a set of
//     assets, used to build filter interfaces.
//
// # Identifiers
//
// AssetID, AssetDataID, CategoryID and FileID are opaque strings, globally
// unique within a provider's namespace. The category tree is rooted at the
// synthetic RootCategoryID ("/") shared by all providers.
//
// # Knowledge table
//
// The package also carries the static knowledge table about well-known tags and
// parameters: descriptions, units, grouping for filter interfaces and search
// weights. Search weight 0 excludes a value from search matter entirely.
//
// # Immutability
//
// Asset, AssetData and Category are created by a provider when its backing
// index loads, are immutable afterwards and are replaced wholesale when the
// provider refreshes. Asset search matter and combined parameters are derived
// once in NewAsset.
package catalog
