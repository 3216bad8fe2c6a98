// Package provider defines the provider abstraction the catalog is assembled
// from. An AssetProvider serves categories, assets and asset data from one
// source, typically one installed asset pack. The Multiplexer merges several
// providers into one catalog, the CachedMultiplexer adds query memoization on
// top, and the FileProvider side of the package resolves file IDs referenced
// by asset metadata into local paths.
package provider
