package provider

import "asset-catalog/core/catalog"

// Multiplexer merges multiple asset providers into one logical provider.
//
// Enumeration is a union across all members; category id unions are
// deduplicated, since two providers can legitimately contribute to the same
// category. Point lookups iterate members in reverse registration order and
// return the first hit: the most recently added provider overrides earlier
// ones, so a later "patch" provider can override specific metadata without
// also overriding enumeration.
//
// The zero value is a multiplexer with no providers. Not safe for concurrent
// mutation; see CachedMultiplexer for the concurrent entry point.
type Multiplexer struct {
	providers []AssetProvider
}

// NewMultiplexer creates a multiplexer over the given providers, registered in
// order.
func NewMultiplexer(providers ...AssetProvider) *Multiplexer {
	m := &Multiplexer{}
	for _, p := range providers {
		m.AddAssetProvider(p)
	}
	return m
}

// AddAssetProvider registers a provider. Later registrations win point
// lookups.
func (m *Multiplexer) AddAssetProvider(p AssetProvider) {
	m.providers = append(m.providers, p)
}

// RemoveAssetProvider removes a previously registered provider.
func (m *Multiplexer) RemoveAssetProvider(p AssetProvider) {
	for i, existing := range m.providers {
		if existing == p {
			m.providers = append(m.providers[:i], m.providers[i+1:]...)
			return
		}
	}
}

// ClearProviders removes all registered providers.
func (m *Multiplexer) ClearProviders() {
	m.providers = nil
}

// ListChildCategoryIDs returns the deduplicated union of child category ids
// across all providers, in first-seen order.
func (m *Multiplexer) ListChildCategoryIDs(parent catalog.CategoryID) []catalog.CategoryID {
	seen := map[catalog.CategoryID]struct{}{}
	ret := []catalog.CategoryID{}
	for _, p := range m.providers {
		for _, id := range p.ListChildCategoryIDs(parent) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ret = append(ret, id)
		}
	}
	return ret
}

// ListChildAssetIDs returns the union of child asset ids across all providers.
// No two providers are assumed to provide the same asset id.
func (m *Multiplexer) ListChildAssetIDs(parent catalog.CategoryID) []catalog.AssetID {
	ret := []catalog.AssetID{}
	for _, p := range m.providers {
		ret = append(ret, p.ListChildAssetIDs(parent)...)
	}
	return ret
}

// ListAssetDataIDs returns the union of asset data ids across all providers.
func (m *Multiplexer) ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID {
	ret := []catalog.AssetDataID{}
	for _, p := range m.providers {
		ret = append(ret, p.ListAssetDataIDs(id)...)
	}
	return ret
}

// GetCategory returns the category from the most recently added provider that
// knows it.
func (m *Multiplexer) GetCategory(id catalog.CategoryID) *catalog.Category {
	for i := len(m.providers) - 1; i >= 0; i-- {
		if ret := m.providers[i].GetCategory(id); ret != nil {
			return ret
		}
	}
	return nil
}

// GetAsset returns the asset from the most recently added provider that knows
// it.
func (m *Multiplexer) GetAsset(id catalog.AssetID) *catalog.Asset {
	for i := len(m.providers) - 1; i >= 0; i-- {
		if ret := m.providers[i].GetAsset(id); ret != nil {
			return ret
		}
	}
	return nil
}

// GetAssetData returns the asset data from the most recently added provider
// that knows it.
func (m *Multiplexer) GetAssetData(id catalog.AssetDataID) *catalog.AssetData {
	for i := len(m.providers) - 1; i >= 0; i-- {
		if ret := m.providers[i].GetAssetData(id); ret != nil {
			return ret
		}
	}
	return nil
}
