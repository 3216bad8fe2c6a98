package provider

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"asset-catalog/core/catalog"
	"asset-catalog/core/query"
)

// DefaultQueryCacheSize bounds the query cache of a CachedMultiplexer unless
// configured otherwise.
const DefaultQueryCacheSize = 128

// CachedMultiplexer wraps a multiplexer's query entry point with an LRU
// memoization keyed by the query's canonical representation.
//
// A cache hit returns the previously computed DataView instance; a cache miss
// computes, stores and returns a new one, evicting the least recently used
// entry when over capacity. Concurrent misses for the same key coalesce into a
// single computation. Registering or removing a provider invalidates the whole
// cache - coarse invalidation, atomic with respect to in-flight queries: a
// computation started before the invalidation cannot repopulate the cache with
// a stale view.
//
// Safe for concurrent use.
type CachedMultiplexer struct {
	mu         sync.Mutex
	mux        *Multiplexer
	cache      *lru.Cache[string, *DataView]
	generation uint64

	sf  singleflight.Group
	log *zap.Logger
}

// NewCachedMultiplexer creates an empty cached multiplexer with the given
// cache capacity (DefaultQueryCacheSize when <= 0). A nil logger disables
// logging.
func NewCachedMultiplexer(maxSize int, log *zap.Logger) *CachedMultiplexer {
	if maxSize <= 0 {
		maxSize = DefaultQueryCacheSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	cache, err := lru.New[string, *DataView](maxSize)
	if err != nil {
		panic(err)
	}
	return &CachedMultiplexer{
		mux:   NewMultiplexer(),
		cache: cache,
		log:   log,
	}
}

// Query returns the data view for the query, computing it at most once per
// cache generation.
func (c *CachedMultiplexer) Query(q *query.Query) *DataView {
	key := q.Key()

	c.mu.Lock()
	if view, ok := c.cache.Get(key); ok {
		c.mu.Unlock()
		return view
	}
	startGeneration := c.generation
	c.mu.Unlock()

	c.log.Debug("query cache miss", zap.String("query", key))

	view, _, _ := c.sf.Do(key, func() (any, error) {
		// double-check after acquiring the singleflight slot
		c.mu.Lock()
		if cached, ok := c.cache.Get(key); ok {
			c.mu.Unlock()
			return cached, nil
		}
		// compute over a snapshot of the registered providers so a
		// concurrent registration cannot mutate the set mid-walk
		snapshot := NewMultiplexer(c.mux.providers...)
		c.mu.Unlock()

		computed := NewDataView(snapshot, q)

		c.mu.Lock()
		// a provider registered or removed while computing invalidated the
		// cache, the view is still returned but must not be stored
		if c.generation == startGeneration {
			c.cache.Add(key, computed)
		}
		c.mu.Unlock()
		return computed, nil
	})
	return view.(*DataView)
}

// AddAssetProvider registers a provider and invalidates the cache.
func (c *CachedMultiplexer) AddAssetProvider(p AssetProvider) {
	c.mu.Lock()
	c.mux.AddAssetProvider(p)
	c.invalidateLocked()
	c.mu.Unlock()
}

// RemoveAssetProvider removes a provider and invalidates the cache.
func (c *CachedMultiplexer) RemoveAssetProvider(p AssetProvider) {
	c.mu.Lock()
	c.mux.RemoveAssetProvider(p)
	c.invalidateLocked()
	c.mu.Unlock()
}

// ClearProviders removes all providers and invalidates the cache.
func (c *CachedMultiplexer) ClearProviders() {
	c.mu.Lock()
	c.mux.ClearProviders()
	c.invalidateLocked()
	c.mu.Unlock()
}

// ClearCache drops all memoized views. Background refreshers of provider
// indexes call this once a refresh completes.
func (c *CachedMultiplexer) ClearCache() {
	c.mu.Lock()
	c.invalidateLocked()
	c.mu.Unlock()
}

func (c *CachedMultiplexer) invalidateLocked() {
	c.cache.Purge()
	c.generation++
}

// The multiplexer's provider interface is exposed unchanged so the cached
// variant can stand in wherever an AssetProvider is expected.

// ListChildCategoryIDs implements AssetProvider.
func (c *CachedMultiplexer) ListChildCategoryIDs(parent catalog.CategoryID) []catalog.CategoryID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.ListChildCategoryIDs(parent)
}

// ListChildAssetIDs implements AssetProvider.
func (c *CachedMultiplexer) ListChildAssetIDs(parent catalog.CategoryID) []catalog.AssetID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.ListChildAssetIDs(parent)
}

// ListAssetDataIDs implements AssetProvider.
func (c *CachedMultiplexer) ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.ListAssetDataIDs(id)
}

// GetCategory implements AssetProvider.
func (c *CachedMultiplexer) GetCategory(id catalog.CategoryID) *catalog.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.GetCategory(id)
}

// GetAsset implements AssetProvider.
func (c *CachedMultiplexer) GetAsset(id catalog.AssetID) *catalog.Asset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.GetAsset(id)
}

// GetAssetData implements AssetProvider.
func (c *CachedMultiplexer) GetAssetData(id catalog.AssetDataID) *catalog.AssetData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mux.GetAssetData(id)
}
