package browser

import (
	"context"

	"go.uber.org/zap"

	"asset-catalog/core/catalog"
	"asset-catalog/core/provider"
	"asset-catalog/core/query"
)

// Service runs catalog operations against the registered providers.
type Service struct {
	catalog *provider.CachedMultiplexer
	files   *provider.FileMultiplexer
	logger  *zap.Logger
}

// NewService creates a new browser service.
func NewService(cat *provider.CachedMultiplexer, files *provider.FileMultiplexer, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		files:   files,
		logger:  logger,
	}
}

// ListCategories returns the categories under the given one, the whole
// subtree when recursive.
func (s *Service) ListCategories(parent catalog.CategoryID, recursive bool) []*catalog.Category {
	if recursive {
		return provider.ListCategories(s.catalog, parent, true)
	}
	return provider.ListSortedCategories(s.catalog, parent)
}

// Query runs the query through the cached multiplexer.
func (s *Service) Query(q *query.Query) *provider.DataView {
	return s.catalog.Query(q)
}

// GetAsset returns the asset, nil when unknown.
func (s *Service) GetAsset(id catalog.AssetID) *catalog.Asset {
	return s.catalog.GetAsset(id)
}

// ListAssetDataIDs returns the data record IDs of an asset.
func (s *Service) ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID {
	return s.catalog.ListAssetDataIDs(id)
}

// GetAssetData returns the asset data record, nil when unknown.
func (s *Service) GetAssetData(id catalog.AssetDataID) *catalog.AssetData {
	return s.catalog.GetAssetData(id)
}

// MaterializeFile resolves a file ID to a local path, "" when no provider
// knows it. A basename is resolved to a full ID first.
func (s *Service) MaterializeFile(ctx context.Context, id string) (string, error) {
	fileID := catalog.FileID(id)
	if resolved := s.files.GetFileIDFromBasename(id); resolved != "" {
		fileID = resolved
	}
	return s.files.MaterializeFile(ctx, fileID)
}
