package index

import (
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"

	"asset-catalog/core/catalog"
)

// snapshot is the immutable in-memory form of one loaded index. A refresh
// builds a whole new snapshot and swaps it in, there is no partial mutation.
type snapshot struct {
	childCategories map[catalog.CategoryID][]catalog.CategoryID
	childAssets     map[catalog.CategoryID][]catalog.AssetID
	childAssetData  map[catalog.AssetID][]catalog.AssetDataID

	categories map[catalog.CategoryID]*catalog.Category
	assets     map[catalog.AssetID]*catalog.Asset
	assetData  map[catalog.AssetDataID]*catalog.AssetData

	// basenames maps a file's basename to its full file ID so datablocks that
	// reference files by bare name can be resolved.
	basenames map[string]catalog.FileID
}

// buildSnapshot converts a validated index into catalog values. filePrefix is
// the prefix all file IDs of this index carry, e.g. "/aquatiq".
func buildSnapshot(idx *Index, filePrefix string, log *zap.Logger) *snapshot {
	snap := &snapshot{
		childCategories: idx.ChildCategories,
		childAssets:     idx.ChildAssets,
		childAssetData:  idx.ChildAssetData,
		categories:      map[catalog.CategoryID]*catalog.Category{},
		assets:          map[catalog.AssetID]*catalog.Asset{},
		assetData:       map[catalog.AssetDataID]*catalog.AssetData{},
		basenames:       map[string]catalog.FileID{},
	}

	for id, meta := range idx.CategoryMetadata {
		title := meta.Title
		if title == "" {
			title = "unknown"
		}
		snap.categories[id] = &catalog.Category{
			ID:          id,
			Title:       title,
			PreviewFile: catalog.FileID(meta.PreviewFile),
		}
	}

	assetCategories := mapAssetsToCategories(idx)

	for id, meta := range idx.AssetMetadata {
		assetType, _ := ParseAssetType(meta.Type)

		// packs indexed before vector parameters existed use the legacy
		// color_parameters spelling, a color wins over a vector of the same
		// name
		vectorParameters := catalog.VectorParameters{}
		for name, value := range meta.VectorParameters {
			vectorParameters[name] = value
		}
		for name, value := range meta.ColorParameters {
			vectorParameters[name] = value
		}

		locationParameters := catalog.LocationParameters{}
		for name, pairs := range meta.LocationParameters {
			locations := make([]catalog.Location, 0, len(pairs))
			for _, pair := range pairs {
				locations = append(locations, catalog.Location{Lat: pair[0], Lon: pair[1]})
			}
			locationParameters[name] = locations
		}

		// titles of the categories holding the asset, parents included, are
		// searchable on the asset itself
		foreignSearchMatter := map[string]float64{}
		for categoryID := range assetCategories[id] {
			if category, ok := snap.categories[categoryID]; ok {
				foreignSearchMatter[category.Title] = catalog.CategoryTitleSearchWeight
			}
		}

		snap.assets[id] = catalog.NewAsset(catalog.Asset{
			ID:                  id,
			Title:               meta.Title,
			Type:                assetType,
			PreviewFile:         catalog.FileID(meta.PreviewFile),
			Tags:                catalog.NewTagSet(meta.Tags...),
			NumericParameters:   meta.NumericParameters,
			VectorParameters:    vectorParameters,
			TextParameters:      meta.TextParameters,
			LocationParameters:  locationParameters,
			ForeignSearchMatter: foreignSearchMatter,
		})
	}

	for id, entry := range idx.AssetData {
		dataType, _ := ParseAssetType(entry.Type)
		dependencyFiles := make([]catalog.FileID, 0, len(entry.DependencyFiles))
		for _, dep := range entry.DependencyFiles {
			dependencyFiles = append(dependencyFiles, catalog.FileID(dep))
		}
		snap.assetData[id] = &catalog.AssetData{
			ID:              id,
			Type:            dataType,
			PrimaryFile:     catalog.FileID(entry.PrimaryFile),
			DependencyFiles: dependencyFiles,
		}
		snap.recordFileID(catalog.FileID(entry.PrimaryFile), filePrefix, log)
		for _, dep := range dependencyFiles {
			snap.recordFileID(dep, filePrefix, log)
		}
	}

	return snap
}

// mapAssetsToCategories maps every asset ID to the IDs of all categories it is
// in, walking child_categories upwards so parent categories are included.
func mapAssetsToCategories(idx *Index) map[catalog.AssetID]map[catalog.CategoryID]struct{} {
	parents := map[catalog.CategoryID]catalog.CategoryID{}
	for parent, children := range idx.ChildCategories {
		for _, child := range children {
			parents[child] = parent
		}
	}

	ret := map[catalog.AssetID]map[catalog.CategoryID]struct{}{}
	for categoryID, assetIDs := range idx.ChildAssets {
		for _, assetID := range assetIDs {
			categories, ok := ret[assetID]
			if !ok {
				categories = map[catalog.CategoryID]struct{}{}
				ret[assetID] = categories
			}
			for id := categoryID; ; {
				if _, seen := categories[id]; seen {
					break
				}
				categories[id] = struct{}{}
				parent, ok := parents[id]
				if !ok {
					break
				}
				id = parent
			}
		}
	}
	return ret
}

func (s *snapshot) recordFileID(id catalog.FileID, filePrefix string, log *zap.Logger) {
	relative, ok := strings.CutPrefix(string(id), filePrefix+":")
	if !ok {
		relative = string(id)
	}
	basename := path.Base(relative)
	if previous, ok := s.basenames[basename]; ok && previous != id {
		log.Warn("basename maps to multiple file IDs, keeping the last one",
			zap.String("basename", basename),
			zap.String("previous", string(previous)),
			zap.String("current", string(id)),
		)
	}
	s.basenames[basename] = id
}

// getFileIDFromBasename resolves a basename to a file ID. Texture pipelines
// may have switched between jpg and png, both extensions are tried.
func (s *snapshot) getFileIDFromBasename(basename string) catalog.FileID {
	if strings.HasSuffix(basename, ".jpg") || strings.HasSuffix(basename, ".png") {
		withoutExt := strings.TrimSuffix(strings.TrimSuffix(basename, ".jpg"), ".png")
		if id, ok := s.basenames[withoutExt+".jpg"]; ok {
			return id
		}
		return s.basenames[withoutExt+".png"]
	}
	return s.basenames[basename]
}

// snapshotHolder guards the current snapshot of a provider so a background
// refresh can swap it wholesale while queries keep reading the old one.
type snapshotHolder struct {
	mu   sync.RWMutex
	snap *snapshot
}

func (h *snapshotHolder) current() *snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

func (h *snapshotHolder) replace(snap *snapshot) {
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
}

// ListChildCategoryIDs implements provider.AssetProvider.
func (h *snapshotHolder) ListChildCategoryIDs(parent catalog.CategoryID) []catalog.CategoryID {
	return h.current().childCategories[parent]
}

// ListChildAssetIDs implements provider.AssetProvider.
func (h *snapshotHolder) ListChildAssetIDs(parent catalog.CategoryID) []catalog.AssetID {
	return h.current().childAssets[parent]
}

// ListAssetDataIDs implements provider.AssetProvider.
func (h *snapshotHolder) ListAssetDataIDs(id catalog.AssetID) []catalog.AssetDataID {
	return h.current().childAssetData[id]
}

// GetCategory implements provider.AssetProvider.
func (h *snapshotHolder) GetCategory(id catalog.CategoryID) *catalog.Category {
	return h.current().categories[id]
}

// GetAsset implements provider.AssetProvider.
func (h *snapshotHolder) GetAsset(id catalog.AssetID) *catalog.Asset {
	return h.current().assets[id]
}

// GetAssetData implements provider.AssetProvider.
func (h *snapshotHolder) GetAssetData(id catalog.AssetDataID) *catalog.AssetData {
	return h.current().assetData[id]
}

// GetFileIDFromBasename implements provider.FileProvider.
func (h *snapshotHolder) GetFileIDFromBasename(basename string) catalog.FileID {
	return h.current().getFileIDFromBasename(basename)
}
