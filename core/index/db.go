package index

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"asset-catalog/core/catalog"
	"asset-catalog/core/database"
)

// CategoryRow is the 'categories' table.
type CategoryRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	ParentID    string `gorm:"column:parent_id"`
	Title       string `gorm:"column:title"`
	PreviewFile string `gorm:"column:preview_file"`
}

// TableName overrides the table name.
func (CategoryRow) TableName() string {
	return "categories"
}

// AssetRow is the 'assets' table. Parameter columns hold JSON documents in
// the same shape as the index file contract.
type AssetRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	CategoryID  string `gorm:"column:category_id"`
	Title       string `gorm:"column:title"`
	Type        string `gorm:"column:type"`
	PreviewFile string `gorm:"column:preview_file"`

	Tags               string `gorm:"column:tags"`
	NumericParameters  string `gorm:"column:numeric_parameters"`
	VectorParameters   string `gorm:"column:vector_parameters"`
	TextParameters     string `gorm:"column:text_parameters"`
	LocationParameters string `gorm:"column:location_parameters"`
}

// TableName overrides the table name.
func (AssetRow) TableName() string {
	return "assets"
}

// AssetDataRow is the 'asset_data' table.
type AssetDataRow struct {
	ID              string `gorm:"column:id;primaryKey"`
	AssetID         string `gorm:"column:asset_id"`
	Type            string `gorm:"column:type"`
	PrimaryFile     string `gorm:"column:primary_file"`
	DependencyFiles string `gorm:"column:dependency_files"`
}

// TableName overrides the table name.
func (AssetDataRow) TableName() string {
	return "asset_data"
}

// requiredTables lists the tables and columns the provider reads. Checked up
// front so a schema drift fails loudly at startup, not per-query.
var requiredTables = map[string][]string{
	"categories": {"id", "parent_id", "title", "preview_file"},
	"assets": {
		"id", "category_id", "title", "type", "preview_file",
		"tags", "numeric_parameters", "vector_parameters",
		"text_parameters", "location_parameters",
	},
	"asset_data": {"id", "asset_id", "type", "primary_file", "dependency_files"},
}

// DBProvider serves a catalog assembled from database rows. It is asset-only,
// files referenced by the metadata have to come from another file provider.
type DBProvider struct {
	snapshotHolder

	db         *gorm.DB
	filePrefix string
	log        *zap.Logger
}

// NewDBProvider verifies the schema and loads the catalog from the database.
// A nil logger disables logging.
func NewDBProvider(db *gorm.DB, filePrefix string, log *zap.Logger) (*DBProvider, error) {
	if err := VerifySchema(db); err != nil {
		return nil, err
	}
	p := &DBProvider{
		db:         db,
		filePrefix: filePrefix,
		log:        ensureLogger(log),
	}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// VerifySchema checks that every table and column the provider reads exists.
func VerifySchema(db *gorm.DB) error {
	for _, table := range sortedKeys(requiredTables) {
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return err
		}
		present := map[string]bool{}
		for _, column := range columns {
			present[column.Field] = true
		}
		for _, required := range requiredTables[table] {
			if !present[required] {
				return fmt.Errorf("table %s is missing column %s", table, required)
			}
		}
	}
	return nil
}

// Refresh rereads all rows and swaps the loaded catalog wholesale.
func (p *DBProvider) Refresh() error {
	var categories []CategoryRow
	if err := p.db.Order("id").Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	var assets []AssetRow
	if err := p.db.Order("id").Find(&assets).Error; err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}
	var assetData []AssetDataRow
	if err := p.db.Order("id").Find(&assetData).Error; err != nil {
		return fmt.Errorf("failed to load asset data: %w", err)
	}

	idx, err := AssembleIndex(categories, assets, assetData)
	if err != nil {
		return err
	}
	if err := idx.Validate(); err != nil {
		return err
	}
	p.replace(buildSnapshot(idx, p.filePrefix, p.log))
	return nil
}

// AssembleIndex converts database rows into the index contract shared with
// the file-backed providers.
func AssembleIndex(categories []CategoryRow, assets []AssetRow, assetData []AssetDataRow) (*Index, error) {
	idx := &Index{
		ChildCategories:  map[catalog.CategoryID][]catalog.CategoryID{},
		ChildAssets:      map[catalog.CategoryID][]catalog.AssetID{},
		ChildAssetData:   map[catalog.AssetID][]catalog.AssetDataID{},
		CategoryMetadata: map[catalog.CategoryID]CategoryMetadata{},
		AssetMetadata:    map[catalog.AssetID]AssetMetadata{},
		AssetData:        map[catalog.AssetDataID]AssetDataEntry{},
	}

	for _, row := range categories {
		id := catalog.CategoryID(row.ID)
		idx.CategoryMetadata[id] = CategoryMetadata{
			Title:       row.Title,
			PreviewFile: row.PreviewFile,
		}
		parent := catalog.CategoryID(row.ParentID)
		if parent == "" {
			parent = catalog.InferParentCategoryID(id)
		}
		if parent != "" {
			idx.ChildCategories[parent] = append(idx.ChildCategories[parent], id)
		}
	}

	for _, row := range assets {
		id := catalog.AssetID(row.ID)
		meta := AssetMetadata{
			Title:       row.Title,
			Type:        row.Type,
			PreviewFile: row.PreviewFile,
		}
		if err := decodeColumn(row.Tags, &meta.Tags); err != nil {
			return nil, fmt.Errorf("asset %s: invalid tags column: %w", row.ID, err)
		}
		if err := decodeColumn(row.NumericParameters, &meta.NumericParameters); err != nil {
			return nil, fmt.Errorf("asset %s: invalid numeric_parameters column: %w", row.ID, err)
		}
		if err := decodeColumn(row.VectorParameters, &meta.VectorParameters); err != nil {
			return nil, fmt.Errorf("asset %s: invalid vector_parameters column: %w", row.ID, err)
		}
		if err := decodeColumn(row.TextParameters, &meta.TextParameters); err != nil {
			return nil, fmt.Errorf("asset %s: invalid text_parameters column: %w", row.ID, err)
		}
		if err := decodeColumn(row.LocationParameters, &meta.LocationParameters); err != nil {
			return nil, fmt.Errorf("asset %s: invalid location_parameters column: %w", row.ID, err)
		}
		idx.AssetMetadata[id] = meta

		categoryID := catalog.CategoryID(row.CategoryID)
		if categoryID == "" {
			categoryID = catalog.RootCategoryID
		}
		idx.ChildAssets[categoryID] = append(idx.ChildAssets[categoryID], id)
	}

	for _, row := range assetData {
		id := catalog.AssetDataID(row.ID)
		entry := AssetDataEntry{
			Type:        row.Type,
			PrimaryFile: row.PrimaryFile,
		}
		if err := decodeColumn(row.DependencyFiles, &entry.DependencyFiles); err != nil {
			return nil, fmt.Errorf("asset data %s: invalid dependency_files column: %w", row.ID, err)
		}
		idx.AssetData[id] = entry
		assetID := catalog.AssetID(row.AssetID)
		idx.ChildAssetData[assetID] = append(idx.ChildAssetData[assetID], id)
	}

	return idx, nil
}

func decodeColumn(raw string, target any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), target)
}
