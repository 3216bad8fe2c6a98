package index

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"asset-catalog/core/catalog"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func columnRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, field := range fields {
		rows.AddRow(field, "text", "YES", "", nil, "")
	}
	return rows
}

// expectSchemaQueries mocks the SHOW COLUMNS round trips of VerifySchema,
// tables are checked in alphabetical order.
func expectSchemaQueries(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SHOW COLUMNS FROM `asset_data`").
		WillReturnRows(columnRows(requiredTables["asset_data"]...))
	mock.ExpectQuery("SHOW COLUMNS FROM `assets`").
		WillReturnRows(columnRows(requiredTables["assets"]...))
	mock.ExpectQuery("SHOW COLUMNS FROM `categories`").
		WillReturnRows(columnRows(requiredTables["categories"]...))
}

func TestVerifySchema(t *testing.T) {
	t.Run("AllColumnsPresent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		expectSchemaQueries(mock)

		assert.NoError(t, VerifySchema(db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `asset_data`").
			WillReturnRows(columnRows("id", "asset_id", "type", "primary_file"))

		err := VerifySchema(db)
		assert.ErrorContains(t, err, "missing column dependency_files")
	})
}

func TestAssembleIndex(t *testing.T) {
	categories := []CategoryRow{
		{ID: "/pack", Title: "Pack"},
		{ID: "/pack/sofas", ParentID: "/pack", Title: "Sofas"},
		// empty parent_id is inferred from the ID
		{ID: "/pack/tables", Title: "Tables"},
	}
	assets := []AssetRow{
		{
			ID:                "/pack/Couch",
			CategoryID:        "/pack/sofas",
			Title:             "Couch",
			Type:              "model",
			Tags:              `["Furniture"]`,
			NumericParameters: `{"width": 1.8}`,
			VectorParameters:  `{"viewport_color": [1, 0, 0]}`,
			TextParameters:    `{"style": "modern"}`,
			LocationParameters: `{"native_observations": [[50.07, 14.43]]}`,
		},
		// empty category_id lands in the root category
		{ID: "/pack/Stray", Title: "Stray", Type: "model"},
	}
	assetData := []AssetDataRow{
		{
			ID:              "/pack/Couch:blend",
			AssetID:         "/pack/Couch",
			Type:            "model",
			PrimaryFile:     "/pack:blends/Couch.blend",
			DependencyFiles: `["/pack:textures/couch.jpg"]`,
		},
	}

	idx, err := AssembleIndex(categories, assets, assetData)
	require.NoError(t, err)
	require.NoError(t, idx.Validate())

	t.Run("Categories", func(t *testing.T) {
		assert.Equal(t, "Sofas", idx.CategoryMetadata["/pack/sofas"].Title)
		assert.ElementsMatch(t,
			[]catalog.CategoryID{"/pack/sofas", "/pack/tables"},
			idx.ChildCategories["/pack"])
		assert.Equal(t, []catalog.CategoryID{"/pack"}, idx.ChildCategories["/"])
	})

	t.Run("Assets", func(t *testing.T) {
		meta := idx.AssetMetadata["/pack/Couch"]
		assert.Equal(t, []string{"Furniture"}, meta.Tags)
		assert.Equal(t, 1.8, meta.NumericParameters["width"])
		assert.Equal(t, []float64{1, 0, 0}, meta.VectorParameters["viewport_color"])
		assert.Equal(t, "modern", meta.TextParameters["style"])
		assert.Equal(t, [][2]float64{{50.07, 14.43}}, meta.LocationParameters["native_observations"])

		assert.Equal(t, []catalog.AssetID{"/pack/Couch"}, idx.ChildAssets["/pack/sofas"])
		assert.Equal(t, []catalog.AssetID{"/pack/Stray"}, idx.ChildAssets[catalog.RootCategoryID])
	})

	t.Run("AssetData", func(t *testing.T) {
		entry := idx.AssetData["/pack/Couch:blend"]
		assert.Equal(t, "/pack:blends/Couch.blend", entry.PrimaryFile)
		assert.Equal(t, []string{"/pack:textures/couch.jpg"}, entry.DependencyFiles)
		assert.Equal(t,
			[]catalog.AssetDataID{"/pack/Couch:blend"},
			idx.ChildAssetData["/pack/Couch"])
	})

	t.Run("MalformedColumn", func(t *testing.T) {
		_, err := AssembleIndex(nil, []AssetRow{
			{ID: "/pack/Bad", Title: "Bad", Type: "model", Tags: "{not json"},
		}, nil)
		assert.ErrorContains(t, err, "invalid tags column")
	})
}

func TestNewDBProvider(t *testing.T) {
	db, mock := setupMockDB(t)
	expectSchemaQueries(mock)

	mock.ExpectQuery("SELECT \\* FROM `categories` ORDER BY id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "parent_id", "title", "preview_file"}).
			AddRow("/pack", "", "Pack", "").
			AddRow("/pack/sofas", "/pack", "Sofas", ""))
	mock.ExpectQuery("SELECT \\* FROM `assets` ORDER BY id").WillReturnRows(
		sqlmock.NewRows([]string{
			"id", "category_id", "title", "type", "preview_file",
			"tags", "numeric_parameters", "vector_parameters",
			"text_parameters", "location_parameters",
		}).AddRow("/pack/Couch", "/pack/sofas", "Couch", "model", "", `["Furniture"]`, "", "", "", ""))
	mock.ExpectQuery("SELECT \\* FROM `asset_data` ORDER BY id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "asset_id", "type", "primary_file", "dependency_files"}).
			AddRow("/pack/Couch:blend", "/pack/Couch", "model", "/db:blends/Couch.blend", ""))

	p, err := NewDBProvider(db, "/db", nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "Couch", p.GetAsset("/pack/Couch").Title)
	assert.True(t, p.GetAsset("/pack/Couch").Tags.Has("Furniture"))
	assert.Equal(t, "Sofas", p.GetCategory("/pack/sofas").Title)
	assert.Equal(t, []catalog.AssetID{"/pack/Couch"}, p.ListChildAssetIDs("/pack/sofas"))
}
