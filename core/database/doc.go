// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database and
// verifies it with a bounded ping. The connection is optional at the
// application level, a catalog can run from file-backed providers alone.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The database
// provider uses them to verify that the tables it reads match the expected
// columns before serving anything.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "assets")
package database
