package cmd

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"asset-catalog/core/config"
	"asset-catalog/core/database"
	"asset-catalog/core/index"
	"asset-catalog/core/loader"
	"asset-catalog/core/logger"
	"asset-catalog/core/middleware/auth"
	"asset-catalog/core/middleware/rayid"
	"asset-catalog/core/provider"
	"asset-catalog/core/storage"
	"asset-catalog/feature/browser"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset catalog server",
	Long:  `Loads the configured asset pack indexes and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Assemble Providers
		// A provider that fails to load is logged and skipped, the catalog
		// serves whatever loaded.
		cat := provider.NewCachedMultiplexer(cfg.Catalog.QueryCacheSize, logg)
		files := provider.NewFileMultiplexer()

		for _, local := range loadLocalProviders(cfg.Catalog, logg) {
			cat.AddAssetProvider(local)
			files.AddFileProvider(local)
		}

		if cfg.Catalog.RemoteIndexObject != "" {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			remote, err := index.NewRemoteProvider(
				cmd.Context(), store, cfg.Storage.Bucket,
				cfg.Catalog.RemoteIndexObject, cfg.Catalog.RemotePrefix,
				cfg.Catalog.CacheDir, logg,
			)
			if err != nil {
				logg.Warn("Remote provider failed to load", zap.Error(err))
			} else {
				cat.AddAssetProvider(remote)
				files.AddFileProvider(remote)
				logg.Info("Loaded remote provider",
					zap.String("index", cfg.Catalog.RemoteIndexObject))
			}
		}

		// Database catalog is optional.
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if dbProvider, err := index.NewDBProvider(conn, cfg.Catalog.DatabasePrefix, logg); err != nil {
			logg.Warn("Database provider failed to load", zap.Error(err))
		} else {
			cat.AddAssetProvider(dbProvider)
			logg.Info("Loaded database provider")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(browser.NewFeature(cat, files, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// loadLocalProviders scans the packs directory, every subdirectory with an
// index file becomes a provider. The subdirectory name is the file ID prefix.
func loadLocalProviders(cfg index.Config, logg *zap.Logger) []*index.LocalProvider {
	entries, err := os.ReadDir(cfg.PacksDir)
	if err != nil {
		logg.Warn("Packs directory not readable", zap.String("dir", cfg.PacksDir), zap.Error(err))
		return nil
	}

	var providers []*index.LocalProvider
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		packDir := filepath.Join(cfg.PacksDir, entry.Name())
		indexPath := filepath.Join(packDir, cfg.IndexFile)
		if _, err := os.Stat(indexPath); err != nil {
			continue
		}

		local, err := index.NewLocalProvider(indexPath, packDir, "/"+entry.Name(), logg)
		if err != nil {
			logg.Warn("Asset pack failed to load",
				zap.String("pack", entry.Name()), zap.Error(err))
			continue
		}
		providers = append(providers, local)
		logg.Info("Loaded asset pack", zap.String("pack", entry.Name()))
	}
	return providers
}

func init() {
	RootCmd.AddCommand(startCmd)
}
