package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"asset-catalog/core/config"
	"asset-catalog/core/index"
	"asset-catalog/core/logger"
	"asset-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishSkipExisting bool

// publishCmd uploads a local asset pack to object storage so remote providers
// can serve it.
var publishCmd = &cobra.Command{
	Use:   "publish [pack-dir]",
	Short: "Upload a local asset pack to object storage",
	Long:  `Validates the pack's index and uploads the index together with all pack files to the configured bucket.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPublish(cmd.Context(), args[0])
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishSkipExisting, "skip-existing", true, "skip objects already present in the bucket")
	RootCmd.AddCommand(publishCmd)
}

func runPublish(ctx context.Context, packDir string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Validate before uploading anything, a malformed pack should fail fast.
	indexPath := filepath.Join(packDir, cfg.Catalog.IndexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		logg.Fatal("Failed to read pack index", zap.Error(err))
	}
	if _, err := index.ParseIndex(data); err != nil {
		logg.Fatal("Pack index is invalid", zap.Error(err))
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	bucket := cfg.Storage.Bucket
	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		logg.Fatal("Failed to check bucket", zap.Error(err))
	}
	if !exists {
		if err := store.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
			logg.Fatal("Failed to create bucket", zap.Error(err))
		}
		logg.Info("Created bucket", zap.String("bucket", bucket))
	}

	existing := map[string]struct{}{}
	if publishSkipExisting {
		for info := range store.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
			if info.Err != nil {
				logg.Fatal("Failed to list bucket objects", zap.Error(info.Err))
			}
			existing[info.Key] = struct{}{}
		}
	}

	uploaded, skipped := 0, 0
	err = filepath.WalkDir(packDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		relative, err := filepath.Rel(packDir, path)
		if err != nil {
			return err
		}
		objectName := filepath.ToSlash(relative)
		// the index is always re-uploaded, it is what a refresh picks up
		if _, ok := existing[objectName]; ok && objectName != cfg.Catalog.IndexFile {
			skipped++
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		info, err := file.Stat()
		if err != nil {
			return err
		}

		if _, err := store.PutObject(ctx, bucket, objectName, file, info.Size(), minio.PutObjectOptions{}); err != nil {
			return fmt.Errorf("failed to upload %s: %w", objectName, err)
		}
		uploaded++
		logg.Debug("Uploaded object", zap.String("object", objectName))
		return nil
	})
	if err != nil {
		logg.Fatal("Publish failed", zap.Error(err))
	}

	logg.Info("Pack published",
		zap.String("pack", packDir),
		zap.String("bucket", bucket),
		zap.Int("uploaded", uploaded),
		zap.Int("skipped", skipped),
	)
}
