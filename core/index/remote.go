package index

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"asset-catalog/core/catalog"
	"asset-catalog/core/storage"
)

// RemoteProvider serves an index stored in object storage. The index object
// is fetched on load, referenced files are downloaded into a local cache
// directory on first materialization and served from there afterwards.
type RemoteProvider struct {
	snapshotHolder

	client      storage.Client
	bucket      string
	indexObject string
	filePrefix  string
	cacheDir    string

	downloads singleflight.Group
	log       *zap.Logger
}

// NewRemoteProvider fetches and loads the index object. File IDs carrying
// filePrefix resolve to objects in the same bucket, relative to the index
// object's directory. A nil logger disables logging.
func NewRemoteProvider(
	ctx context.Context,
	client storage.Client,
	bucket, indexObject, filePrefix, cacheDir string,
	log *zap.Logger,
) (*RemoteProvider, error) {
	p := &RemoteProvider{
		client:      client,
		bucket:      bucket,
		indexObject: indexObject,
		filePrefix:  filePrefix,
		cacheDir:    cacheDir,
		log:         ensureLogger(log),
	}
	if err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Refresh refetches the index object and swaps the loaded catalog wholesale.
// Files already materialized into the cache directory stay valid, their IDs
// are content-addressed by path.
func (p *RemoteProvider) Refresh(ctx context.Context) error {
	object, err := p.client.GetObject(ctx, p.bucket, p.indexObject, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch index object %s: %w", p.indexObject, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return fmt.Errorf("failed to read index object %s: %w", p.indexObject, err)
	}
	idx, err := ParseIndex(data)
	if err != nil {
		return fmt.Errorf("failed to load index object %s: %w", p.indexObject, err)
	}
	p.replace(buildSnapshot(idx, p.filePrefix, p.log))
	return nil
}

// MaterializeFile implements provider.FileProvider. Concurrent requests for
// the same file coalesce into a single download.
func (p *RemoteProvider) MaterializeFile(ctx context.Context, id catalog.FileID) (string, error) {
	relative, ok := strings.CutPrefix(string(id), p.filePrefix+":")
	if !ok {
		return "", nil
	}

	localPath := filepath.Join(p.cacheDir, filepath.FromSlash(relative))
	if info, err := os.Stat(localPath); err == nil && !info.IsDir() {
		return localPath, nil
	}

	path, err, _ := p.downloads.Do(relative, func() (any, error) {
		return p.download(ctx, relative, localPath)
	})
	if err != nil {
		return "", err
	}
	return path.(string), nil
}

func (p *RemoteProvider) download(ctx context.Context, objectName, localPath string) (string, error) {
	p.log.Debug("downloading remote file",
		zap.String("object", objectName),
		zap.String("path", localPath),
	)

	object, err := p.client.GetObject(ctx, p.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch object %s: %w", objectName, err)
	}
	defer object.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	// download into a temp file first so a partial download never shows up at
	// the final path
	tmp, err := os.CreateTemp(filepath.Dir(localPath), ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, object); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to download object %s: %w", objectName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), localPath); err != nil {
		return "", fmt.Errorf("failed to finalize download of %s: %w", objectName, err)
	}
	return localPath, nil
}
