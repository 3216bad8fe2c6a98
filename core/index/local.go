package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"asset-catalog/core/catalog"
)

// LocalProvider serves one index JSON file from disk together with the files
// it references. It is a dual asset and file provider, the typical backend of
// one locally installed asset pack.
type LocalProvider struct {
	snapshotHolder

	indexPath  string
	rootDir    string
	filePrefix string
	log        *zap.Logger
}

// NewLocalProvider loads the index at indexPath. File IDs carrying filePrefix
// resolve to paths relative to rootDir. A nil logger disables logging.
func NewLocalProvider(indexPath, rootDir, filePrefix string, log *zap.Logger) (*LocalProvider, error) {
	p := &LocalProvider{
		indexPath:  indexPath,
		rootDir:    rootDir,
		filePrefix: filePrefix,
		log:        ensureLogger(log),
	}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewLocalProviderFromIndex builds a provider from an already decoded index
// instead of a file on disk. Used with embedded or generated indexes.
func NewLocalProviderFromIndex(idx *Index, rootDir, filePrefix string, log *zap.Logger) (*LocalProvider, error) {
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	p := &LocalProvider{
		rootDir:    rootDir,
		filePrefix: filePrefix,
		log:        ensureLogger(log),
	}
	p.replace(buildSnapshot(idx, filePrefix, p.log))
	return p, nil
}

// Refresh rereads the index from disk and swaps the loaded catalog wholesale.
// Queries running against the previous snapshot are unaffected.
func (p *LocalProvider) Refresh() error {
	if p.indexPath == "" {
		return nil
	}
	data, err := os.ReadFile(p.indexPath)
	if err != nil {
		return fmt.Errorf("failed to read index %s: %w", p.indexPath, err)
	}
	idx, err := ParseIndex(data)
	if err != nil {
		return fmt.Errorf("failed to load index %s: %w", p.indexPath, err)
	}
	p.replace(buildSnapshot(idx, p.filePrefix, p.log))
	return nil
}

// MaterializeFile implements provider.FileProvider. The file is already on
// disk, materializing only resolves the ID to an absolute path.
func (p *LocalProvider) MaterializeFile(_ context.Context, id catalog.FileID) (string, error) {
	relative, ok := strings.CutPrefix(string(id), p.filePrefix+":")
	if !ok {
		return "", nil
	}
	fullPath, err := filepath.Abs(filepath.Join(p.rootDir, filepath.FromSlash(relative)))
	if err != nil {
		return "", err
	}
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		p.log.Warn("file ID prefix matches but the file does not exist",
			zap.String("file_id", string(id)),
			zap.String("path", fullPath),
		)
		return "", nil
	}
	return fullPath, nil
}

func ensureLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
