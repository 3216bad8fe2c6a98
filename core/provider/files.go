package provider

import (
	"context"

	"asset-catalog/core/catalog"
)

// FileProvider resolves file IDs recorded in asset metadata into paths on the
// local filesystem. Materializing may involve work, a remote provider
// downloads the blob into its cache directory on first request.
type FileProvider interface {
	// MaterializeFile ensures the file is present locally and returns its
	// absolute path. It returns "" when the provider does not know the ID.
	MaterializeFile(ctx context.Context, id catalog.FileID) (string, error)

	// GetFileIDFromBasename maps a bare filename to the full file ID, or ""
	// when no indexed file carries that basename.
	GetFileIDFromBasename(basename string) catalog.FileID
}

// FileMultiplexer fans a file lookup out over several file providers.
//
// Like the asset multiplexer, later registrations win: a provider added last
// is consulted first, so a pack installed on top of another can override its
// files.
type FileMultiplexer struct {
	providers []FileProvider
}

// NewFileMultiplexer creates a file multiplexer over the given providers.
func NewFileMultiplexer(providers ...FileProvider) *FileMultiplexer {
	m := &FileMultiplexer{}
	for _, p := range providers {
		m.AddFileProvider(p)
	}
	return m
}

// AddFileProvider registers a provider.
func (m *FileMultiplexer) AddFileProvider(p FileProvider) {
	m.providers = append(m.providers, p)
}

// RemoveFileProvider removes a previously registered provider.
func (m *FileMultiplexer) RemoveFileProvider(p FileProvider) {
	for i, existing := range m.providers {
		if existing == p {
			m.providers = append(m.providers[:i], m.providers[i+1:]...)
			return
		}
	}
}

// ClearProviders removes all registered providers.
func (m *FileMultiplexer) ClearProviders() {
	m.providers = nil
}

// MaterializeFile implements FileProvider. The first provider, in reverse
// registration order, that knows the ID wins. An error from a provider that
// claims the ID is returned as is.
func (m *FileMultiplexer) MaterializeFile(ctx context.Context, id catalog.FileID) (string, error) {
	for i := len(m.providers) - 1; i >= 0; i-- {
		path, err := m.providers[i].MaterializeFile(ctx, id)
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}
	}
	return "", nil
}

// GetFileIDFromBasename implements FileProvider.
func (m *FileMultiplexer) GetFileIDFromBasename(basename string) catalog.FileID {
	for i := len(m.providers) - 1; i >= 0; i-- {
		if id := m.providers[i].GetFileIDFromBasename(basename); id != "" {
			return id
		}
	}
	return ""
}
