package index

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-catalog/core/storage/mocks"
)

func objectBody(data []byte) io.ReadCloser {
	return io.NopCloser(strings.NewReader(string(data)))
}

func marshalFurnitureIndex(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(furnitureIndex())
	require.NoError(t, err)
	return data
}

func TestNewRemoteProvider(t *testing.T) {
	t.Run("LoadsIndexObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "asset-packs", "index.json", minio.GetObjectOptions{}).
			Return(objectBody(marshalFurnitureIndex(t)), nil)

		p, err := NewRemoteProvider(
			context.Background(), client, "asset-packs", "index.json", "/pack", t.TempDir(), nil,
		)
		require.NoError(t, err)
		assert.Equal(t, "Rectangular Couch", p.GetAsset("/pack/Couch_Rectangular").Title)
		client.AssertExpectations(t)
	})

	t.Run("FetchError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "asset-packs", "index.json", minio.GetObjectOptions{}).
			Return(nil, errors.New("connection refused"))

		_, err := NewRemoteProvider(
			context.Background(), client, "asset-packs", "index.json", "/pack", t.TempDir(), nil,
		)
		assert.ErrorContains(t, err, "failed to fetch index object")
	})

	t.Run("MalformedIndexObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "asset-packs", "index.json", minio.GetObjectOptions{}).
			Return(objectBody([]byte("{not json")), nil)

		_, err := NewRemoteProvider(
			context.Background(), client, "asset-packs", "index.json", "/pack", t.TempDir(), nil,
		)
		assert.ErrorContains(t, err, "failed to load index object")
	})
}

func TestRemoteProviderMaterializeFile(t *testing.T) {
	setup := func(t *testing.T) (*RemoteProvider, *mocks.Client, string) {
		t.Helper()
		cacheDir := t.TempDir()
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "asset-packs", "index.json", minio.GetObjectOptions{}).
			Return(objectBody(marshalFurnitureIndex(t)), nil).Once()

		p, err := NewRemoteProvider(
			context.Background(), client, "asset-packs", "index.json", "/pack", cacheDir, nil,
		)
		require.NoError(t, err)
		return p, client, cacheDir
	}

	t.Run("DownloadsIntoCache", func(t *testing.T) {
		p, client, cacheDir := setup(t)
		client.On("GetObject", mock.Anything, "asset-packs", "blends/Couch_Rectangular.blend", minio.GetObjectOptions{}).
			Return(objectBody([]byte("BLENDER")), nil).Once()

		path, err := p.MaterializeFile(context.Background(), "/pack:blends/Couch_Rectangular.blend")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cacheDir, "blends", "Couch_Rectangular.blend"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "BLENDER", string(content))
	})

	t.Run("SecondRequestServedFromCache", func(t *testing.T) {
		p, client, _ := setup(t)
		client.On("GetObject", mock.Anything, "asset-packs", "blends/Couch_Rectangular.blend", minio.GetObjectOptions{}).
			Return(objectBody([]byte("BLENDER")), nil).Once()

		first, err := p.MaterializeFile(context.Background(), "/pack:blends/Couch_Rectangular.blend")
		require.NoError(t, err)
		second, err := p.MaterializeFile(context.Background(), "/pack:blends/Couch_Rectangular.blend")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		client.AssertExpectations(t)
	})

	t.Run("ForeignPrefixNotClaimed", func(t *testing.T) {
		p, _, _ := setup(t)
		path, err := p.MaterializeFile(context.Background(), "/other:blends/Couch_Rectangular.blend")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("DownloadError", func(t *testing.T) {
		p, client, _ := setup(t)
		client.On("GetObject", mock.Anything, "asset-packs", "blends/Couch_Rectangular.blend", minio.GetObjectOptions{}).
			Return(nil, errors.New("object not found"))

		_, err := p.MaterializeFile(context.Background(), "/pack:blends/Couch_Rectangular.blend")
		assert.ErrorContains(t, err, "failed to fetch object")
	})
}
