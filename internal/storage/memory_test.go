package storage_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qrkeep/service/internal/storage"
)

func TestMemoryProviderLifecycle(t *testing.T) {
	ctx := context.Background()
	p := storage.NewMemory()
	p.Initialize(ctx)

	const key = "abc.png"
	payload := []byte("not really a png")

	require.False(t, p.Exists(ctx, key))

	url, err := p.Upload(ctx, key, payload, "image/png")
	require.NoError(t, err)
	require.Equal(t, p.URL(key), url)
	require.True(t, p.Exists(ctx, key))

	rc, err := p.Download(ctx, key)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, payload, got)

	require.NoError(t, p.Delete(ctx, key))
	require.False(t, p.Exists(ctx, key))

	_, err = p.Download(ctx, key)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting an already-deleted key is not an error.
	require.NoError(t, p.Delete(ctx, key))
}

func TestMemoryProviderOverwrite(t *testing.T) {
	ctx := context.Background()
	p := storage.NewMemory()

	_, err := p.Upload(ctx, "k", []byte("first"), "")
	require.NoError(t, err)
	_, err = p.Upload(ctx, "k", []byte("second"), "")
	require.NoError(t, err)

	rc, err := p.Download(ctx, "k")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func TestMemoryProviderDownloadIsSnapshot(t *testing.T) {
	ctx := context.Background()
	p := storage.NewMemory()

	src := []byte("immutable")
	_, err := p.Upload(ctx, "k", src, "")
	require.NoError(t, err)
	src[0] = 'X'

	rc, err := p.Download(ctx, "k")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("immutable"), got)
}
