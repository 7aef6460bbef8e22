package qrcode

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/qrkeep/service/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryProvider) {
	t.Helper()
	store := storage.NewMemory()
	return NewManager(store, zerolog.Nop()), store
}

func TestUpdateCreatesFreshRecord(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	meta, err := m.Update(ctx, "abc.png", "https://example.com", 300, false)
	require.NoError(t, err)
	require.Equal(t, "abc", meta.CodeID)
	require.Equal(t, "https://example.com", meta.Data)
	require.Equal(t, 300, meta.Size)
	require.Equal(t, 1, meta.AccessCount)
	require.Equal(t, meta.CreatedAt, meta.LastAccessed)
	require.True(t, store.Exists(ctx, "abc.metadata"))
}

func TestUpdateAccessIncrementsExistingRecord(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	created, err := m.Update(ctx, "abc.png", "payload", 300, false)
	require.NoError(t, err)

	m.now = func() time.Time { return created.CreatedAt.Add(time.Minute) }

	meta, err := m.Update(ctx, "abc.png", "", 0, true)
	require.NoError(t, err)
	require.Equal(t, 2, meta.AccessCount)
	require.Equal(t, "payload", meta.Data)
	require.Equal(t, created.CreatedAt, meta.CreatedAt)
	require.True(t, meta.LastAccessed.After(created.LastAccessed))
}

func TestUpdateCreationModePreservesExistingRecord(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	created, err := m.Update(ctx, "abc.png", "original", 300, false)
	require.NoError(t, err)

	// Re-uploading the same key records metadata again in creation mode;
	// the existing record survives untouched.
	meta, err := m.Update(ctx, "abc.png", "replacement", 500, false)
	require.NoError(t, err)
	require.Equal(t, "original", meta.Data)
	require.Equal(t, 300, meta.Size)
	require.Equal(t, 1, meta.AccessCount)
	require.Equal(t, created.CreatedAt, meta.CreatedAt)
}

func TestUpdateRecreatesGarbageRecord(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	_, err := store.Upload(ctx, "abc.metadata", []byte("{not json"), "application/json")
	require.NoError(t, err)

	meta, err := m.Update(ctx, "abc.png", "recovered", 200, true)
	require.NoError(t, err)
	require.Equal(t, 1, meta.AccessCount)
	require.Equal(t, "recovered", meta.Data)

	got, err := m.Get(ctx, "abc.png")
	require.NoError(t, err)
	require.Equal(t, meta.AccessCount, got.AccessCount)
}

func TestGetMissingOrGarbageRecord(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	_, err := m.Get(ctx, "missing.png")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Upload(ctx, "bad.metadata", []byte("garbage"), "application/json")
	require.NoError(t, err)
	_, err = m.Get(ctx, "bad.png")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMetadataKeyNormalizesSuffix(t *testing.T) {
	require.Equal(t, "abc.metadata", metadataKey("abc.png"))
	require.Equal(t, "abc.metadata", metadataKey("abc"))
}
