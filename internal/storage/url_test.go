package storage_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/qrkeep/service/internal/storage"
)

func TestMinioURLConstruction(t *testing.T) {
	p := storage.NewMinio("localhost:9000", "ak", "sk", "qrcodes", false, zerolog.Nop())
	require.Equal(t, "http://localhost:9000/qrcodes/abc.png", p.URL("abc.png"))

	p = storage.NewMinio("minio.example.com", "ak", "sk", "qrcodes", true, zerolog.Nop())
	require.Equal(t, "https://minio.example.com/qrcodes/abc.png", p.URL("abc.png"))
}

func TestAzureURLConstruction(t *testing.T) {
	// Account name form.
	p := storage.NewAzure("", "myaccount", "qrcodes", zerolog.Nop())
	require.Equal(t, "https://myaccount.blob.core.windows.net/qrcodes/abc.png", p.URL("abc.png"))

	// Connection string with explicit endpoint.
	p = storage.NewAzure("DefaultEndpointsProtocol=https;AccountName=devstore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/devstore;", "", "qrcodes", zerolog.Nop())
	require.Equal(t, "http://127.0.0.1:10000/devstore/qrcodes/abc.png", p.URL("abc.png"))

	// Connection string without an endpoint falls back to the account name.
	p = storage.NewAzure("DefaultEndpointsProtocol=https;AccountName=prodstore;AccountKey=key;", "", "qrcodes", zerolog.Nop())
	require.Equal(t, "https://prodstore.blob.core.windows.net/qrcodes/abc.png", p.URL("abc.png"))
}

func TestUninitializedBackendsFailExplicitly(t *testing.T) {
	ctx := context.Background()

	for name, p := range map[string]storage.Provider{
		"minio": storage.NewMinio("localhost:9000", "ak", "sk", "qrcodes", false, zerolog.Nop()),
		"azure": storage.NewAzure("", "myaccount", "qrcodes", zerolog.Nop()),
	} {
		_, err := p.Upload(ctx, "k", []byte("x"), "")
		require.ErrorIs(t, err, storage.ErrUnavailable, name)

		_, err = p.Download(ctx, "k")
		require.ErrorIs(t, err, storage.ErrUnavailable, name)

		require.ErrorIs(t, p.Delete(ctx, "k"), storage.ErrUnavailable, name)
		require.False(t, p.Exists(ctx, "k"), name)
	}
}
