// Package storage defines the interface for object storage operations.
// Exactly one backend is selected at startup via New — the MinIO
// implementation works with any S3-compatible store, the Azure implementation
// with Azure Blob Storage. Callers depend only on the Provider interface.
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/qrkeep/service/internal/config"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// ErrUnavailable is returned when the backend never initialized successfully.
// The process stays up with a degraded provider; operations fail explicitly
// instead of crashing on a missing client handle.
var ErrUnavailable = errors.New("storage unavailable")

// Provider is the interface for uploading and retrieving objects.
type Provider interface {
	// Initialize establishes the client connection and ensures the target
	// container exists. It never fails the process: on error the provider is
	// left degraded and later operations return ErrUnavailable.
	Initialize(ctx context.Context)
	// Upload stores data under key, overwriting any existing object, and
	// returns an addressable URL for it.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Download returns a readable stream for the object at key.
	// The caller must close the returned ReadCloser.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
	// Exists reports whether key exists. It never fails: any backend error
	// is treated as "does not exist".
	Exists(ctx context.Context, key string) bool
	// URL constructs the addressable URL for key from configuration alone,
	// without any I/O.
	URL(key string) string
}

// New selects the configured backend. The returned provider must still be
// initialized; main runs Initialize asynchronously so startup never blocks
// on storage connectivity.
func New(cfg *config.Config, logger zerolog.Logger) Provider {
	switch cfg.StorageType {
	case "azure":
		return NewAzure(cfg.AzureConnectionString, cfg.AzureAccountName, cfg.ContainerName, logger)
	default:
		return NewMinio(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.ContainerName, cfg.MinioSecure, logger)
	}
}
