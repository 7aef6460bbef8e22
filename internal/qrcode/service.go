package qrcode

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qrkeep/service/internal/storage"
)

// Service orchestrates the lifecycle of an image and its metadata record.
// The pair is stored as two independent objects with no transaction between
// them: metadata failures never fail the image operation, they are logged
// and swallowed.
type Service struct {
	store storage.Provider
	meta  *Manager
	log   zerolog.Logger
}

// NewService creates a Service on top of the given provider and manager.
func NewService(store storage.Provider, meta *Manager, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		meta:  meta,
		log:   logger.With().Str("component", "qrcode").Logger(),
	}
}

// Create renders a new QR code for data, stores it under a fresh key, and
// records its metadata. Returns the generated code ID.
func (s *Service) Create(ctx context.Context, data string, size int) (string, error) {
	png, err := Generate(data, size)
	if err != nil {
		return "", fmt.Errorf("generate qr code: %w", err)
	}

	codeID := uuid.NewString() + imageSuffix
	if err := s.Put(ctx, codeID, png, data, size); err != nil {
		return "", err
	}
	return codeID, nil
}

// Put stores a pre-rendered PNG under an explicit key, overwriting any
// existing image, then records its metadata.
func (s *Service) Put(ctx context.Context, codeID string, image []byte, data string, size int) error {
	url, err := s.store.Upload(ctx, codeID, image, "image/png")
	if err != nil {
		return fmt.Errorf("upload image %q: %w", codeID, err)
	}
	s.log.Info().Str("code_id", codeID).Str("url", url).Int("bytes", len(image)).Msg("image stored")

	// The image is already up; a metadata failure must not fail the request.
	if _, err := s.meta.Update(ctx, codeID, data, size, false); err != nil {
		s.log.Error().Err(err).Str("code_id", codeID).Msg("metadata update failed")
	}
	return nil
}

// Retrieve returns a stream of the image at codeID, bumping its access
// metadata best-effort. Reports storage.ErrNotFound for unknown keys.
func (s *Service) Retrieve(ctx context.Context, codeID string) (io.ReadCloser, error) {
	if !s.store.Exists(ctx, codeID) {
		return nil, storage.ErrNotFound
	}

	if _, err := s.meta.Update(ctx, codeID, "", 0, true); err != nil {
		s.log.Warn().Err(err).Str("code_id", codeID).Msg("access metadata update failed")
	}

	rc, err := s.store.Download(ctx, codeID)
	if err != nil {
		return nil, fmt.Errorf("download image %q: %w", codeID, err)
	}
	return rc, nil
}

// Exists reports whether the image at codeID is stored, without touching
// its metadata.
func (s *Service) Exists(ctx context.Context, codeID string) bool {
	return s.store.Exists(ctx, codeID)
}

// Metadata returns the metadata record for codeID.
func (s *Service) Metadata(ctx context.Context, codeID string) (*Metadata, error) {
	return s.meta.Get(ctx, codeID)
}

// Delete removes the image and, when present, its metadata record. Deletion
// is best-effort and idempotent: missing keys and backend failures are
// logged, never surfaced.
func (s *Service) Delete(ctx context.Context, codeID string) {
	if err := s.store.Delete(ctx, codeID); err != nil {
		s.log.Warn().Err(err).Str("code_id", codeID).Msg("image delete failed")
	}

	key := metadataKey(codeID)
	if !s.store.Exists(ctx, key) {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("code_id", codeID).Msg("metadata delete failed")
	}
}

// IsNotFound returns true when the error indicates a missing image or record.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

// IsUnavailable returns true when the error indicates the storage backend
// never initialized.
func (s *Service) IsUnavailable(err error) bool {
	return errors.Is(err, storage.ErrUnavailable)
}
