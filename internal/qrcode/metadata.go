package qrcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/qrkeep/service/internal/storage"
)

const (
	imageSuffix    = ".png"
	metadataSuffix = ".metadata"
)

// Metadata tracks provenance and access statistics for one stored image.
// It lives as a JSON blob next to the image, keyed "{code_id}.metadata".
type Metadata struct {
	CodeID       string    `json:"code_id"`
	Data         string    `json:"data"`
	Size         int       `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
	AccessCount  int       `json:"access_count"`
}

// metadataKey maps an image key (with or without the .png suffix) to the key
// of its metadata record.
func metadataKey(codeID string) string {
	return strings.TrimSuffix(codeID, imageSuffix) + metadataSuffix
}

// Manager maintains one metadata record per image. Updates are unsynchronized
// read-modify-write: the record is downloaded, mutated, and re-uploaded with
// an unconditional overwrite. Concurrent updates for the same key can race
// and the last write wins, losing an increment.
type Manager struct {
	store storage.Provider
	log   zerolog.Logger
	now   func() time.Time
}

// NewManager creates a Manager on top of the given provider.
func NewManager(store storage.Provider, logger zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   logger.With().Str("component", "metadata").Logger(),
		now:   time.Now,
	}
}

// Update applies the metadata protocol for codeID. In access mode an existing
// record gets its access count incremented and last_accessed touched; in
// creation mode an existing record is re-uploaded unchanged. When the record
// is missing or unreadable a fresh one is built from data and size with an
// access count of 1, overwriting whatever was there.
func (m *Manager) Update(ctx context.Context, codeID, data string, size int, isAccess bool) (*Metadata, error) {
	id := strings.TrimSuffix(codeID, imageSuffix)
	key := metadataKey(codeID)
	now := m.now().UTC()

	meta, err := m.load(ctx, key)
	switch {
	case err == nil:
		if isAccess {
			meta.AccessCount++
			meta.LastAccessed = now
		}
	default:
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Warn().Err(err).Str("key", key).Msg("unreadable metadata record, recreating")
		}
		meta = &Metadata{
			CodeID:       id,
			Data:         data,
			Size:         size,
			CreatedAt:    now,
			LastAccessed: now,
			AccessCount:  1,
		}
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata %q: %w", key, err)
	}
	if _, err := m.store.Upload(ctx, key, payload, "application/json"); err != nil {
		return nil, fmt.Errorf("store metadata %q: %w", key, err)
	}
	return meta, nil
}

// Get returns the metadata record for codeID. A missing or unparsable record
// reports storage.ErrNotFound.
func (m *Manager) Get(ctx context.Context, codeID string) (*Metadata, error) {
	key := metadataKey(codeID)
	meta, err := m.load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Warn().Err(err).Str("key", key).Msg("metadata record unreadable")
		}
		return nil, storage.ErrNotFound
	}
	return meta, nil
}

// load downloads and parses the record at key.
func (m *Manager) load(ctx context.Context, key string) (*Metadata, error) {
	rc, err := m.store.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("download metadata %q: %w", key, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read metadata %q: %w", key, err)
	}

	meta := &Metadata{}
	if err := json.Unmarshal(raw, meta); err != nil {
		return nil, fmt.Errorf("parse metadata %q: %w", key, err)
	}
	return meta, nil
}
