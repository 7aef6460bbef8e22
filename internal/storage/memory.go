package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryProvider is an in-memory Provider. It backs the test suites for the
// layers above the storage abstraction and exercises the same contract as
// the real backends.
type MemoryProvider struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemory creates an empty in-memory provider. It needs no initialization.
func NewMemory() *MemoryProvider {
	return &MemoryProvider{objects: make(map[string][]byte)}
}

// Initialize is a no-op; the provider is ready from construction.
func (p *MemoryProvider) Initialize(ctx context.Context) {}

// Upload stores a copy of data under key, overwriting any existing object.
func (p *MemoryProvider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	cp := make([]byte, len(data))
	copy(cp, data)

	p.mu.Lock()
	p.objects[key] = cp
	p.mu.Unlock()

	return p.URL(key), nil
}

// Download returns a reader over a copy of the stored object.
func (p *MemoryProvider) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	p.mu.RLock()
	data, ok := p.objects[key]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return io.NopCloser(bytes.NewReader(cp)), nil
}

// Delete removes the object at key. Deleting a missing key is not an error.
func (p *MemoryProvider) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	delete(p.objects, key)
	p.mu.Unlock()
	return nil
}

// Exists reports whether key is present.
func (p *MemoryProvider) Exists(ctx context.Context, key string) bool {
	p.mu.RLock()
	_, ok := p.objects[key]
	p.mu.RUnlock()
	return ok
}

// URL returns a synthetic reference for the stored object.
func (p *MemoryProvider) URL(key string) string {
	return "mem://qrcodes/" + key
}
