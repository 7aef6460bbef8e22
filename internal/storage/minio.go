package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

const (
	bucketRetryAttempts = 5
	bucketRetryDelay    = 2 * time.Second
)

// MinioProvider implements Provider using a MinIO (or any S3-compatible) backend.
type MinioProvider struct {
	endpoint  string
	accessKey string
	secretKey string
	bucket    string
	secure    bool
	log       zerolog.Logger

	// Published once by Initialize; nil while degraded.
	client atomic.Pointer[minio.Client]
}

// NewMinio returns an uninitialized MinIO provider. Call Initialize before
// use; until then every operation returns ErrUnavailable.
func NewMinio(endpoint, accessKey, secretKey, bucket string, secure bool, logger zerolog.Logger) *MinioProvider {
	return &MinioProvider{
		endpoint:  endpoint,
		accessKey: accessKey,
		secretKey: secretKey,
		bucket:    bucket,
		secure:    secure,
		log:       logger.With().Str("component", "storage").Str("backend", "minio").Logger(),
	}
}

// Initialize creates the client and ensures the bucket exists, retrying the
// bucket check on a fixed backoff. Failures are logged, never returned: the
// process stays up and operations fail downstream instead.
func (p *MinioProvider) Initialize(ctx context.Context) {
	client, err := minio.New(p.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(p.accessKey, p.secretKey, ""),
		Secure: p.secure,
	})
	if err != nil {
		p.log.Error().Err(err).Msg("create client failed, storage degraded")
		return
	}

	for attempt := 1; attempt <= bucketRetryAttempts; attempt++ {
		err = p.ensureBucket(ctx, client)
		if err == nil {
			break
		}
		p.log.Warn().Err(err).Int("attempt", attempt).Str("bucket", p.bucket).Msg("ensure bucket failed")
		if attempt < bucketRetryAttempts {
			select {
			case <-time.After(bucketRetryDelay):
			case <-ctx.Done():
				p.log.Error().Err(ctx.Err()).Msg("initialization canceled")
				return
			}
		}
	}
	if err != nil {
		p.log.Error().Err(err).Str("bucket", p.bucket).Msg("bucket unavailable after retries, operations will fail")
	}

	p.client.Store(client)
	p.log.Info().Str("endpoint", p.endpoint).Str("bucket", p.bucket).Msg("storage initialized")
}

// Upload stores data under key. The bucket is re-verified on every call since
// it can be removed out-of-band. After a healthy bootstrap, backend failures
// are logged and the constructed URL is returned instead of an error.
func (p *MinioProvider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	client := p.client.Load()
	if client == nil {
		return "", ErrUnavailable
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := p.ensureBucket(ctx, client); err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("ensure bucket before upload failed")
		return p.URL(key), nil
	}

	_, err := client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("put object failed")
		return p.URL(key), nil
	}

	return p.URL(key), nil
}

// Download returns a stream for the object at key.
func (p *MinioProvider) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	client := p.client.Load()
	if client == nil {
		return nil, ErrUnavailable
	}

	obj, err := client.GetObject(ctx, p.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}

	// GetObject is lazy; stat now so a missing key surfaces here.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat object %q: %w", key, err)
	}

	return obj, nil
}

// Delete removes the object at key.
func (p *MinioProvider) Delete(ctx context.Context, key string) error {
	client := p.client.Load()
	if client == nil {
		return ErrUnavailable
	}
	if err := client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// Exists reports whether key exists. Backend errors resolve to false.
func (p *MinioProvider) Exists(ctx context.Context, key string) bool {
	client := p.client.Load()
	if client == nil {
		return false
	}
	_, err := client.StatObject(ctx, p.bucket, key, minio.StatObjectOptions{})
	return err == nil
}

// URL returns the browser-accessible URL for the given key.
func (p *MinioProvider) URL(key string) string {
	scheme := "http"
	if p.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.endpoint, p.bucket, key)
}

// ensureBucket verifies the bucket exists, creating it when missing.
func (p *MinioProvider) ensureBucket(ctx context.Context, client *minio.Client) error {
	exists, err := client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", p.bucket, err)
		}
		p.log.Info().Str("bucket", p.bucket).Msg("created bucket")
	}
	return nil
}
