package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/rs/zerolog"
)

// AzureProvider implements Provider using Azure Blob Storage. Credentials
// resolve in priority order: an explicit connection string, then the default
// credential chain (managed identity) combined with the account name.
type AzureProvider struct {
	connectionString string
	accountName      string
	container        string
	endpoint         string
	log              zerolog.Logger

	// Published once by Initialize; nil while degraded.
	client atomic.Pointer[azblob.Client]
}

// NewAzure returns an uninitialized Azure Blob provider. Call Initialize
// before use; until then every operation returns ErrUnavailable.
func NewAzure(connectionString, accountName, container string, logger zerolog.Logger) *AzureProvider {
	return &AzureProvider{
		connectionString: connectionString,
		accountName:      accountName,
		container:        container,
		endpoint:         blobEndpoint(connectionString, accountName),
		log:              logger.With().Str("component", "storage").Str("backend", "azure").Logger(),
	}
}

// Initialize builds the client and ensures the container exists. Credential
// or container failures leave the provider degraded with a warning; they
// never abort startup.
func (p *AzureProvider) Initialize(ctx context.Context) {
	var (
		client *azblob.Client
		err    error
	)
	switch {
	case p.connectionString != "":
		client, err = azblob.NewClientFromConnectionString(p.connectionString, nil)
	case p.accountName != "":
		var cred *azidentity.DefaultAzureCredential
		cred, err = azidentity.NewDefaultAzureCredential(nil)
		if err == nil {
			client, err = azblob.NewClient(p.endpoint, cred, nil)
		}
	default:
		err = errors.New("neither connection string nor account name configured")
	}
	if err != nil {
		p.log.Warn().Err(err).Msg("credentials unresolved, storage degraded")
		return
	}

	if _, err := client.CreateContainer(ctx, p.container, nil); err != nil {
		// An existing container reports a conflict; that is success.
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			p.log.Warn().Err(err).Str("container", p.container).Msg("create container failed, continuing")
		}
	}

	p.client.Store(client)
	p.log.Info().Str("container", p.container).Msg("storage initialized")
}

// Upload stores data under key with the given content type.
func (p *AzureProvider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	client := p.client.Load()
	if client == nil {
		return "", ErrUnavailable
	}

	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	if _, err := client.UploadBuffer(ctx, p.container, key, data, opts); err != nil {
		return "", fmt.Errorf("upload blob %q: %w", key, err)
	}
	return p.URL(key), nil
}

// Download returns a stream for the blob at key.
func (p *AzureProvider) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	client := p.client.Load()
	if client == nil {
		return nil, ErrUnavailable
	}

	resp, err := client.DownloadStream(ctx, p.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download blob %q: %w", key, err)
	}
	return resp.Body, nil
}

// Delete removes the blob at key.
func (p *AzureProvider) Delete(ctx context.Context, key string) error {
	client := p.client.Load()
	if client == nil {
		return ErrUnavailable
	}
	if _, err := client.DeleteBlob(ctx, p.container, key, nil); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

// Exists reports whether the blob exists. Backend errors resolve to false.
func (p *AzureProvider) Exists(ctx context.Context, key string) bool {
	client := p.client.Load()
	if client == nil {
		return false
	}
	blobClient := client.ServiceClient().NewContainerClient(p.container).NewBlobClient(key)
	_, err := blobClient.GetProperties(ctx, nil)
	return err == nil
}

// URL returns the blob URL built from the endpoint captured at construction.
func (p *AzureProvider) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", p.endpoint, p.container, key)
}

// blobEndpoint derives the service endpoint from the connection string when
// present, falling back to the canonical account-name form.
func blobEndpoint(connectionString, accountName string) string {
	for _, part := range strings.Split(connectionString, ";") {
		if v, ok := strings.CutPrefix(part, "BlobEndpoint="); ok {
			return strings.TrimRight(v, "/")
		}
	}
	for _, part := range strings.Split(connectionString, ";") {
		if v, ok := strings.CutPrefix(part, "AccountName="); ok {
			accountName = v
			break
		}
	}
	return fmt.Sprintf("https://%s.blob.core.windows.net", accountName)
}
