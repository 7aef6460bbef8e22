package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qrkeep/service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "STORAGE_TYPE", "CONTAINER_NAME",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_SECURE",
		"AZURE_STORAGE_CONNECTION_STRING", "AZURE_STORAGE_ACCOUNT_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "minio", cfg.StorageType)
	require.Equal(t, "qrcodes", cfg.ContainerName)
	require.Equal(t, "localhost:9000", cfg.MinioEndpoint)
	require.False(t, cfg.MinioSecure)
	require.Empty(t, cfg.AzureConnectionString)
	require.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "AZURE")
	t.Setenv("CONTAINER_NAME", "images")
	t.Setenv("MINIO_SECURE", "true")
	t.Setenv("AZURE_STORAGE_ACCOUNT_NAME", "prodaccount")
	t.Setenv("APP_ENV", "production")

	cfg := config.Load()
	require.Equal(t, "azure", cfg.StorageType, "storage type is lowercased")
	require.Equal(t, "images", cfg.ContainerName)
	require.True(t, cfg.MinioSecure)
	require.Equal(t, "prodaccount", cfg.AzureAccountName)
	require.True(t, cfg.IsProduction())
}
