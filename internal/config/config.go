// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Storage backend selection: "minio" (default) or "azure".
	// Read once at startup; the choice is immutable for the process lifetime.
	StorageType   string
	ContainerName string

	// S3-compatible backend (MinIO locally, any S3-compatible store in production)
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioSecure    bool

	// Azure Blob backend. The connection string takes priority; otherwise the
	// account name is combined with the default credential chain.
	AzureConnectionString string
	AzureAccountName      string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageType:   strings.ToLower(getEnv("STORAGE_TYPE", "minio")),
		ContainerName: getEnv("CONTAINER_NAME", "qrcodes"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioSecure:    getEnv("MINIO_SECURE", "false") == "true",

		AzureConnectionString: getEnv("AZURE_STORAGE_CONNECTION_STRING", ""),
		AzureAccountName:      getEnv("AZURE_STORAGE_ACCOUNT_NAME", ""),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
