// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// PublicBaseURL overrides the scheme://host used when building share
	// links, e.g. "https://drop.example.com". Empty means derive from the
	// request.
	PublicBaseURL string

	// Directory for the local blob backend and the thumbnail cache.
	DataDir string

	// Text previews read the whole file into memory; MaxPreviewBytes bounds
	// that read.
	MaxPreviewBytes int64

	// Blob storage backend: "local" or "minio" (any S3-compatible endpoint).
	StorageBackend   string
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment
// variables. Every variable has a default, so the service runs with an empty
// environment: local storage under ./data, listening on :8080.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		DataDir:         getEnv("DATA_DIR", "./data"),
		MaxPreviewBytes: getEnvInt64("MAX_PREVIEW_BYTES", 1<<20),

		StorageBackend:   getEnv("STORAGE_BACKEND", "local"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "filedrop"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
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

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
