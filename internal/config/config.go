// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAllowedContentTypes is the set of video MIME types accepted for upload
// when UPLOAD_ALLOWED_CONTENT_TYPES is not set.
var DefaultAllowedContentTypes = []string{
	"video/mp4",
	"video/quicktime",
	"video/webm",
	"video/x-msvideo",
}

// UploadURLTTL is how long a pre-signed upload URL stays valid.
const UploadURLTTL = 900 * time.Second

// Config holds all runtime configuration for the service.
type Config struct {
	Port              string
	AppEnv            string
	CORSAllowedOrigin string

	// Object storage. AWS S3 unless StorageEndpoint points at an S3-compatible server.
	StorageRegion    string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string // empty means presigned-URL requests fail as misconfigured
	StorageEndpoint  string
	StorageUseSSL    bool

	AllowedContentTypes []string
	UploadURLTTL        time.Duration

	// EnvFileLoaded reports whether a .env file was read by Load.
	EnvFileLoaded bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	loaded := godotenv.Load() == nil

	cfg := FromEnv()
	cfg.EnvFileLoaded = loaded
	return cfg
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		Port:              getEnv("PORT", "8000"),
		AppEnv:            getEnv("APP_ENV", "development"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		StorageRegion:    getEnv("AWS_REGION", "us-east-1"),
		StorageAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		StorageSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		StorageBucket:    strings.TrimSpace(os.Getenv("S3_BUCKET_NAME")),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "true") == "true",

		AllowedContentTypes: splitList(os.Getenv("UPLOAD_ALLOWED_CONTENT_TYPES"), DefaultAllowedContentTypes),
		UploadURLTTL:        UploadURLTTL,
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesCustomEndpoint reports whether signing targets an S3-compatible server
// rather than AWS S3.
func (c *Config) UsesCustomEndpoint() bool {
	return c.StorageEndpoint != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated list, falling back when it yields nothing.
func splitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
