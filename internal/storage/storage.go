package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the blob-store contract. Keys are opaque strings; callers
// never interpret file contents.
type Storage interface {
	// Save stores a blob under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a blob by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a blob.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the key.
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a short-lived retrieval URL for private blobs.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the blob size in bytes.
	GetSize(ctx context.Context, key string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for custom S3 endpoints
	UseSSL    bool
}

// NewStorage builds a backend based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
