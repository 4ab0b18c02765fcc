// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the interface for uploading objects and minting read URLs.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// PresignedGetURL returns a time-limited URL granting read access to the
	// object at key without further authentication.
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
