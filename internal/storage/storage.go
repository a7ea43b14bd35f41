package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"auralearn/internal/config"
)

// Package storage contains binary content storage backends for uploaded
// study materials. The default backend writes to a local directory; an
// S3-compatible backend (MinIO) is available for deployments that want it.

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the content storage contract. Methods use context and streaming
// readers; a failed Put is the caller's StorageError and is never retried here.
type Storage interface {
	// Put stores an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// New creates a storage backend from configuration. The local backend is the
// default; "minio" selects the S3-compatible backend.
func New(cfg config.StorageConfig, minioCfg config.MinIOConfig) (Storage, error) {
	switch cfg.Type {
	case "", config.StorageTypeLocal:
		return NewLocal(cfg.LocalDir)
	case config.StorageTypeMinIO:
		return NewMinIO(minioCfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
