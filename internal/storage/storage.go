package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the blob store abstraction for uploaded page
// images and generated audio. Implementations must avoid local disk and rely
// on streaming I/O only.

// Key prefixes for the two blob namespaces.
const (
	ImagePrefix = "ocr-uploads"
	AudioPrefix = "tts-audio"
)

// PutObjectOptions define optional parameters for uploading objects.
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

// Storage is an S3-compatible blob store client. Clients never read blobs
// back through the server; consumers fetch them via presigned URLs.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL granting read access to the
	// object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
