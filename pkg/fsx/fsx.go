package fsx

import (
	"context"
	"io"
)

// FileReader is the read-only subset of FileSystem
type FileReader interface {
	// ReadFileStream opens the file at path for streaming
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSystem abstracts durable file storage (S3 in production)
type FileSystem interface {
	FileReader

	// WriteFile stores data at path, overwriting any existing object
	WriteFile(ctx context.Context, path string, data []byte) error

	// DeleteFile removes the object at path
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments
	Join(parts ...string) string

	// PublicURL returns a publicly resolvable URL for a stored path
	PublicURL(path string) string
}
