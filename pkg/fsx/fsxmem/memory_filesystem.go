package fsxmem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryFileSystem is an in-memory fsx.FileSystem for tests.
// FailWrites forces WriteFile to error, exercising upload-failure paths.
type MemoryFileSystem struct {
	mu         sync.Mutex
	files      map[string][]byte
	FailWrites bool
}

// New creates an empty in-memory file system
func New() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

func (fs *MemoryFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	if fs.FailWrites {
		return fmt.Errorf("write %q: storage unavailable", path)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	fs.files[path] = cp
	return nil
}

func (fs *MemoryFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, ok := fs.files[path]
	if !ok {
		return nil, fmt.Errorf("read %q: not found", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (fs *MemoryFileSystem) DeleteFile(ctx context.Context, path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.files, path)
	return nil
}

func (fs *MemoryFileSystem) Join(parts ...string) string {
	return strings.Join(parts, "/")
}

func (fs *MemoryFileSystem) PublicURL(path string) string {
	return "https://files.test/" + path
}

// Exists reports whether a path was written
func (fs *MemoryFileSystem) Exists(path string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, ok := fs.files[path]
	return ok
}

// Len returns the number of stored files
func (fs *MemoryFileSystem) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}
