package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStorage is an in-memory BlobStore, useful for tests and local runs.
// This implementation is safe for concurrent use.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[FileRef][]byte
	infos map[FileRef]FileInfo
}

// NewMemoryStorage creates an empty in-memory blob store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		blobs: make(map[FileRef][]byte),
		infos: make(map[FileRef]FileInfo),
	}
}

// Put reads r fully and keeps a copy
func (m *MemoryStorage) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (FileRef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to read content: %w", err)
	}
	if size >= 0 && int64(len(data)) != size {
		return FileRef{}, fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	ref := primitive.NewObjectID()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[ref] = data
	m.infos[ref] = FileInfo{Ref: ref, Name: name, ContentType: contentType, Size: int64(len(data))}
	return ref, nil
}

// Open returns a reader over a snapshot of the blob
func (m *MemoryStorage) Open(ctx context.Context, ref FileRef) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[ref]
	if !ok {
		return nil, ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete forgets the blob
func (m *MemoryStorage) Delete(ctx context.Context, ref FileRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[ref]; !ok {
		return ErrFileNotFound
	}
	delete(m.blobs, ref)
	delete(m.infos, ref)
	return nil
}

// Stat returns what was recorded at Put time
func (m *MemoryStorage) Stat(ref FileRef) (*FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.infos[ref]
	if !ok {
		return nil, ErrFileNotFound
	}
	return &info, nil
}

// Len reports how many blobs are stored
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

var _ BlobStore = (*MemoryStorage)(nil)
