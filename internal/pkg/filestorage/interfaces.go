package filestorage

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrFileNotFound is returned by Open and Delete for an unknown reference
var ErrFileNotFound = errors.New("file not found in blob store")

// FileRef identifies a stored blob. It is generated by the store on Put.
type FileRef = primitive.ObjectID

// FileInfo describes a stored blob
type FileInfo struct {
	Ref         FileRef
	Name        string
	ContentType string
	Size        int64
}

// BlobStore stores binary payloads by opaque reference
type BlobStore interface {
	// Put stores the content read from r under name, tagged with contentType.
	// It returns only once the store has acknowledged the write.
	// size is the number of bytes r will yield, or -1 when unknown.
	Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (FileRef, error)

	// Open returns a reader over the blob. The caller closes it.
	Open(ctx context.Context, ref FileRef) (io.ReadCloser, error)

	// Delete removes the blob. Unknown references yield ErrFileNotFound.
	Delete(ctx context.Context, ref FileRef) error
}
