package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/placementportal/internal/pkg/logger"
)

// GridFSStorage keeps blobs in a GridFS bucket next to the documents
type GridFSStorage struct {
	database *mongo.Database
	name     string
}

// NewGridFSStorage opens (lazily creating) the named bucket on database
func NewGridFSStorage(database *mongo.Database, bucketName string) (*GridFSStorage, error) {
	s := &GridFSStorage{database: database, name: bucketName}
	if _, err := s.bucket(); err != nil {
		return nil, err
	}
	logger.Info().Str("bucket", bucketName).Msg("GridFS bucket ready")

	return s, nil
}

// bucket returns a fresh handle. Deadlines are bucket state, so each call gets its own
// handle instead of mutating a shared one.
func (s *GridFSStorage) bucket() (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(s.database, options.GridFSBucket().SetName(s.name))
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket %s: %w", s.name, err)
	}
	return bucket, nil
}

// ctxDeadline is the deadline of ctx, or the zero time (no deadline) when it has none
func ctxDeadline(ctx context.Context) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return time.Time{}
}

// Put streams r into a new GridFS file and waits for the final chunk to be written.
// The context deadline bounds every chunk write.
func (s *GridFSStorage) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (FileRef, error) {
	if err := ctx.Err(); err != nil {
		return FileRef{}, fmt.Errorf("upload of %s not started: %w", name, err)
	}

	bucket, err := s.bucket()
	if err != nil {
		return FileRef{}, err
	}
	if err := bucket.SetWriteDeadline(ctxDeadline(ctx)); err != nil {
		return FileRef{}, fmt.Errorf("failed to set write deadline: %w", err)
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	id, err := bucket.UploadFromStream(name, r, opts)
	if err != nil {
		logger.Error().Err(err).Str("bucket", s.name).Str("filename", name).Msg("GridFS upload failed")
		return FileRef{}, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	logger.Debug().Str("bucket", s.name).Str("filename", name).Str("fileId", id.Hex()).Msg("File stored in GridFS")
	return id, nil
}

// Open returns a download stream for ref. The context deadline bounds the lookup and every chunk read.
func (s *GridFSStorage) Open(ctx context.Context, ref FileRef) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("open of %s not started: %w", ref.Hex(), err)
	}

	bucket, err := s.bucket()
	if err != nil {
		return nil, err
	}
	if err := bucket.SetReadDeadline(ctxDeadline(ctx)); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}

	stream, err := bucket.OpenDownloadStream(ref)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open %s: %w", ref.Hex(), err)
	}
	return stream, nil
}

// Delete removes the file document and all of its chunks
func (s *GridFSStorage) Delete(ctx context.Context, ref FileRef) error {
	bucket, err := s.bucket()
	if err != nil {
		return err
	}

	if err := bucket.DeleteContext(ctx, ref); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete %s: %w", ref.Hex(), err)
	}
	return nil
}

var _ BlobStore = (*GridFSStorage)(nil)
