package filestorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/pkg/logger"
)

// LocalStorage handles saving blobs to the local filesystem.
// Each blob is a file named by its reference plus a JSON sidecar holding FileInfo.
type LocalStorage struct {
	basePath string
}

type localMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) blobPath(ref FileRef) string {
	return filepath.Join(ls.basePath, ref.Hex())
}

func (ls *LocalStorage) metaPath(ref FileRef) string {
	return filepath.Join(ls.basePath, ref.Hex()+".meta.json")
}

// Put copies r to a new file and fsyncs it before returning
func (ls *LocalStorage) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (FileRef, error) {
	ref := primitive.NewObjectID()
	dstPath := ls.blobPath(ref)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return FileRef{}, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, r)
	if err == nil {
		err = dst.Sync()
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		_ = os.Remove(dstPath)
		return FileRef{}, fmt.Errorf("failed to save file content: %w", err)
	}

	meta, err := json.Marshal(localMeta{Name: name, ContentType: contentType, Size: written})
	if err != nil {
		_ = os.Remove(dstPath)
		return FileRef{}, fmt.Errorf("failed to encode file metadata: %w", err)
	}
	if err := os.WriteFile(ls.metaPath(ref), meta, 0o644); err != nil {
		_ = os.Remove(dstPath)
		return FileRef{}, fmt.Errorf("failed to write file metadata: %w", err)
	}

	logger.Info().Str("filename", name).Str("fileId", ref.Hex()).Int64("size", written).Msg("File saved successfully")
	return ref, nil
}

// Open returns the stored file for reading
func (ls *LocalStorage) Open(ctx context.Context, ref FileRef) (io.ReadCloser, error) {
	f, err := os.Open(ls.blobPath(ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file %s: %w", ref.Hex(), err)
	}
	return f, nil
}

// Stat returns the metadata recorded at upload time
func (ls *LocalStorage) Stat(ref FileRef) (*FileInfo, error) {
	raw, err := os.ReadFile(ls.metaPath(ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read metadata for %s: %w", ref.Hex(), err)
	}

	var meta localMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("corrupt metadata for %s: %w", ref.Hex(), err)
	}
	return &FileInfo{Ref: ref, Name: meta.Name, ContentType: meta.ContentType, Size: meta.Size}, nil
}

// Delete removes the blob and its sidecar
func (ls *LocalStorage) Delete(ctx context.Context, ref FileRef) error {
	physicalPath := ls.blobPath(ref)

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return ErrFileNotFound
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	_ = os.Remove(ls.metaPath(ref))

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

var _ BlobStore = (*LocalStorage)(nil)
