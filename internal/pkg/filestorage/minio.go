package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/pkg/logger"
)

// MinioConfig carries the S3-compatible connection settings
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// MinioStorage keeps blobs as objects keyed by the hex form of their reference
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// clientEndpoint splits Endpoint into the host:port minio.New expects and whether TLS is on.
// The scheme decides TLS; a bare host:port means plain HTTP.
func (c MinioConfig) clientEndpoint() (string, bool, error) {
	raw := strings.TrimSpace(c.Endpoint)
	if raw == "" {
		return "", false, fmt.Errorf("minio endpoint is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("minio endpoint %q: %w", c.Endpoint, err)
	}

	var secure bool
	switch u.Scheme {
	case "http":
	case "https":
		secure = true
	default:
		return "", false, fmt.Errorf("minio endpoint %q: unsupported scheme %q", c.Endpoint, u.Scheme)
	}

	switch {
	case u.Host == "":
		return "", false, fmt.Errorf("minio endpoint %q has no host", c.Endpoint)
	case u.User != nil:
		return "", false, fmt.Errorf("minio endpoint %q must not carry credentials, use the access and secret keys", c.Endpoint)
	case strings.Trim(u.Path, "/") != "" || u.RawQuery != "":
		return "", false, fmt.Errorf("minio endpoint %q must not contain a path or query", c.Endpoint)
	}
	return u.Host, secure, nil
}

// NewMinioStorage connects to the endpoint and checks the bucket exists
func NewMinioStorage(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio configuration incomplete")
	}

	endpoint, secure, err := cfg.clientEndpoint()
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check minio bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket does not exist: %s", cfg.Bucket)
	}

	logger.Info().Str("endpoint", endpoint).Str("bucket", cfg.Bucket).Bool("secure", secure).Msg("MinIO storage ready")
	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads r as a new object. A negative size makes the client buffer multipart chunks.
func (s *MinioStorage) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (FileRef, error) {
	ref := primitive.NewObjectID()

	_, err := s.client.PutObject(ctx, s.bucket, ref.Hex(), r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"filename": name},
	})
	if err != nil {
		logger.Error().Err(err).Str("bucket", s.bucket).Str("filename", name).Msg("MinIO upload failed")
		return FileRef{}, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return ref, nil
}

// Open returns the object body. The object is stat'ed first so a missing key surfaces here
// rather than on the first Read.
func (s *MinioStorage) Open(ctx context.Context, ref FileRef) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ref.Hex(), minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioError(ref, err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, mapMinioError(ref, err)
	}
	return obj, nil
}

// Delete removes the object. S3 deletes are idempotent, so existence is checked first.
func (s *MinioStorage) Delete(ctx context.Context, ref FileRef) error {
	if _, err := s.client.StatObject(ctx, s.bucket, ref.Hex(), minio.StatObjectOptions{}); err != nil {
		return mapMinioError(ref, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, ref.Hex(), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", ref.Hex(), err)
	}
	return nil
}

func mapMinioError(ref FileRef, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrFileNotFound
	}
	return fmt.Errorf("object %s: %w", ref.Hex(), err)
}

var _ BlobStore = (*MinioStorage)(nil)
