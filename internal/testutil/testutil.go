// Package testutil holds fixtures shared by the service and controller tests
package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/yigit/placementportal/internal/pkg/filestorage"
)

// ErrStoreDown is returned by FailingBlobStore
var ErrStoreDown = errors.New("blob store unavailable")

// FilePart describes one file field of a multipart form
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Content     []byte
}

// MultipartBody encodes fields and files as multipart/form-data and returns the body with its content type
func MultipartBody(t *testing.T, fields map[string]string, files ...FilePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.FileName))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write part %s: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

// FileHeader builds a parsed *multipart.FileHeader, as a handler would receive it
func FileHeader(t *testing.T, part FilePart) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, part)
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[part.Field]
	if len(headers) != 1 {
		t.Fatalf("expected one file for %s, got %d", part.Field, len(headers))
	}
	return headers[0]
}

// FailingBlobStore fails every call with ErrStoreDown
type FailingBlobStore struct{}

func (FailingBlobStore) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (filestorage.FileRef, error) {
	return filestorage.FileRef{}, ErrStoreDown
}

func (FailingBlobStore) Open(ctx context.Context, ref filestorage.FileRef) (io.ReadCloser, error) {
	return nil, ErrStoreDown
}

func (FailingBlobStore) Delete(ctx context.Context, ref filestorage.FileRef) error {
	return ErrStoreDown
}

var _ filestorage.BlobStore = FailingBlobStore{}
