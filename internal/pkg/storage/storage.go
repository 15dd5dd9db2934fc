package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Download when no blob exists under the key.
var ErrObjectNotFound = errors.New("object not found")

type FileStorage interface {
	// Upload stores the content under key. size may be -1 when unknown.
	Upload(ctx context.Context, file io.Reader, key string, contentType string, size int64) error

	// Download opens the blob stored under key. Callers must close it.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a blob; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
