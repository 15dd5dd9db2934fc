package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, strings.NewReader("hello"), "documents/u-1/a.txt", "text/plain", 5))

	rc, err := s.Download(ctx, "documents/u-1/a.txt")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestLocalStorage_DownloadMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(context.Background(), "documents/u-1/missing.pdf")

	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_DeletedOutOfBand(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, strings.NewReader("x"), "documents/u-1/b.pdf", "application/pdf", 1))
	require.NoError(t, os.Remove(filepath.Join(dir, "documents", "u-1", "b.pdf")))

	_, err = s.Download(ctx, "documents/u-1/b.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../escape.txt", "documents/../../escape.txt", "/etc/passwd", ""} {
		err := s.Upload(ctx, strings.NewReader("x"), key, "text/plain", 1)
		assert.Error(t, err, key)
	}
}

func TestLocalStorage_NeverOverwrites(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, strings.NewReader("first"), "k/file", "text/plain", 5))
	assert.Error(t, s.Upload(ctx, strings.NewReader("second"), "k/file", "text/plain", 6))

	rc, err := s.Download(ctx, "k/file")
	require.NoError(t, err)
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	assert.Equal(t, "first", string(content))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "documents/none"))
}
