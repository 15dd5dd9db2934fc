package document

import (
	"io"
	"time"
)

const DefaultCategory = "General"

type Document struct {
	ID          string
	OwnerID     string
	DisplayName string
	Category    string
	StorageKey  string
	ContentType string
	SizeBytes   int64
	UploadedAt  time.Time
}

// Upload is an incoming file. Content is read once.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Download is a stored document with its open content stream. Callers must close Content.
type Download struct {
	Document Document
	Content  io.ReadCloser
}
