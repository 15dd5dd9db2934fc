package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrOwnerNotFound    = errors.New("document owner does not exist")
	ErrMissingFile      = errors.New("file is required")
	ErrFileTooLarge     = errors.New("file exceeds the maximum upload size")
	// ErrStorageMissing means the metadata row exists but its blob is gone.
	ErrStorageMissing = errors.New("document content is missing from storage")
)
