package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/pkg/storage"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

var resumeExts = []string{".pdf", ".doc", ".docx", ".odt", ".rtf", ".txt"}

var extRegex = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

type FileService interface {
	// UploadDocument stores a user document under documents/<ownerID>/<uuid><ext> and returns the key.
	UploadDocument(ctx context.Context, ownerID string, upload document.Upload) (string, error)

	// UploadResume stores a candidate resume under resumes/<uuid><ext> and returns the key.
	UploadResume(ctx context.Context, upload document.Upload) (string, error)

	// Generic operations
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, key string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// Extension returns the lowercased extension of filename, or "" when it is not a plain extension.
func Extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extRegex.MatchString(ext) {
		return ""
	}
	return ext
}

// ContentType prefers the declared type and falls back to the extension.
func ContentType(upload document.Upload) string {
	if ct := strings.TrimSpace(upload.ContentType); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(Extension(upload.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// DocumentKey builds a fresh storage key; uuid v4 keeps equal filenames apart.
func DocumentKey(ownerID, filename string) string {
	return path.Join("documents", ownerID, uuid.New().String()+Extension(filename))
}

func ResumeKey(filename string) string {
	return path.Join("resumes", uuid.New().String()+Extension(filename))
}

// UploadDocument uploads a user document
func (s *fileServiceImpl) UploadDocument(ctx context.Context, ownerID string, upload document.Upload) (string, error) {
	key := DocumentKey(ownerID, upload.Filename)

	if err := s.storage.Upload(ctx, upload.Content, key, ContentType(upload), upload.Size); err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return key, nil
}

// UploadResume uploads a candidate resume
func (s *fileServiceImpl) UploadResume(ctx context.Context, upload document.Upload) (string, error) {
	ext := Extension(upload.Filename)
	if !validator.IsInSlice(ext, resumeExts) {
		var errs validator.ValidationErrors
		errs.Add("resume", "resume must be one of "+strings.Join(resumeExts, ", "))
		return "", errs
	}

	key := ResumeKey(upload.Filename)
	if err := s.storage.Upload(ctx, upload.Content, key, ContentType(upload), upload.Size); err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return key, nil
}

func (s *fileServiceImpl) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, key)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}
