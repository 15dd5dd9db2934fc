package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/storage"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	"github.com/hrflo/hrflo-backend/internal/service/file"
)

type DocumentServiceImpl struct {
	documentRepo document.DocumentRepository
	userRepo     user.UserRepository
	fileService  file.FileService
	maxSize      int64
}

// NewDocumentService creates the document registry. maxSize <= 0 disables the size check.
func NewDocumentService(documentRepo document.DocumentRepository, userRepo user.UserRepository, fileService file.FileService, maxSize int64) document.DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		userRepo:     userRepo,
		fileService:  fileService,
		maxSize:      maxSize,
	}
}

// Store implements document.DocumentService.
func (s *DocumentServiceImpl) Store(ctx context.Context, actor user.Actor, ownerID string, req document.StoreDocumentRequest, upload document.Upload) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}
	if upload.Content == nil {
		return document.DocumentResponse{}, document.ErrMissingFile
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = filepath.Base(upload.Filename)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = document.DefaultCategory
	}
	contentType := file.ContentType(upload)
	if err := validateUpload(displayName, contentType); err != nil {
		return document.DocumentResponse{}, err
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return document.DocumentResponse{}, document.ErrFileTooLarge
	}
	if !validator.IsValidUUID(ownerID) {
		return document.DocumentResponse{}, document.ErrOwnerNotFound
	}
	if !actor.CanAccessUser(ownerID, user.PermissionDocumentManageAll) {
		return document.DocumentResponse{}, user.ErrInsufficientPermissions
	}

	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to check document owner: %w", err)
	}
	if !exists {
		return document.DocumentResponse{}, document.ErrOwnerNotFound
	}

	key, err := s.fileService.UploadDocument(ctx, ownerID, upload)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	doc, err := s.documentRepo.Create(ctx, document.Document{
		OwnerID:     ownerID,
		DisplayName: displayName,
		Category:    category,
		StorageKey:  key,
		ContentType: contentType,
		SizeBytes:   upload.Size,
	})
	if err != nil {
		if delErr := s.fileService.DeleteFile(context.WithoutCancel(ctx), key); delErr != nil {
			slog.Error("failed to delete orphaned document blob", "key", key, "error", delErr)
		}
		if errors.Is(err, document.ErrOwnerNotFound) {
			return document.DocumentResponse{}, err
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}

	return document.NewDocumentResponse(doc), nil
}

// validateUpload checks the values taken from the multipart header against the column limits.
func validateUpload(displayName, contentType string) error {
	var errs validator.ValidationErrors

	if len(displayName) > 255 {
		errs.Add("display_name", "file name must not exceed 255 characters")
	}
	if len(contentType) > 255 {
		errs.Add("content_type", "content type must not exceed 255 characters")
	}

	return errs.Err()
}

// Retrieve implements document.DocumentService. Callers must close the returned content.
func (s *DocumentServiceImpl) Retrieve(ctx context.Context, actor user.Actor, id string) (document.Download, error) {
	if !validator.IsValidUUID(id) {
		return document.Download{}, document.ErrDocumentNotFound
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return document.Download{}, err
	}
	if !actor.CanAccessUser(doc.OwnerID, user.PermissionDocumentManageAll) {
		return document.Download{}, user.ErrInsufficientPermissions
	}

	content, err := s.fileService.Open(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			slog.Warn("document blob missing from storage", "document_id", doc.ID, "key", doc.StorageKey)
			return document.Download{}, document.ErrStorageMissing
		}
		return document.Download{}, fmt.Errorf("failed to open document content: %w", err)
	}

	return document.Download{Document: doc, Content: content}, nil
}

// ListByOwner implements document.DocumentService.
func (s *DocumentServiceImpl) ListByOwner(ctx context.Context, actor user.Actor, ownerID string) ([]document.DocumentResponse, error) {
	if !validator.IsValidUUID(ownerID) {
		return nil, document.ErrOwnerNotFound
	}
	if !actor.CanAccessUser(ownerID, user.PermissionDocumentManageAll) {
		return nil, user.ErrInsufficientPermissions
	}

	docs, err := s.documentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, document.NewDocumentResponse(d))
	}
	return responses, nil
}
