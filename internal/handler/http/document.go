package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListByOwner(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
	maxUploadBytes  int64
}

func NewDocumentHandler(documentService document.DocumentService, maxUploadBytes int64) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Upload implements DocumentHandler. Expects multipart with a "file" part and optional display_name and category.
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	if err := parseMultipart(w, r, h.maxUploadBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		if errors.Is(err, document.ErrFileTooLarge) {
			response.HandleError(w, err)
			return
		}
		response.HandleError(w, document.ErrMissingFile)
		return
	}

	upload, file, err := formUpload(r, "file")
	if err != nil {
		if errors.Is(err, document.ErrMissingFile) {
			response.HandleError(w, err)
			return
		}
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req := document.StoreDocumentRequest{
		DisplayName: r.FormValue("display_name"),
		Category:    r.FormValue("category"),
	}

	result, err := h.documentService.Store(r.Context(), actor, chi.URLParam(r, "id"), req, upload)
	if err != nil {
		slog.Error("Upload document service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", result)
}

// ListByOwner implements DocumentHandler
func (h *documentHandlerImpl) ListByOwner(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.documentService.ListByOwner(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Download implements DocumentHandler. Streams the stored bytes.
func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	download, err := h.documentService.Retrieve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer download.Content.Close()

	doc := download.Document
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.DisplayName}))
	if doc.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.SizeBytes, 10))
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, download.Content); err != nil {
		slog.Error("Download stream error", "document_id", doc.ID, "error", fmt.Errorf("copy: %w", err))
	}
}
