package document

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type StoreDocumentRequest struct {
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
}

func (r *StoreDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.DisplayName) > 255 {
		errs.Add("display_name", "display_name must not exceed 255 characters")
	}
	if len(r.Category) > 64 {
		errs.Add("category", "category must not exceed 64 characters")
	}

	return errs.Err()
}

type DocumentResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedAt  string `json:"uploaded_at"`
}

func NewDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		DisplayName: d.DisplayName,
		Category:    d.Category,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		UploadedAt:  d.UploadedAt.Format(time.RFC3339),
	}
}
