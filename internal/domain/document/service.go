package document

import (
	"context"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
)

type DocumentService interface {
	// Store writes the blob first, then the metadata row.
	Store(ctx context.Context, actor user.Actor, ownerID string, req StoreDocumentRequest, upload Upload) (DocumentResponse, error)
	Retrieve(ctx context.Context, actor user.Actor, id string) (Download, error)
	ListByOwner(ctx context.Context, actor user.Actor, ownerID string) ([]DocumentResponse, error)
}
