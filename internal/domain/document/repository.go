package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Document, error)
}
