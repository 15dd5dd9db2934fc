package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const documentColumns = `id, owner_id, display_name, category, storage_key, content_type, size_bytes, uploaded_at`

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.DisplayName,
		&d.Category,
		&d.StorageKey,
		&d.ContentType,
		&d.SizeBytes,
		&d.UploadedAt,
	)
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (owner_id, display_name, category, storage_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		doc.OwnerID,
		doc.DisplayName,
		doc.Category,
		doc.StorageKey,
		doc.ContentType,
		doc.SizeBytes,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return document.Document{}, document.ErrOwnerNotFound
		}
		return document.Document{}, fmt.Errorf("insert document: %w", err)
	}
	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("get document: %w", err)
	}
	return found, nil
}

// ListByOwner implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+documentColumns+` FROM documents WHERE owner_id = $1 ORDER BY uploaded_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]document.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
