package postgresql

import (
	"context"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) recruitment.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

// Upsert implements recruitment.CandidateRepository.
// A single statement, so two concurrent first applications with one email still yield one candidate.
// The CTE reads the statement snapshot, so it sees the resume key from before the update.
func (r *candidateRepositoryImpl) Upsert(ctx context.Context, name, email string, resumeRef *string) (recruitment.Candidate, *string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH previous AS (
			SELECT resume_ref FROM candidates WHERE email = $2
		)
		INSERT INTO candidates (name, email, resume_ref)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET resume_ref = COALESCE(EXCLUDED.resume_ref, candidates.resume_ref),
			updated_at = NOW()
		RETURNING id, name, email, resume_ref, created_at, updated_at, (SELECT resume_ref FROM previous)
	`

	var c recruitment.Candidate
	var replacedRef *string
	err := q.QueryRow(ctx, query, name, email, resumeRef).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.ResumeRef,
		&c.CreatedAt,
		&c.UpdatedAt,
		&replacedRef,
	)
	if err != nil {
		return recruitment.Candidate{}, nil, fmt.Errorf("upsert candidate: %w", err)
	}
	return c, replacedRef, nil
}
