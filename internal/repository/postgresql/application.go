package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) recruitment.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func scanApplication(row pgx.Row) (recruitment.Application, error) {
	var a recruitment.Application
	var status string
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &status, &a.AppliedAt, &a.UpdatedAt)
	a.Status = recruitment.ApplicationStatus(status)
	return a, err
}

// Create implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, jobID, candidateID string) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (job_id, candidate_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, job_id, candidate_id, status, applied_at, updated_at
	`

	created, err := scanApplication(q.QueryRow(ctx, query, jobID, candidateID, string(recruitment.StatusReceived)))
	if err != nil {
		if isForeignKeyViolation(err) {
			return recruitment.Application{}, recruitment.ErrJobReference
		}
		return recruitment.Application{}, fmt.Errorf("insert application: %w", err)
	}
	return created, nil
}

// ListByJob implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.status, a.applied_at, a.updated_at,
			   c.name, c.email, c.resume_ref
		FROM applications a
		JOIN candidates c ON c.id = a.candidate_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	applicants := make([]recruitment.Applicant, 0)
	for rows.Next() {
		var a recruitment.Applicant
		var status string
		err := rows.Scan(
			&a.Application.ID,
			&a.Application.JobID,
			&a.Application.CandidateID,
			&status,
			&a.Application.AppliedAt,
			&a.Application.UpdatedAt,
			&a.Candidate.Name,
			&a.Candidate.Email,
			&a.Candidate.ResumeRef,
		)
		if err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		a.Application.Status = recruitment.ApplicationStatus(status)
		a.Candidate.ID = a.Application.CandidateID
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applicants: %w", err)
	}
	return applicants, nil
}

// UpdateStatus implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status recruitment.ApplicationStatus) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	terminal := make([]string, 0, len(recruitment.TerminalStatuses))
	for _, s := range recruitment.TerminalStatuses {
		terminal = append(terminal, string(s))
	}

	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND NOT (status = ANY($3))
		RETURNING id, job_id, candidate_id, status, applied_at, updated_at
	`

	updated, err := scanApplication(q.QueryRow(ctx, query, string(status), id, terminal))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return recruitment.Application{}, fmt.Errorf("update application status: %w", err)
	}

	// Nothing updated: either the id is unknown or the application is final.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return recruitment.Application{}, fmt.Errorf("check application exists: %w", err)
	}
	if !exists {
		return recruitment.Application{}, recruitment.ErrApplicationNotFound
	}
	return recruitment.Application{}, recruitment.ErrApplicationFinalized
}
