package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, description, location, department, employment_type, closing_date,
		status, created_at, updated_at`

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

func scanJob(row pgx.Row) (job.JobPosting, error) {
	var j job.JobPosting
	var employmentType, status string
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Location,
		&j.Department,
		&employmentType,
		&j.ClosingDate,
		&status,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	j.EmploymentType = job.EmploymentType(employmentType)
	j.Status = job.Status(status)
	return j, err
}

func (r *jobRepositoryImpl) queryJobs(ctx context.Context, query string, args ...interface{}) ([]job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()

	jobs := make([]job.JobPosting, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job posting: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job postings: %w", err)
	}
	return jobs, nil
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.JobPosting) (job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (title, description, location, department, employment_type, closing_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query,
		newJob.Title,
		newJob.Description,
		newJob.Location,
		newJob.Department,
		string(newJob.EmploymentType),
		newJob.ClosingDate,
		string(newJob.Status),
	))
	if err != nil {
		return job.JobPosting{}, fmt.Errorf("insert job posting: %w", err)
	}
	return created, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobPosting{}, job.ErrJobNotFound
		}
		return job.JobPosting{}, fmt.Errorf("get job posting: %w", err)
	}
	return found, nil
}

// GetStatusForShare implements job.JobRepository.
func (r *jobRepositoryImpl) GetStatusForShare(ctx context.Context, id string) (job.Status, error) {
	q := GetQuerier(ctx, r.db)

	var status string
	err := q.QueryRow(ctx, `SELECT status FROM job_postings WHERE id = $1 FOR SHARE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", job.ErrJobNotFound
		}
		return "", fmt.Errorf("lock job posting: %w", err)
	}
	return job.Status(status), nil
}

// ListByStatus implements job.JobRepository.
func (r *jobRepositoryImpl) ListByStatus(ctx context.Context, status job.Status) ([]job.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE status = $1 ORDER BY created_at DESC`
	return r.queryJobs(ctx, query, string(status))
}

// ListAll implements job.JobRepository.
func (r *jobRepositoryImpl) ListAll(ctx context.Context) ([]job.JobPosting, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC`)
}

// UpdateStatus implements job.JobRepository.
func (r *jobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.Status) (job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + jobColumns

	updated, err := scanJob(q.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobPosting{}, job.ErrJobNotFound
		}
		return job.JobPosting{}, fmt.Errorf("update job posting status: %w", err)
	}
	return updated, nil
}

// CloseExpired implements job.JobRepository.
func (r *jobRepositoryImpl) CloseExpired(ctx context.Context, today time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET status = 'Closed', updated_at = NOW()
		WHERE status = 'Open' AND closing_date IS NOT NULL AND closing_date < $1
	`
	tag, err := q.Exec(ctx, query, today)
	if err != nil {
		return 0, fmt.Errorf("close expired job postings: %w", err)
	}
	return tag.RowsAffected(), nil
}
