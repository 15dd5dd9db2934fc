package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobColumnNames = []string{
	"id", "title", "description", "location", "department", "employment_type", "closing_date",
	"status", "created_at", "updated_at",
}

func TestJobRepository_ListByStatus_OpenOnly(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(sqlPattern("FROM job_postings WHERE status = $1")).
		WithArgs("Open").
		WillReturnRows(pgxmock.NewRows(jobColumnNames).
			AddRow("j-1", "Backend Engineer", "Go services", "Remote", "Engineering", "Full-time", nil, "Open", now, now))

	jobs, err := repo.ListByStatus(context.Background(), job.StatusOpen)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.StatusOpen, jobs[0].Status)
	assert.Equal(t, job.EmploymentTypeFullTime, jobs[0].EmploymentType)
	assert.Nil(t, jobs[0].ClosingDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(sqlPattern("FROM job_postings WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(jobColumnNames))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, job.ErrJobNotFound)
}

func TestJobRepository_GetStatusForShare(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(sqlPattern("SELECT status FROM job_postings WHERE id = $1 FOR SHARE")).
		WithArgs("j-1").
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("Closed"))

	status, err := repo.GetStatusForShare(context.Background(), "j-1")

	require.NoError(t, err)
	assert.Equal(t, job.StatusClosed, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_UpdateStatus(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now().UTC()
	closing := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(sqlPattern("UPDATE job_postings")).
		WithArgs("Closed", "j-1").
		WillReturnRows(pgxmock.NewRows(jobColumnNames).
			AddRow("j-1", "Backend Engineer", "", "", "", "Contract", &closing, "Closed", now, now))

	updated, err := repo.UpdateStatus(context.Background(), "j-1", job.StatusClosed)

	require.NoError(t, err)
	assert.Equal(t, job.StatusClosed, updated.Status)
	assert.Equal(t, closing, *updated.ClosingDate)
}

func TestJobRepository_CloseExpired(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJobRepository(db)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(sqlPattern("closing_date < $1")).
		WithArgs(today).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.CloseExpired(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
