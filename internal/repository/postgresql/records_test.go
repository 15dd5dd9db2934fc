package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/onboarding"
	"github.com/hrflo/hrflo-backend/internal/domain/promotion"
	"github.com/hrflo/hrflo-backend/internal/domain/succession"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingRepository_UpdateByUserID(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOnboardingRepository(db)
	status := onboarding.StatusInProgress
	progress := 40

	mock.ExpectExec(sqlPattern("UPDATE onboarding_records")).
		WithArgs(strPtr("In Progress"), &progress, "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateByUserID(context.Background(), "u-1", &status, &progress))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnboardingRepository_UpdateByUserID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOnboardingRepository(db)
	progress := 10

	mock.ExpectExec(sqlPattern("UPDATE onboarding_records")).
		WithArgs((*string)(nil), &progress, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateByUserID(context.Background(), "missing", nil, &progress)

	assert.ErrorIs(t, err, onboarding.ErrOnboardingNotFound)
}

func TestOnboardingRepository_List(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewOnboardingRepository(db)
	now := time.Now().UTC()
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(sqlPattern("FROM onboarding_records o")).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "start_date", "status", "progress", "created_at", "updated_at",
			"name", "email", "position", "department", "manager_id",
		}).AddRow("o-1", "u-1", start, "Pending", 0, now, now, "Jane", "jane@example.com", nil, nil, strPtr("m-1")))

	views, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, onboarding.StatusPending, views[0].Record.Status)
	assert.Equal(t, start, views[0].Record.StartDate)
	assert.Equal(t, "m-1", *views[0].ManagerID)
}

func TestPromotionRepository_Create_UnknownUser(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPromotionRepository(db)

	mock.ExpectQuery(sqlPattern("INSERT INTO promotions")).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err := repo.Create(context.Background(), promotion.PromotionRecord{UserID: "missing", NewPosition: "Lead"})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestPromotionRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPromotionRepository(db)
	now := time.Now().UTC()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	old := strPtr("Engineer")

	mock.ExpectQuery(sqlPattern("INSERT INTO promotions")).
		WithArgs("u-1", old, "Senior Engineer", date, "Approved").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "old_position", "new_position", "promotion_date", "status", "created_at"}).
			AddRow("p-1", "u-1", old, "Senior Engineer", date, "Approved", now))

	created, err := repo.Create(context.Background(), promotion.PromotionRecord{
		UserID:        "u-1",
		OldPosition:   old,
		NewPosition:   "Senior Engineer",
		PromotionDate: date,
		Status:        promotion.StatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, "Engineer", *created.OldPosition)
	assert.Equal(t, promotion.StatusApproved, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuccessionRepository_Create_UnknownSuccessor(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewSuccessionRepository(db)

	mock.ExpectQuery(sqlPattern("INSERT INTO succession_plans")).
		WithArgs("CTO", "missing", "Ready Now").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err := repo.Create(context.Background(), succession.SuccessionPlan{
		CriticalRole: "CTO",
		SuccessorID:  "missing",
		Readiness:    succession.ReadyNow,
	})

	assert.ErrorIs(t, err, succession.ErrSuccessorReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Create_UnknownOwner(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery(sqlPattern("INSERT INTO documents")).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err := repo.Create(context.Background(), document.Document{OwnerID: "missing", StorageKey: "documents/missing/x.pdf"})

	assert.ErrorIs(t, err, document.ErrOwnerNotFound)
}

func TestDocumentRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery(sqlPattern("FROM documents WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "display_name", "category", "storage_key", "content_type", "size_bytes", "uploaded_at"}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestDashboardRepository_Counts(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(sqlPattern("FROM users WHERE role = 'Employee'")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(sqlPattern("FROM job_postings WHERE status = 'Open'")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(sqlPattern("FROM onboarding_records WHERE status <> 'Completed'")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	employees, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	openJobs, err := repo.CountOpenJobs(ctx)
	require.NoError(t, err)
	pending, err := repo.CountPendingOnboardings(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(12), employees)
	assert.Equal(t, int64(3), openJobs)
	assert.Equal(t, int64(2), pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_IsRefreshTokenRevoked(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJWTRepository(db)
	revokedAt := time.Now().Add(-time.Minute)

	mock.ExpectQuery(sqlPattern("FROM refresh_tokens")).
		WithArgs(HashToken("active")).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "revoked_at", "expires_at"}).
			AddRow("u-1", nil, time.Now().Add(time.Hour)))
	mock.ExpectQuery(sqlPattern("FROM refresh_tokens")).
		WithArgs(HashToken("revoked")).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "revoked_at", "expires_at"}).
			AddRow("u-1", &revokedAt, time.Now().Add(time.Hour)))

	userID, revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "active")
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.False(t, revoked)

	_, revoked, err = repo.IsRefreshTokenRevoked(context.Background(), "revoked")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHashToken_NeverReturnsRawToken(t *testing.T) {
	hashed := HashToken("secret-refresh-token")

	assert.NotContains(t, hashed, "secret-refresh-token")
	assert.Equal(t, hashed, HashToken("secret-refresh-token"))
}
