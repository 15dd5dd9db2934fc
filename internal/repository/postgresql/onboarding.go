package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/onboarding"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const onboardingViewQuery = `
		SELECT o.id, o.user_id, o.start_date, o.status, o.progress, o.created_at, o.updated_at,
			   u.name, u.email, u.position, u.department, u.manager_id
		FROM onboarding_records o
		JOIN users u ON u.id = o.user_id`

type onboardingRepositoryImpl struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) onboarding.OnboardingRepository {
	return &onboardingRepositoryImpl{db: db}
}

func scanOnboardingView(row pgx.Row) (onboarding.OnboardingView, error) {
	var v onboarding.OnboardingView
	var status string
	err := row.Scan(
		&v.Record.ID,
		&v.Record.UserID,
		&v.Record.StartDate,
		&status,
		&v.Record.Progress,
		&v.Record.CreatedAt,
		&v.Record.UpdatedAt,
		&v.Name,
		&v.Email,
		&v.Position,
		&v.Department,
		&v.ManagerID,
	)
	v.Record.Status = onboarding.Status(status)
	return v, err
}

// Create implements onboarding.OnboardingRepository.
func (r *onboardingRepositoryImpl) Create(ctx context.Context, record onboarding.OnboardingRecord) (onboarding.OnboardingRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding_records (user_id, start_date, status, progress)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, start_date, status, progress, created_at, updated_at
	`

	var created onboarding.OnboardingRecord
	var status string
	err := q.QueryRow(ctx, query, record.UserID, record.StartDate, string(record.Status), record.Progress).Scan(
		&created.ID,
		&created.UserID,
		&created.StartDate,
		&status,
		&created.Progress,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return onboarding.OnboardingRecord{}, fmt.Errorf("insert onboarding record: %w", err)
	}
	created.Status = onboarding.Status(status)
	return created, nil
}

// List implements onboarding.OnboardingRepository.
func (r *onboardingRepositoryImpl) List(ctx context.Context) ([]onboarding.OnboardingView, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, onboardingViewQuery+` ORDER BY o.start_date DESC, u.name`)
	if err != nil {
		return nil, fmt.Errorf("list onboarding records: %w", err)
	}
	defer rows.Close()

	views := make([]onboarding.OnboardingView, 0)
	for rows.Next() {
		v, err := scanOnboardingView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan onboarding record: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate onboarding records: %w", err)
	}
	return views, nil
}

// GetByUserID implements onboarding.OnboardingRepository.
func (r *onboardingRepositoryImpl) GetByUserID(ctx context.Context, userID string) (onboarding.OnboardingView, error) {
	q := GetQuerier(ctx, r.db)

	v, err := scanOnboardingView(q.QueryRow(ctx, onboardingViewQuery+` WHERE o.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.OnboardingView{}, onboarding.ErrOnboardingNotFound
		}
		return onboarding.OnboardingView{}, fmt.Errorf("get onboarding record: %w", err)
	}
	return v, nil
}

// UpdateByUserID implements onboarding.OnboardingRepository.
func (r *onboardingRepositoryImpl) UpdateByUserID(ctx context.Context, userID string, status *onboarding.Status, progress *int) error {
	q := GetQuerier(ctx, r.db)

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	query := `
		UPDATE onboarding_records
		SET status = COALESCE($1, status),
			progress = COALESCE($2, progress),
			updated_at = NOW()
		WHERE user_id = $3
	`
	tag, err := q.Exec(ctx, query, statusArg, progress, userID)
	if err != nil {
		return fmt.Errorf("update onboarding record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrOnboardingNotFound
	}
	return nil
}
