package postgresql

import (
	"context"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/succession"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
)

type successionRepositoryImpl struct {
	db *database.DB
}

func NewSuccessionRepository(db *database.DB) succession.SuccessionRepository {
	return &successionRepositoryImpl{db: db}
}

// Create implements succession.SuccessionRepository.
// The successor reference is enforced by the foreign key.
func (r *successionRepositoryImpl) Create(ctx context.Context, plan succession.SuccessionPlan) (succession.SuccessionPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO succession_plans (critical_role, successor_id, readiness)
		VALUES ($1, $2, $3)
		RETURNING id, critical_role, successor_id, readiness, created_at
	`

	var created succession.SuccessionPlan
	var readiness string
	err := q.QueryRow(ctx, query, plan.CriticalRole, plan.SuccessorID, string(plan.Readiness)).Scan(
		&created.ID,
		&created.CriticalRole,
		&created.SuccessorID,
		&readiness,
		&created.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return succession.SuccessionPlan{}, succession.ErrSuccessorReference
		}
		return succession.SuccessionPlan{}, fmt.Errorf("insert succession plan: %w", err)
	}
	created.Readiness = succession.Readiness(readiness)
	return created, nil
}

// List implements succession.SuccessionRepository.
func (r *successionRepositoryImpl) List(ctx context.Context) ([]succession.SuccessionPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.critical_role, s.successor_id, u.name, s.readiness, s.created_at
		FROM succession_plans s
		JOIN users u ON u.id = s.successor_id
		ORDER BY s.critical_role, s.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list succession plans: %w", err)
	}
	defer rows.Close()

	plans := make([]succession.SuccessionPlan, 0)
	for rows.Next() {
		var p succession.SuccessionPlan
		var readiness string
		if err := rows.Scan(&p.ID, &p.CriticalRole, &p.SuccessorID, &p.SuccessorName, &readiness, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan succession plan: %w", err)
		}
		p.Readiness = succession.Readiness(readiness)
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate succession plans: %w", err)
	}
	return plans, nil
}
