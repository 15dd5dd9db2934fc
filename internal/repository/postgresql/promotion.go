package postgresql

import (
	"context"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/promotion"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const promotionColumns = `id, user_id, old_position, new_position, promotion_date, status, created_at`

type promotionRepositoryImpl struct {
	db *database.DB
}

func NewPromotionRepository(db *database.DB) promotion.PromotionRepository {
	return &promotionRepositoryImpl{db: db}
}

func scanPromotion(row pgx.Row) (promotion.PromotionRecord, error) {
	var p promotion.PromotionRecord
	var status string
	err := row.Scan(&p.ID, &p.UserID, &p.OldPosition, &p.NewPosition, &p.PromotionDate, &status, &p.CreatedAt)
	p.Status = promotion.Status(status)
	return p, err
}

// Create implements promotion.PromotionRepository.
func (r *promotionRepositoryImpl) Create(ctx context.Context, record promotion.PromotionRecord) (promotion.PromotionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO promotions (user_id, old_position, new_position, promotion_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + promotionColumns

	created, err := scanPromotion(q.QueryRow(ctx, query,
		record.UserID,
		record.OldPosition,
		record.NewPosition,
		record.PromotionDate,
		string(record.Status),
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return promotion.PromotionRecord{}, user.ErrUserNotFound
		}
		return promotion.PromotionRecord{}, fmt.Errorf("insert promotion: %w", err)
	}
	return created, nil
}

// List implements promotion.PromotionRepository.
func (r *promotionRepositoryImpl) List(ctx context.Context) ([]promotion.PromotionRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY promotion_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	records := make([]promotion.PromotionRecord, 0)
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotions: %w", err)
	}
	return records, nil
}
