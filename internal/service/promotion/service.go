package promotion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/promotion"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
)

type PromotionServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	promotionRepo promotion.PromotionRepository
	now           func() time.Time
}

func NewPromotionService(db *database.DB, userRepo user.UserRepository, promotionRepo promotion.PromotionRepository) promotion.PromotionService {
	return &PromotionServiceImpl{
		db:            db,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		now:           time.Now,
	}
}

// Promote implements promotion.PromotionService.
// The user row stays locked from reading the old position until commit,
// so concurrent promotions of one user are applied one after the other.
func (s *PromotionServiceImpl) Promote(ctx context.Context, req promotion.PromoteRequest) (promotion.PromotionResponse, error) {
	if err := req.Validate(); err != nil {
		return promotion.PromotionResponse{}, err
	}

	now := s.now().UTC()
	promotionDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.PromotionDate != nil {
		promotionDate, _ = validator.IsValidDate(*req.PromotionDate)
	}
	newPosition := strings.TrimSpace(req.NewPosition)

	var record promotion.PromotionRecord
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		oldPosition, err := s.userRepo.GetPositionForUpdate(txCtx, req.UserID)
		if err != nil {
			return err
		}

		record, err = s.promotionRepo.Create(txCtx, promotion.PromotionRecord{
			UserID:        req.UserID,
			OldPosition:   oldPosition,
			NewPosition:   newPosition,
			PromotionDate: promotionDate,
			Status:        promotion.StatusApproved,
		})
		if err != nil {
			return fmt.Errorf("failed to create promotion record: %w", err)
		}

		return s.userRepo.UpdatePosition(txCtx, req.UserID, newPosition)
	})
	if err != nil {
		return promotion.PromotionResponse{}, err
	}

	return promotion.NewPromotionResponse(record), nil
}

// ListPromotions implements promotion.PromotionService.
func (s *PromotionServiceImpl) ListPromotions(ctx context.Context) ([]promotion.PromotionResponse, error) {
	records, err := s.promotionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	responses := make([]promotion.PromotionResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, promotion.NewPromotionResponse(r))
	}
	return responses, nil
}
