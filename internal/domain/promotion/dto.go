package promotion

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type PromoteRequest struct {
	UserID        string  `json:"user_id"`
	NewPosition   string  `json:"new_position"`
	PromotionDate *string `json:"promotion_date,omitempty"`
}

func (r *PromoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs.Add("user_id", "user_id is required")
	} else if !validator.IsValidUUID(r.UserID) {
		errs.Add("user_id", "user_id must be a valid UUID")
	}

	errs.Required("new_position", r.NewPosition)
	if len(r.NewPosition) > 255 {
		errs.Add("new_position", "new_position must not exceed 255 characters")
	}

	if r.PromotionDate != nil {
		if _, ok := validator.IsValidDate(*r.PromotionDate); !ok {
			errs.Add("promotion_date", "promotion_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type PromotionResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	OldPosition   *string `json:"old_position"`
	NewPosition   string  `json:"new_position"`
	PromotionDate string  `json:"promotion_date"`
	Status        string  `json:"status"`
}

func NewPromotionResponse(p PromotionRecord) PromotionResponse {
	return PromotionResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		OldPosition:   p.OldPosition,
		NewPosition:   p.NewPosition,
		PromotionDate: p.PromotionDate.Format(time.DateOnly),
		Status:        string(p.Status),
	}
}
