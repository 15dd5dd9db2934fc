package promotion

import "context"

type PromotionService interface {
	// Promote records the promotion and updates the user's position atomically.
	Promote(ctx context.Context, req PromoteRequest) (PromotionResponse, error)
	ListPromotions(ctx context.Context) ([]PromotionResponse, error)
}
