package promotion

import "context"

type PromotionRepository interface {
	Create(ctx context.Context, record PromotionRecord) (PromotionRecord, error)
	List(ctx context.Context) ([]PromotionRecord, error)
}
