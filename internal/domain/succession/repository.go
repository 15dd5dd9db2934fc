package succession

import "context"

type SuccessionRepository interface {
	Create(ctx context.Context, plan SuccessionPlan) (SuccessionPlan, error)
	List(ctx context.Context) ([]SuccessionPlan, error)
}
