package succession

import "context"

type SuccessionService interface {
	CreatePlan(ctx context.Context, req CreateSuccessionPlanRequest) (SuccessionPlanResponse, error)
	ListPlans(ctx context.Context) ([]SuccessionPlanResponse, error)
}
