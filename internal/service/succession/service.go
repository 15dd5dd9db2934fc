package succession

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrflo/hrflo-backend/internal/domain/succession"
)

type SuccessionServiceImpl struct {
	successionRepo succession.SuccessionRepository
}

func NewSuccessionService(successionRepo succession.SuccessionRepository) succession.SuccessionService {
	return &SuccessionServiceImpl{successionRepo: successionRepo}
}

// CreatePlan implements succession.SuccessionService.
func (s *SuccessionServiceImpl) CreatePlan(ctx context.Context, req succession.CreateSuccessionPlanRequest) (succession.SuccessionPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return succession.SuccessionPlanResponse{}, err
	}

	plan, err := s.successionRepo.Create(ctx, succession.SuccessionPlan{
		CriticalRole: strings.TrimSpace(req.CriticalRole),
		SuccessorID:  req.SuccessorID,
		Readiness:    succession.Readiness(req.Readiness),
	})
	if err != nil {
		if errors.Is(err, succession.ErrSuccessorReference) {
			return succession.SuccessionPlanResponse{}, err
		}
		return succession.SuccessionPlanResponse{}, fmt.Errorf("failed to create succession plan: %w", err)
	}

	return succession.NewSuccessionPlanResponse(plan), nil
}

// ListPlans implements succession.SuccessionService.
func (s *SuccessionServiceImpl) ListPlans(ctx context.Context) ([]succession.SuccessionPlanResponse, error) {
	plans, err := s.successionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list succession plans: %w", err)
	}

	responses := make([]succession.SuccessionPlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, succession.NewSuccessionPlanResponse(p))
	}
	return responses, nil
}
