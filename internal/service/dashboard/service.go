package dashboard

import (
	"context"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard returns the HR overview, one goroutine per count.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var resp dashboard.DashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		resp.TotalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountOpenJobs(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count open jobs: %w", err)
		}
		resp.OpenJobs = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountApplications(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count applications: %w", err)
		}
		resp.TotalApplications = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountPendingOnboardings(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count pending onboardings: %w", err)
		}
		resp.PendingOnboardings = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &resp, nil
}
