package postgresql

import (
	"context"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/dashboard"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, name, query string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return n, nil
}

// CountEmployees counts users with the Employee role, matching the employee listing
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, "employees", `SELECT COUNT(*) FROM users WHERE role = 'Employee'`)
}

func (r *dashboardRepositoryImpl) CountOpenJobs(ctx context.Context) (int64, error) {
	return r.count(ctx, "open jobs", `SELECT COUNT(*) FROM job_postings WHERE status = 'Open'`)
}

func (r *dashboardRepositoryImpl) CountApplications(ctx context.Context) (int64, error) {
	return r.count(ctx, "applications", `SELECT COUNT(*) FROM applications`)
}

// CountPendingOnboardings counts onboarding records that are not completed
func (r *dashboardRepositoryImpl) CountPendingOnboardings(ctx context.Context) (int64, error) {
	return r.count(ctx, "pending onboardings", `SELECT COUNT(*) FROM onboarding_records WHERE status <> 'Completed'`)
}
