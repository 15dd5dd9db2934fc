package dashboard

import "context"

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountOpenJobs(ctx context.Context) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
	CountPendingOnboardings(ctx context.Context) (int64, error)
}
