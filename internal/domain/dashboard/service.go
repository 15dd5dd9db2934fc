package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns all counts, queried concurrently
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
