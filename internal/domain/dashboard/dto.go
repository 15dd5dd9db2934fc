package dashboard

// DashboardResponse holds the HR overview counts
type DashboardResponse struct {
	TotalEmployees     int64 `json:"total_employees"`
	OpenJobs           int64 `json:"open_jobs"`
	TotalApplications  int64 `json:"total_applications"`
	PendingOnboardings int64 `json:"pending_onboardings"` // status != 'Completed'
}
