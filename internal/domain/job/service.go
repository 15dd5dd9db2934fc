package job

import "context"

type JobService interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, id string) (JobResponse, error)
	ListOpenJobs(ctx context.Context) ([]JobResponse, error)
	ListAllJobs(ctx context.Context) ([]JobResponse, error)
	UpdateJobStatus(ctx context.Context, id string, req UpdateJobStatusRequest) (JobResponse, error)
	CloseExpiredJobs(ctx context.Context) (int64, error)
}
