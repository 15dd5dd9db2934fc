package job

import (
	"context"
	"time"
)

type JobRepository interface {
	Create(ctx context.Context, newJob JobPosting) (JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	// GetStatusForShare locks the posting row until the surrounding transaction ends.
	GetStatusForShare(ctx context.Context, id string) (Status, error)
	ListByStatus(ctx context.Context, status Status) ([]JobPosting, error)
	ListAll(ctx context.Context) ([]JobPosting, error)
	UpdateStatus(ctx context.Context, id string, status Status) (JobPosting, error)
	// CloseExpired closes open postings whose closing date is before today.
	CloseExpired(ctx context.Context, today time.Time) (int64, error)
}
