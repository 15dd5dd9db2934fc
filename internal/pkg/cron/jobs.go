package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
)

// RecruitmentJobs contains the job posting housekeeping jobs
type RecruitmentJobs struct {
	jobService job.JobService
	interval   time.Duration
}

func NewRecruitmentJobs(jobService job.JobService, interval time.Duration) *RecruitmentJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &RecruitmentJobs{jobService: jobService, interval: interval}
}

func (j *RecruitmentJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_expired_job_postings", j.interval, j.CloseExpiredJobPostings)
}

// CloseExpiredJobPostings closes open postings past their closing date
func (j *RecruitmentJobs) CloseExpiredJobPostings(ctx context.Context) error {
	closed, err := j.jobService.CloseExpiredJobs(ctx)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Closed expired job postings", "count", closed)
	}
	return nil
}
