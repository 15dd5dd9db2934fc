package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type JobServiceImpl struct {
	jobRepo job.JobRepository
	now     func() time.Time
}

func NewJobService(jobRepo job.JobRepository) job.JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// CreateJob implements job.JobService. New postings are always Open.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	newJob := job.JobPosting{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Location:       strings.TrimSpace(req.Location),
		Department:     strings.TrimSpace(req.Department),
		EmploymentType: job.EmploymentType(req.EmploymentType),
		Status:         job.StatusOpen,
	}
	if req.ClosingDate != nil {
		closingDate, _ := validator.IsValidDate(*req.ClosingDate)
		newJob.ClosingDate = &closingDate
	}

	created, err := s.jobRepo.Create(ctx, newJob)
	if err != nil {
		return job.JobResponse{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return job.NewJobResponse(created), nil
}

// GetJob implements job.JobService.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	if !validator.IsValidUUID(id) {
		return job.JobResponse{}, job.ErrJobNotFound
	}

	posting, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}

	return job.NewJobResponse(posting), nil
}

// ListOpenJobs implements job.JobService.
func (s *JobServiceImpl) ListOpenJobs(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.ListByStatus(ctx, job.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}
	return job.NewJobResponses(jobs), nil
}

// ListAllJobs implements job.JobService.
func (s *JobServiceImpl) ListAllJobs(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return job.NewJobResponses(jobs), nil
}

// UpdateJobStatus implements job.JobService.
func (s *JobServiceImpl) UpdateJobStatus(ctx context.Context, id string, req job.UpdateJobStatusRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return job.JobResponse{}, job.ErrJobNotFound
	}

	updated, err := s.jobRepo.UpdateStatus(ctx, id, job.Status(req.Status))
	if err != nil {
		return job.JobResponse{}, err
	}

	return job.NewJobResponse(updated), nil
}

// CloseExpiredJobs implements job.JobService. A posting stays open through its closing date.
func (s *JobServiceImpl) CloseExpiredJobs(ctx context.Context) (int64, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	closed, err := s.jobRepo.CloseExpired(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired jobs: %w", err)
	}
	return closed, nil
}
