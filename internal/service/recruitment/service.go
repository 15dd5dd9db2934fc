package recruitment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
	"github.com/hrflo/hrflo-backend/internal/service/file"
)

type RecruitmentServiceImpl struct {
	db              *database.DB
	jobRepo         job.JobRepository
	candidateRepo   recruitment.CandidateRepository
	applicationRepo recruitment.ApplicationRepository
	fileService     file.FileService
}

func NewRecruitmentService(
	db *database.DB,
	jobRepo job.JobRepository,
	candidateRepo recruitment.CandidateRepository,
	applicationRepo recruitment.ApplicationRepository,
	fileService file.FileService,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		db:              db,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		fileService:     fileService,
	}
}

// Apply implements recruitment.RecruitmentService.
// The posting row is share-locked so it cannot be closed while the application is inserted.
func (s *RecruitmentServiceImpl) Apply(ctx context.Context, jobID string, req recruitment.ApplyRequest, resume *document.Upload) (recruitment.ApplyResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplyResponse{}, err
	}
	if !validator.IsValidUUID(jobID) {
		return recruitment.ApplyResponse{}, recruitment.ErrJobReference
	}

	var resumeRef *string
	if resume != nil {
		key, err := s.fileService.UploadResume(ctx, *resume)
		if err != nil {
			return recruitment.ApplyResponse{}, err
		}
		resumeRef = &key
	}

	var resp recruitment.ApplyResponse
	var replacedRef *string
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		status, err := s.jobRepo.GetStatusForShare(txCtx, jobID)
		if err != nil {
			if errors.Is(err, job.ErrJobNotFound) {
				return recruitment.ErrJobReference
			}
			return fmt.Errorf("failed to lock job posting: %w", err)
		}
		if status != job.StatusOpen {
			return job.ErrJobClosed
		}

		candidate, previous, err := s.candidateRepo.Upsert(txCtx, strings.TrimSpace(req.Name), validator.NormalizeEmail(req.Email), resumeRef)
		if err != nil {
			return fmt.Errorf("failed to upsert candidate: %w", err)
		}
		replacedRef = previous

		application, err := s.applicationRepo.Create(txCtx, jobID, candidate.ID)
		if err != nil {
			if errors.Is(err, recruitment.ErrJobReference) {
				return err
			}
			return fmt.Errorf("failed to create application: %w", err)
		}

		resp = recruitment.ApplyResponse{
			ApplicationID: application.ID,
			CandidateID:   candidate.ID,
			JobID:         application.JobID,
			Status:        string(application.Status),
		}
		return nil
	})
	if err != nil {
		if resumeRef != nil {
			s.discardResume(ctx, *resumeRef)
		}
		return recruitment.ApplyResponse{}, err
	}

	// The candidate now points at the new resume; the old object is unreachable.
	if resumeRef != nil && replacedRef != nil && *replacedRef != *resumeRef {
		s.discardResume(ctx, *replacedRef)
	}

	return resp, nil
}

func (s *RecruitmentServiceImpl) discardResume(ctx context.Context, key string) {
	if err := s.fileService.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
		slog.Error("failed to delete unreferenced resume", "key", key, "error", err)
	}
}

// ListApplicants implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListApplicants(ctx context.Context, jobID string) ([]recruitment.ApplicantResponse, error) {
	if !validator.IsValidUUID(jobID) {
		return nil, job.ErrJobNotFound
	}
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	applicants, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return recruitment.NewApplicantResponses(applicants), nil
}

// UpdateApplicationStatus implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateApplicationStatus(ctx context.Context, id string, req recruitment.UpdateApplicationStatusRequest) (recruitment.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return recruitment.ApplicationResponse{}, recruitment.ErrApplicationNotFound
	}

	var updated recruitment.Application
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		updated, err = s.applicationRepo.UpdateStatus(txCtx, id, recruitment.ApplicationStatus(req.Status))
		return err
	})
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	return recruitment.NewApplicationResponse(updated), nil
}
