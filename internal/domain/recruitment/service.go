package recruitment

import (
	"context"

	"github.com/hrflo/hrflo-backend/internal/domain/document"
)

type RecruitmentService interface {
	// Apply records an application; resume may be nil.
	Apply(ctx context.Context, jobID string, req ApplyRequest, resume *document.Upload) (ApplyResponse, error)
	ListApplicants(ctx context.Context, jobID string) ([]ApplicantResponse, error)
	UpdateApplicationStatus(ctx context.Context, id string, req UpdateApplicationStatusRequest) (ApplicationResponse, error)
}
