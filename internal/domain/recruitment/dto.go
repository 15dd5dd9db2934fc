package recruitment

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type ApplyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if len(r.Email) > 254 || !validator.IsValidEmail(validator.NormalizeEmail(r.Email)) {
		errs.Add("email", "email must be a valid email address")
	}

	return errs.Err()
}

type ApplyResponse struct {
	ApplicationID string `json:"application_id"`
	CandidateID   string `json:"candidate_id"`
	JobID         string `json:"job_id"`
	Status        string `json:"status"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if !ApplicationStatus(r.Status).IsValid() {
		errs.Add("status", "invalid application status")
	}

	return errs.Err()
}

type ApplicationResponse struct {
	ID          string `json:"id"`
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Status      string `json:"status"`
	AppliedAt   string `json:"applied_at"`
	UpdatedAt   string `json:"updated_at"`
}

func NewApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

type ApplicantResponse struct {
	ApplicationID  string `json:"application_id"`
	CandidateID    string `json:"candidate_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	HasResume      bool   `json:"has_resume"`
	Status         string `json:"status"`
	AppliedAt      string `json:"applied_at"`
}

func NewApplicantResponses(applicants []Applicant) []ApplicantResponse {
	responses := make([]ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		responses = append(responses, ApplicantResponse{
			ApplicationID:  a.Application.ID,
			CandidateID:    a.Candidate.ID,
			CandidateName:  a.Candidate.Name,
			CandidateEmail: a.Candidate.Email,
			HasResume:      a.Candidate.ResumeRef != nil,
			Status:         string(a.Application.Status),
			AppliedAt:      a.Application.AppliedAt.Format(time.RFC3339),
		})
	}
	return responses
}
