package job

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type CreateJobRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	Department     string  `json:"department"`
	EmploymentType string  `json:"employment_type"`
	ClosingDate    *string `json:"closing_date,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("title", r.Title)
	if len(r.Title) > 255 {
		errs.Add("title", "title must not exceed 255 characters")
	}
	if len(r.Location) > 255 {
		errs.Add("location", "location must not exceed 255 characters")
	}
	if len(r.Department) > 255 {
		errs.Add("department", "department must not exceed 255 characters")
	}

	if validator.IsEmpty(r.EmploymentType) {
		errs.Add("employment_type", "employment_type is required")
	} else if !validator.IsInSlice(r.EmploymentType, EmploymentTypes) {
		errs.Add("employment_type", "employment_type must be one of Full-time, Part-time, Contract, Internship")
	}

	if r.ClosingDate != nil {
		if _, ok := validator.IsValidDate(*r.ClosingDate); !ok {
			errs.Add("closing_date", "closing_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateJobStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if !Status(r.Status).IsValid() {
		errs.Add("status", "status must be Open or Closed")
	}

	return errs.Err()
}

type JobResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	Department     string  `json:"department"`
	EmploymentType string  `json:"employment_type"`
	ClosingDate    *string `json:"closing_date"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewJobResponse(j JobPosting) JobResponse {
	resp := JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		Department:     j.Department,
		EmploymentType: string(j.EmploymentType),
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      j.UpdatedAt.Format(time.RFC3339),
	}
	if j.ClosingDate != nil {
		closingDate := j.ClosingDate.Format(time.DateOnly)
		resp.ClosingDate = &closingDate
	}
	return resp
}

func NewJobResponses(jobs []JobPosting) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, NewJobResponse(j))
	}
	return responses
}
