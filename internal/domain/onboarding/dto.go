package onboarding

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type OnboardRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *OnboardRequest) Validate() error {
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

	if r.Role != "" && !user.Role(r.Role).IsValid() {
		errs.Add("role", "role must be one of Employee, Manager, HR Manager")
	}

	user.ValidateProfile(&errs, r.Position, r.Department)

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs.Add("manager_id", "manager_id must be a valid UUID")
	}

	return errs.Err()
}

type OnboardResponse struct {
	UserID       string `json:"user_id"`
	OnboardingID string `json:"onboarding_id"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
}

type UpdateOnboardingRequest struct {
	Status   *string `json:"status,omitempty"`
	Progress *int    `json:"progress,omitempty"`
}

func (r *UpdateOnboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == nil && r.Progress == nil {
		errs.Add("status", "status or progress is required")
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs.Add("status", "status must be one of Pending, In Progress, Completed")
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs.Add("progress", "progress must be between 0 and 100")
	}

	return errs.Err()
}

type OnboardingResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	ManagerID  *string `json:"manager_id"`
	StartDate  string  `json:"start_date"`
	Status     string  `json:"status"`
	Progress   int     `json:"progress"`
	UpdatedAt  string  `json:"updated_at"`
}

func NewOnboardingResponse(v OnboardingView) OnboardingResponse {
	return OnboardingResponse{
		ID:         v.Record.ID,
		UserID:     v.Record.UserID,
		Name:       v.Name,
		Email:      v.Email,
		Position:   v.Position,
		Department: v.Department,
		ManagerID:  v.ManagerID,
		StartDate:  v.Record.StartDate.Format(time.DateOnly),
		Status:     string(v.Record.Status),
		Progress:   v.Record.Progress,
		UpdatedAt:  v.Record.UpdatedAt.Format(time.RFC3339),
	}
}
