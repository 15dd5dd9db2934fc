package succession

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type CreateSuccessionPlanRequest struct {
	CriticalRole string `json:"critical_role"`
	SuccessorID  string `json:"successor_id"`
	Readiness    string `json:"readiness"`
}

func (r *CreateSuccessionPlanRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("critical_role", r.CriticalRole)
	if len(r.CriticalRole) > 255 {
		errs.Add("critical_role", "critical_role must not exceed 255 characters")
	}

	if validator.IsEmpty(r.SuccessorID) {
		errs.Add("successor_id", "successor_id is required")
	} else if !validator.IsValidUUID(r.SuccessorID) {
		errs.Add("successor_id", "successor_id must be a valid UUID")
	}

	if validator.IsEmpty(r.Readiness) {
		errs.Add("readiness", "readiness is required")
	} else if !validator.IsInSlice(r.Readiness, Readinesses) {
		errs.Add("readiness", "readiness must be one of Ready Now, Ready in 1-2 Years, Ready in 3+ Years")
	}

	return errs.Err()
}

type SuccessionPlanResponse struct {
	ID            string `json:"id"`
	CriticalRole  string `json:"critical_role"`
	SuccessorID   string `json:"successor_id"`
	SuccessorName string `json:"successor_name,omitempty"`
	Readiness     string `json:"readiness"`
	CreatedAt     string `json:"created_at"`
}

func NewSuccessionPlanResponse(p SuccessionPlan) SuccessionPlanResponse {
	return SuccessionPlanResponse{
		ID:            p.ID,
		CriticalRole:  p.CriticalRole,
		SuccessorID:   p.SuccessorID,
		SuccessorName: p.SuccessorName,
		Readiness:     string(p.Readiness),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
