package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/employee"
	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/domain/onboarding"
	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/domain/succession"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailNotVerified):
		Unauthorized(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, "Google sign-in is not enabled")

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerNotFound), errors.Is(err, onboarding.ErrManagerReference):
		BadRequest(w, "Referenced manager does not exist", nil)

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee id", nil)

	// Recruitment errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, job.ErrJobClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, recruitment.ErrJobReference):
		BadRequest(w, "Referenced job posting does not exist", nil)
	case errors.Is(err, recruitment.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, recruitment.ErrApplicationFinalized):
		Conflict(w, "Application is already in a final state")

	// Talent errors
	case errors.Is(err, onboarding.ErrOnboardingNotFound):
		NotFound(w, "Onboarding record not found")
	case errors.Is(err, succession.ErrSuccessorReference):
		BadRequest(w, "Referenced successor does not exist", nil)

	// Document errors
	case errors.Is(err, document.ErrMissingFile):
		BadRequest(w, "File is required", map[string]string{"file": "file is required"})
	case errors.Is(err, document.ErrFileTooLarge):
		PayloadTooLarge(w, "File exceeds the maximum upload size")
	case errors.Is(err, document.ErrOwnerNotFound):
		BadRequest(w, "Referenced owner does not exist", nil)
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrStorageMissing):
		Error(w, http.StatusNotFound, "STORAGE_MISSING", "Document content is missing from storage", nil)

	// Default
	default:
		slog.Error("unhandled service error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
