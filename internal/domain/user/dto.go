package user

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Position          *string `json:"position"`
	Department        *string `json:"department"`
	HireDate          *string `json:"hire_date"`
	ManagerID         *string `json:"manager_id"`
	MustResetPassword bool    `json:"must_reset_password"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		Position:          u.Position,
		Department:        u.Department,
		ManagerID:         u.ManagerID,
		MustResetPassword: u.MustResetPassword,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         u.UpdatedAt.Format(time.RFC3339),
	}
	if u.HireDate != nil {
		hireDate := u.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}
	return resp
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if len(r.Email) > 254 || !validator.IsValidEmail(validator.NormalizeEmail(r.Email)) {
		errs.Add("email", "invalid email format")
	}

	ValidatePassword(&errs, "password", r.Password)

	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	} else if !Role(r.Role).IsValid() {
		errs.Add("role", "role must be one of Employee, Manager, HR Manager")
	}

	ValidateProfile(&errs, r.Position, r.Department)

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs.Add("manager_id", "manager_id must be a valid UUID")
	}

	return errs.Err()
}

// ValidateProfile checks the optional position and department fields.
func ValidateProfile(errs *validator.ValidationErrors, position, department *string) {
	if position != nil && len(*position) > 255 {
		errs.Add("position", "position must not exceed 255 characters")
	}
	if department != nil && len(*department) > 255 {
		errs.Add("department", "department must not exceed 255 characters")
	}
}

// ValidatePassword checks the password policy: non-empty and within bcrypt's 72 byte input limit.
func ValidatePassword(errs *validator.ValidationErrors, field, password string) {
	if password == "" {
		errs.Add(field, field+" is required")
	} else if len(password) > 72 {
		errs.Add(field, field+" must not exceed 72 bytes")
	}
}

type CreateUserResponse struct {
	ID string `json:"id"`
}
