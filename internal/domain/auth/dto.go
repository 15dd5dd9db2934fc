package auth

import (
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	validateEmail(&errs, r.Email)
	user.ValidatePassword(&errs, "password", r.Password)

	return errs.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("email", r.Email)
	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	// Refresh Token
	errs.Required("refresh_token", r.RefreshToken)
	if len(r.RefreshToken) > 1024 {
		errs.Add("refresh_token", "refresh_token must not exceed 1024 characters")
	}

	return errs.Err()
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CurrentPassword == "" {
		errs.Add("current_password", "current_password is required")
	}
	user.ValidatePassword(&errs, "new_password", r.NewPassword)
	if r.NewPassword != "" && r.NewPassword == r.CurrentPassword {
		errs.Add("new_password", "new_password must differ from current_password")
	}

	return errs.Err()
}

func validateEmail(errs *validator.ValidationErrors, email string) {
	if validator.IsEmpty(email) {
		errs.Add("email", "email is required")
		return
	}
	if len(email) > 254 {
		errs.Add("email", "email must not exceed 254 characters")
		return
	}
	if !validator.IsValidEmail(validator.NormalizeEmail(email)) {
		errs.Add("email", "email must be a valid email address, e.g. user@example.com")
	}
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}

// IdentityResponse is the verified identity returned on login.
type IdentityResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	MustResetPassword bool   `json:"must_reset_password"`
}

func NewIdentityResponse(s user.Summary) IdentityResponse {
	return IdentityResponse{
		ID:                s.ID,
		Name:              s.Name,
		Email:             s.Email,
		Role:              string(s.Role),
		MustResetPassword: s.MustResetPassword,
	}
}

type LoginResponse struct {
	User  IdentityResponse `json:"user"`
	Token TokenResponse    `json:"token"`
}
