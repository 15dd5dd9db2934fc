package auth

import (
	"context"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.CreateUserResponse, error)
	Verify(ctx context.Context, email, password string) (user.Summary, error)
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)
	LoginWithGoogle(ctx context.Context, email string, session SessionTrackingRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
}
