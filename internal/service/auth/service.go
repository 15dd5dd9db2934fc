package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/hrflo/hrflo-backend/internal/pkg/password"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

// Register implements auth.AuthService. Public registration always creates an Employee.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	email := validator.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	created, err := a.createUser(ctx, user.User{
		Name:  name,
		Email: email,
		Role:  user.RoleEmployee,
	}, req.Password)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{ID: created.ID}, nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.CreateUserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.CreateUserResponse{}, err
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != nil {
		hireDate, _ = validator.IsValidDate(*req.HireDate)
	}

	if req.ManagerID != nil {
		if err := a.ensureManager(ctx, *req.ManagerID); err != nil {
			return user.CreateUserResponse{}, err
		}
	}

	created, err := a.createUser(ctx, user.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      validator.NormalizeEmail(req.Email),
		Role:       user.Role(req.Role),
		Position:   req.Position,
		Department: req.Department,
		HireDate:   &hireDate,
		ManagerID:  req.ManagerID,
	}, req.Password)
	if err != nil {
		return user.CreateUserResponse{}, err
	}

	return user.CreateUserResponse{ID: created.ID}, nil
}

func (a *AuthServiceImpl) ensureManager(ctx context.Context, managerID string) error {
	manager, err := a.UserRepository.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrManagerNotFound
		}
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if !manager.IsManager() {
		return user.ErrManagerNotFound
	}
	return nil
}

// createUser hashes rawPassword and inserts newUser. A duplicate email is
// caught by the lookup and, for concurrent inserts, by the unique constraint.
func (a *AuthServiceImpl) createUser(ctx context.Context, newUser user.User, rawPassword string) (user.User, error) {
	_, err := a.UserRepository.GetByEmail(ctx, newUser.Email)
	if err == nil {
		return user.User{}, user.ErrUserEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	newUser.PasswordHash, err = password.Hash(rawPassword)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) || errors.Is(err, user.ErrManagerNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, email, rawPassword string) (user.Summary, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, validator.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = password.VerifyAgainstDummy(rawPassword)
			return user.Summary{}, auth.ErrInvalidCredentials
		}
		return user.Summary{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := password.Verify(userData.PasswordHash, rawPassword); err != nil {
		return user.Summary{}, auth.ErrInvalidCredentials
	}

	return userData.Summary(), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	summary, err := a.Verify(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return a.issueTokens(ctx, summary, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. Only existing accounts can sign in.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, validator.NormalizeEmail(googleEmail))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	return a.issueTokens(ctx, userData.Summary(), sessionTrackReq)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, summary user.Summary, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(summary.ID, summary.Email, summary.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(summary.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.JWTRepository.CreateRefreshToken(ctx, summary.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, sessionTrackReq)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	return auth.LoginResponse{
		User:  auth.NewIdentityResponse(summary),
		Token: tokenResponse,
	}, nil
}

// ChangePassword implements auth.AuthService. All refresh tokens of the user are revoked.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := password.Verify(userData.PasswordHash, req.CurrentPassword); err != nil {
		return auth.ErrInvalidCredentials
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.UserRepository.UpdatePassword(txCtx, userID, hashed, false); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := a.JWTRepository.RevokeAllForUser(txCtx, userID); err != nil {
			return fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		return nil
	})
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := a.JWTRepository.RevokeRefreshToken(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	// 1. Verify signature, expiry and token type
	if _, err := a.Service.VerifyRefreshToken(ctx, req.RefreshToken); err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check DB for revocation/expiry (pass raw token, not hash)
	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.AccessTokenResponse{}, err
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 3. Get user, role may have changed since login
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// 4. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresAt, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}
