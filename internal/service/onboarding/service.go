package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/onboarding"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/email"
	"github.com/hrflo/hrflo-backend/internal/pkg/password"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
)

type OnboardingServiceImpl struct {
	db              *database.DB
	userRepo        user.UserRepository
	onboardingRepo  onboarding.OnboardingRepository
	emailService    email.EmailService
	defaultPassword string
	loginURL        string
	now             func() time.Time
}

func NewOnboardingService(
	db *database.DB,
	userRepo user.UserRepository,
	onboardingRepo onboarding.OnboardingRepository,
	emailService email.EmailService,
	defaultPassword string,
	loginURL string,
) onboarding.OnboardingService {
	return &OnboardingServiceImpl{
		db:              db,
		userRepo:        userRepo,
		onboardingRepo:  onboardingRepo,
		emailService:    emailService,
		defaultPassword: defaultPassword,
		loginURL:        loginURL,
		now:             time.Now,
	}
}

// Onboard implements onboarding.OnboardingService.
// The new account gets the default password and must reset it on first login.
func (s *OnboardingServiceImpl) Onboard(ctx context.Context, req onboarding.OnboardRequest) (onboarding.OnboardResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.OnboardResponse{}, err
	}

	today := s.today()
	hireDate := parseDateOr(req.HireDate, today)
	startDate := parseDateOr(req.StartDate, today)

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	passwordHash, err := password.Hash(s.defaultPassword)
	if err != nil {
		return onboarding.OnboardResponse{}, fmt.Errorf("failed to hash default password: %w", err)
	}

	var resp onboarding.OnboardResponse
	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.ManagerID != nil {
			manager, err := s.userRepo.GetByID(txCtx, *req.ManagerID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return onboarding.ErrManagerReference
				}
				return fmt.Errorf("failed to get manager: %w", err)
			}
			if !manager.IsManager() {
				return onboarding.ErrManagerReference
			}
		}

		created, err = s.userRepo.Create(txCtx, user.User{
			Name:              strings.TrimSpace(req.Name),
			Email:             validator.NormalizeEmail(req.Email),
			PasswordHash:      passwordHash,
			Role:              role,
			Position:          req.Position,
			Department:        req.Department,
			HireDate:          &hireDate,
			ManagerID:         req.ManagerID,
			MustResetPassword: true,
		})
		if err != nil {
			if errors.Is(err, user.ErrUserEmailExists) {
				return err
			}
			if errors.Is(err, user.ErrManagerNotFound) {
				return onboarding.ErrManagerReference
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		record, err := s.onboardingRepo.Create(txCtx, onboarding.OnboardingRecord{
			UserID:    created.ID,
			StartDate: startDate,
			Status:    onboarding.StatusPending,
			Progress:  0,
		})
		if err != nil {
			return fmt.Errorf("failed to create onboarding record: %w", err)
		}

		resp = onboarding.OnboardResponse{
			UserID:       created.ID,
			OnboardingID: record.ID,
			Status:       string(record.Status),
			Progress:     record.Progress,
		}
		return nil
	})
	if err != nil {
		return onboarding.OnboardResponse{}, err
	}

	s.sendWelcome(created, startDate)

	return resp, nil
}

// sendWelcome is best effort; the account already exists.
func (s *OnboardingServiceImpl) sendWelcome(u user.User, startDate time.Time) {
	if s.emailService == nil {
		return
	}
	data := email.WelcomeData{
		Name:      u.Name,
		Email:     u.Email,
		StartDate: startDate.Format(time.DateOnly),
		LoginURL:  s.loginURL,
	}
	if u.Position != nil {
		data.Position = *u.Position
	}
	if err := s.emailService.SendWelcome(u.Email, data); err != nil {
		slog.Error("failed to send welcome email", "user_id", u.ID, "error", err)
	}
}

// ListOnboarding implements onboarding.OnboardingService.
func (s *OnboardingServiceImpl) ListOnboarding(ctx context.Context) ([]onboarding.OnboardingResponse, error) {
	views, err := s.onboardingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}

	responses := make([]onboarding.OnboardingResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, onboarding.NewOnboardingResponse(v))
	}
	return responses, nil
}

// UpdateOnboarding implements onboarding.OnboardingService.
func (s *OnboardingServiceImpl) UpdateOnboarding(ctx context.Context, userID string, req onboarding.UpdateOnboardingRequest) (onboarding.OnboardingResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	if !validator.IsValidUUID(userID) {
		return onboarding.OnboardingResponse{}, onboarding.ErrOnboardingNotFound
	}

	var status *onboarding.Status
	if req.Status != nil {
		st := onboarding.Status(*req.Status)
		status = &st
	}

	if err := s.onboardingRepo.UpdateByUserID(ctx, userID, status, req.Progress); err != nil {
		return onboarding.OnboardingResponse{}, err
	}

	view, err := s.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	return onboarding.NewOnboardingResponse(view), nil
}

func (s *OnboardingServiceImpl) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDateOr(value *string, fallback time.Time) time.Time {
	if value == nil {
		return fallback
	}
	if date, ok := validator.IsValidDate(*value); ok {
		return date
	}
	return fallback
}
