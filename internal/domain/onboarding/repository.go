package onboarding

import "context"

type OnboardingRepository interface {
	Create(ctx context.Context, record OnboardingRecord) (OnboardingRecord, error)
	List(ctx context.Context) ([]OnboardingView, error)
	GetByUserID(ctx context.Context, userID string) (OnboardingView, error)
	// UpdateByUserID changes only the non-nil fields.
	UpdateByUserID(ctx context.Context, userID string, status *Status, progress *int) error
}
