package onboarding

import "context"

type OnboardingService interface {
	// Onboard creates the user and its onboarding record in one transaction.
	Onboard(ctx context.Context, req OnboardRequest) (OnboardResponse, error)
	ListOnboarding(ctx context.Context) ([]OnboardingResponse, error)
	UpdateOnboarding(ctx context.Context, userID string, req UpdateOnboardingRequest) (OnboardingResponse, error)
}
