package onboarding

import "errors"

var (
	ErrOnboardingNotFound = errors.New("onboarding record not found")
	// ErrManagerReference is returned when the given manager is not a Manager or HR Manager.
	ErrManagerReference = errors.New("referenced manager does not exist")
)
