package onboarding

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

type OnboardingRecord struct {
	ID        string
	UserID    string
	StartDate time.Time
	Status    Status
	Progress  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnboardingView is a record joined with the onboarded user's identity.
type OnboardingView struct {
	Record     OnboardingRecord
	Name       string
	Email      string
	Position   *string
	Department *string
	ManagerID  *string
}
