package recruitment

import "context"

type CandidateRepository interface {
	// Upsert returns the candidate for email, creating it when absent.
	// An existing candidate keeps its name; resumeRef replaces the stored one only when non-nil.
	// replacedRef is the resume key held before this call, nil for a new candidate.
	Upsert(ctx context.Context, name, email string, resumeRef *string) (c Candidate, replacedRef *string, err error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, jobID, candidateID string) (Application, error)
	ListByJob(ctx context.Context, jobID string) ([]Applicant, error)
	// UpdateStatus refuses to move an application out of a terminal status.
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (Application, error)
}
