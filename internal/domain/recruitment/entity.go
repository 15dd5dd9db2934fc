package recruitment

import "time"

type ApplicationStatus string

const (
	StatusReceived  ApplicationStatus = "Received"
	StatusScreening ApplicationStatus = "Screening"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffered   ApplicationStatus = "Offered"
	StatusHired     ApplicationStatus = "Hired"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusWithdrawn ApplicationStatus = "Withdrawn"
)

var ApplicationStatuses = []ApplicationStatus{
	StatusReceived, StatusScreening, StatusInterview, StatusOffered,
	StatusHired, StatusRejected, StatusWithdrawn,
}

// TerminalStatuses can never be left once reached.
var TerminalStatuses = []ApplicationStatus{StatusHired, StatusRejected, StatusWithdrawn}

func (s ApplicationStatus) IsValid() bool {
	for _, status := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsTerminal() bool {
	for _, status := range TerminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Candidate struct {
	ID        string
	Name      string
	Email     string
	ResumeRef *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Application struct {
	ID          string
	JobID       string
	CandidateID string
	Status      ApplicationStatus
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// Applicant is an application joined with its candidate.
type Applicant struct {
	Application Application
	Candidate   Candidate
}
