package job

import "time"

type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "Full-time"
	EmploymentTypePartTime   EmploymentType = "Part-time"
	EmploymentTypeContract   EmploymentType = "Contract"
	EmploymentTypeInternship EmploymentType = "Internship"
)

var EmploymentTypes = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeContract),
	string(EmploymentTypeInternship),
}

type JobPosting struct {
	ID             string
	Title          string
	Description    string
	Location       string
	Department     string
	EmploymentType EmploymentType
	ClosingDate    *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
