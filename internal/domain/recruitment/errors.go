package recruitment

import "errors"

var (
	// ErrJobReference is returned when applying to a posting that does not exist.
	ErrJobReference         = errors.New("referenced job posting does not exist")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationFinalized = errors.New("application is already in a final state")
)
