package job

import "errors"

var (
	ErrJobNotFound = errors.New("job posting not found")
	ErrJobClosed   = errors.New("job posting is closed")
)
