package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrManagerNotFound         = errors.New("manager not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
