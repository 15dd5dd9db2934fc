package employee

import (
	"context"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns users with the Employee role only
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ListManagers returns users who can be assigned as a manager
	ListManagers(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single user; callers may always read their own record
	GetEmployee(ctx context.Context, actor user.Actor, id string) (EmployeeResponse, error)
}
