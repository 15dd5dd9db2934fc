package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/employee"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	userRepo user.UserRepository
}

func NewEmployeeService(userRepo user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{userRepo: userRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return s.list(ctx, []user.Role{user.RoleEmployee})
}

// ListManagers implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListManagers(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return s.list(ctx, user.ManagerRoles)
}

func (s *EmployeeServiceImpl) list(ctx context.Context, roles []user.Role) ([]employee.EmployeeResponse, error) {
	users, err := s.userRepo.List(ctx, user.ListFilter{Roles: roles})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return employee.NewEmployeeResponses(users), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, actor user.Actor, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidID
	}
	if !actor.CanAccessUser(id, user.PermissionEmployeeViewAll) {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return employee.NewEmployeeResponse(u), nil
}
