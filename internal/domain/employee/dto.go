package employee

import (
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
)

// EmployeeResponse is the directory view of a user, without credentials.
type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	HireDate   *string `json:"hire_date"`
	ManagerID  *string `json:"manager_id"`
}

func NewEmployeeResponse(u user.User) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Position:   u.Position,
		Department: u.Department,
		ManagerID:  u.ManagerID,
	}
	if u.HireDate != nil {
		hireDate := u.HireDate.Format(time.DateOnly)
		resp.HireDate = &hireDate
	}
	return resp
}

func NewEmployeeResponses(users []user.User) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewEmployeeResponse(u))
	}
	return responses
}
