package user

import "time"

type Role string

const (
	RoleEmployee  Role = "Employee"   // Regular employee
	RoleManager   Role = "Manager"    // Line manager, can be assigned to new hires
	RoleHRManager Role = "HR Manager" // Full HR access
)

// Roles lists every assignable role.
var Roles = []Role{RoleEmployee, RoleManager, RoleHRManager}

// ManagerRoles are the roles returned by the managers listing.
var ManagerRoles = []Role{RoleManager, RoleHRManager}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Role              Role
	Position          *string
	Department        *string
	HireDate          *time.Time
	ManagerID         *string
	MustResetPassword bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsHRManager checks if user has full HR access
func (u *User) IsHRManager() bool {
	return u.Role == RoleHRManager
}

// IsManager checks if user is a manager or HR manager
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleHRManager
}

// Summary returns the identity part of the user, without credentials.
func (u *User) Summary() Summary {
	return Summary{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		MustResetPassword: u.MustResetPassword,
	}
}

// Summary is the identity returned by credential verification.
type Summary struct {
	ID                string
	Name              string
	Email             string
	Role              Role
	MustResetPassword bool
}
