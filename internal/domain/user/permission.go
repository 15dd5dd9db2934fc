package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionUserManage      Permission = "user.manage"

	// Recruitment
	PermissionJobManage         Permission = "job.manage"
	PermissionApplicationManage Permission = "application.manage"

	// Talent
	PermissionOnboardingManage Permission = "onboarding.manage"
	PermissionPromotionManage  Permission = "promotion.manage"
	PermissionSuccessionManage Permission = "succession.manage"

	// Documents of other users
	PermissionDocumentManageAll Permission = "document.manage_all"

	// Reports
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleHRManager: {
		// HR manager has all permissions
		PermissionViewOwnProfile,
		PermissionEmployeeViewAll,
		PermissionUserManage,
		PermissionJobManage,
		PermissionApplicationManage,
		PermissionOnboardingManage,
		PermissionPromotionManage,
		PermissionSuccessionManage,
		PermissionDocumentManageAll,
		PermissionDashboardView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEmployeeViewAll,
		PermissionDashboardView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) Can(permission Permission) bool {
	return HasPermission(a.Role, permission)
}

// CanAccessUser reports whether the actor may act on records owned by userID.
func (a Actor) CanAccessUser(userID string, permission Permission) bool {
	return a.ID == userID || a.Can(permission)
}
