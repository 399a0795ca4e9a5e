package authz

import "github.com/hopehr/hr-api/internal/models"

type RouteCategory int

const (
	ListEmployees RouteCategory = iota
	CreateEmployee
	ReadEmployee
	UpdateEmployee
	UpdateOwnImage
	DeleteEmployee
	DepartmentStats
)

// Allow is the whole access-control policy. Admins can do everything;
// employees are limited to reading their own record and changing their own
// profile image. "Self" means the caller's token email equals the target
// employee's stored email.
func Allow(role string, category RouteCategory, isSelf bool) bool {
	if role == models.RoleAdmin {
		return true
	}
	if role != models.RoleEmployee {
		return false
	}

	switch category {
	case ReadEmployee:
		return isSelf
	case UpdateOwnImage:
		return true
	default:
		return false
	}
}
