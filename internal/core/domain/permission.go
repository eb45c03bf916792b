package domain

import "strings"

// PermissionLevel is the coarse access level derived from a profile's role
// and department memberships. It gates which records list queries may return
// and which mutating actions are exposed.
type PermissionLevel string

const (
	PermissionAdmin      PermissionLevel = "ADMIN"
	PermissionManagement PermissionLevel = "MANAGEMENT"
	PermissionRegular    PermissionLevel = "REGULAR"
	PermissionNone       PermissionLevel = "NONE"
)

// managementDepartmentName is the literal department name that elevates a
// member to the MANAGEMENT level, matched case-insensitively.
const managementDepartmentName = "management"

// ResolvePermission derives the permission level from a session's role and
// department memberships. It is a pure function: the single shared
// implementation consumed by every service and handler.
func ResolvePermission(authenticated bool, role string, departmentNames []string) PermissionLevel {
	if !authenticated {
		return PermissionNone
	}
	if strings.EqualFold(role, "admin") {
		return PermissionAdmin
	}
	for _, name := range departmentNames {
		if strings.EqualFold(name, managementDepartmentName) {
			return PermissionManagement
		}
	}
	return PermissionRegular
}

// PermissionContext bundles the resolved level with the caller's department
// memberships, as needed for record scoping.
type PermissionContext struct {
	ProfileID     string
	Level         PermissionLevel
	DepartmentIDs []string
}

// SeesAllDepartments reports whether list queries should skip department
// scoping for this level.
func (p PermissionLevel) SeesAllDepartments() bool {
	return p == PermissionAdmin || p == PermissionManagement
}

// CanExecuteForeignReceipt reports whether the level allows executing a
// receipt belonging to a department the caller is not a member of.
func (p PermissionLevel) CanExecuteForeignReceipt() bool {
	return p == PermissionAdmin || p == PermissionManagement
}

// MemberOf reports whether the context includes the given department.
func (p PermissionContext) MemberOf(departmentID string) bool {
	for _, id := range p.DepartmentIDs {
		if id == departmentID {
			return true
		}
	}
	return false
}
