// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package sec

// # User Roles

// Role represents the position an account holds within the PMO organisation.
//
// Roles are a closed set. Apart from the admin override on the user
// management page, a role carries no implicit page permissions — page access
// is governed by each account's allow-list.
type Role string

const (
	// Full administrative access, including user management
	RoleAdmin Role = "admin"

	// PMO director, oversight of all reporting areas
	RoleDirector Role = "director"

	// PMO staff member, day-to-day data entry
	RoleStaff Role = "staff"

	// Content editor for public-facing pages
	RoleEditor Role = "editor"

	// External client with read-oriented access
	RoleClient Role = "client"
)

// Roles lists every valid role, in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDirector, RoleStaff, RoleEditor, RoleClient}
}

// RoleNames returns the string form of every valid role for input validation.
func RoleNames() []string {
	roles := Roles()
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return names
}

// IsValid reports whether r is one of the closed set of roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleStaff, RoleEditor, RoleClient:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether r is the administrative role.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
