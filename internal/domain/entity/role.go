package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role. Users created by reconciliation get this role.
	RoleUser Role = "user"
	// RolePartner indicates a partner using the self-service onboarding app.
	RolePartner Role = "partner"
	// RoleAdmin indicates an operator of the admin console.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a set of roles carried by an access token.
type Roles []Role

// Has reports whether the set grants role.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings parses token claims, dropping names that are not known roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
