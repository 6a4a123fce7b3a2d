package auth

import "slices"

// Permission represents a named capability granted to a service token.
type Permission string

// Permission constants.
const (
	PermArchiveRead  Permission = "archive:read"
	PermArchiveWrite Permission = "archive:write"
)

// AllPermissions returns every known permission.
func AllPermissions() []Permission {
	return []Permission{PermArchiveRead, PermArchiveWrite}
}

// ParsePermission returns the permission named s.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	return p, slices.Contains(AllPermissions(), p)
}

// HasPermission reports whether the claims grant perm.
func (c *ServiceClaims) HasPermission(perm Permission) bool {
	return c != nil && slices.Contains(c.Permissions, perm)
}
