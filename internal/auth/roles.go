package auth

// Role is a tenant-scoped access level. Roles are ordered: owner > staff > viewer.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

var roleWeight = map[Role]int{
	RoleOwner:  3,
	RoleStaff:  2,
	RoleViewer: 1,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleWeight[r]
	return ok
}

// Meets reports whether r grants at least the access level of min.
// Unknown roles have weight zero and never meet any requirement.
func (r Role) Meets(min Role) bool {
	return roleWeight[r] >= roleWeight[min]
}
