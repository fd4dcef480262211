package constants

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether r is exactly one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
