package dto

// CreateUserRequest keeps Role as a pointer so an omitted role can default
// while an explicit empty one is rejected.
type CreateUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
