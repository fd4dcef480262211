package dto

type CreateTaskRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	AssignedToUserID uint   `json:"assignedToUserId"`
}

// UpdateTaskRequest fields are nil when absent from the payload.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
