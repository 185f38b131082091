package response

import "github.com/google/uuid"

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsStaff  bool      `json:"is_staff"`
}
