package api

import (
	"time"

	"trackerpro/internal/model"
)

// UserResponse is the external projection of a user record. It never carries
// the password hash.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int          `json:"id" example:"1"`
	FirstName string       `json:"firstName" example:"John"`
	LastName  *string      `json:"lastName" example:"Smith"`
	FullName  string       `json:"fullName" example:"John Smith"`
	Email     string       `json:"email" example:"john@example.com"`
	Mobile    *string      `json:"mobile" example:"9000000001"`
	Role      model.Role   `json:"role" example:"STUDENT"`
	Status    model.Status `json:"status" example:"PENDING"`
	CreatedAt time.Time    `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time    `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse projects a user record; nil in, nil out.
func NewUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	fullName := u.FirstName
	if u.LastName != nil {
		fullName += " " + *u.LastName
	}
	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  fullName,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses projects a list, keeping it non-nil so JSON renders [].
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}
