package api

// UpdateUserRequest rewrites a user's profile fields. Password and
// roleCategory are optional; the password requires its confirmation.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	FirstName       string `json:"firstName" validate:"required" example:"John"`
	LastName        string `json:"lastName" example:"Smith"`
	Email           string `json:"email" validate:"required,email" example:"john@example.com"`
	Mobile          string `json:"mobile" example:"9000000001"`
	Password        string `json:"password" example:"Secret123!"`
	ConfirmPassword string `json:"confirmPassword" example:"Secret123!"`
	RoleCategory    string `json:"roleCategory" example:"STUDENT"`
}
