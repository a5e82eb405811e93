package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required" example:"John"`
	LastName        string `json:"lastName" example:"Smith"`
	Email           string `json:"email" validate:"required,email" example:"john@example.com"`
	Password        string `json:"password" validate:"required" example:"Secret123!"`
	ConfirmPassword string `json:"confirmPassword" validate:"required" example:"Secret123!"`
	Mobile          string `json:"mobile" example:"9000000001"`
	RoleCategory    string `json:"roleCategory" validate:"required" example:"STUDENT"`
}
