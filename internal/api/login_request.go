package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email" example:"john@example.com"`
	Password   string `json:"password" validate:"required" example:"Secret123!"`
	RememberMe bool   `json:"rememberMe" example:"false"`
}
