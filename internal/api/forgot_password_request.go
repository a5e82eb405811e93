package api

// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	EmailOrMobile string `json:"emailOrMobile" validate:"required" example:"john@example.com"`
}
