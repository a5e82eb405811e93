package api

// Response is the uniform envelope every endpoint answers with. Business
// failures set Success to false and carry the failure message.
// swagger:model api.Response
type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
	Data    any           `json:"data,omitempty"`
	Count   *int          `json:"count,omitempty"`
	Token   string        `json:"token,omitempty"`
}

// Fail wraps a failure message in the envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
