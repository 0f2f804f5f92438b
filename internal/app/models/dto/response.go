package dto

// ErrorResponse is the wire shape of every failed request: a status code and
// a short human-readable message. Details stay in the server logs.
type ErrorResponse struct {
	Message string `json:"message" example:"Server error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// SuccessResponse acknowledges an operation with no payload beyond the flag
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
