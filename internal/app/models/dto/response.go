package dto

// MessageResponse is the body for operations whose only payload is a
// confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure body: a human-readable message with an
// appropriate HTTP status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}
