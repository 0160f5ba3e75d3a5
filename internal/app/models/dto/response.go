package dto

// MessageResponse is the standard success envelope for operations that only
// need to confirm.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the single user-visible failure shape: a short
// human-readable message, no structured codes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
