package dto

import "time"

// MessageResponse is the standard success envelope for mutating endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health-check endpoint
type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// NewMessageResponse creates a success envelope
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewHealthResponse creates the health-check body
func NewHealthResponse(message string) HealthResponse {
	return HealthResponse{
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    "healthy",
	}
}
