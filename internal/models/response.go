package models

import "time"

// BaseResponse is the uniform envelope for every endpoint.
type BaseResponse struct {
	Success bool `json:"success"`
	Payload any  `json:"payload,omitempty"`
}

// ErrorPayload is the payload of a failed BaseResponse. Message is
// human-readable; internal diagnostics never leak into it.
type ErrorPayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Errors    []any  `json:"errors,omitempty"`
}

// OK wraps a successful payload.
func OK(payload any) BaseResponse {
	return BaseResponse{Success: true, Payload: payload}
}

// Fail wraps an error message with the response timestamp.
func Fail(message string) BaseResponse {
	return BaseResponse{
		Success: false,
		Payload: ErrorPayload{
			Message:   message,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	}
}
