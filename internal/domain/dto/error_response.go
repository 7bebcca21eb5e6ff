package dto

import "time"

// ErrorResponse is the standard JSON error envelope returned by every
// endpoint on failure.
//
// Fields match the API contract and may differ from internal error values;
// cause details are flattened to a string so no error types leak across the
// API surface.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"ticker is required"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid input"`
	Timestamp    time.Time `json:"timestamp" example:"2024-09-01T12:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse from a human-readable message and
// an optional underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's c.Error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
