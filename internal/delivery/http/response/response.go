// Package response defines the uniform API envelope. Every response, success
// or failure, uses one of the two shapes below; no handler invents its own.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success shape: error is always null on success.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Error   any    `json:"error"`
}

// ErrorBody is the uniform failure shape, rendered only by the response
// classifier. Details carry structured information (field issues, conflicting
// field names, retry hints); Stack is populated only outside production-like
// environments.
type ErrorBody struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Stack     string `json:"stack,omitempty"`
}

// Success renders the uniform success envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Error:   nil,
	})
}
