package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the application error carried from repositories and handlers
// up to the response envelope. Fields holds field-keyed validation messages
// when the error came from input validation.
type AppError struct {
	Code    string
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a 400-class error with a single message.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewFieldErrors returns a 400-class error carrying field-keyed messages.
func NewFieldErrors(fields map[string][]string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Fields:  fields,
	}
}

// NewUnauthorizedError returns a 401-class error. The message is kept
// generic so callers cannot distinguish unknown-user from wrong-password.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewNotFoundError returns a 404-class error.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
	}
}

// NewInternalError wraps an unexpected error without leaking its detail.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standard failure envelope. Field-keyed
// validation errors render under "errors"; everything else under "message".
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		if len(appErr.Fields) > 0 {
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"errors":  appErr.Fields,
			})
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
