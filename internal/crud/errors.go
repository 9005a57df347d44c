package crud

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is a caller-facing failure with a stable HTTP status. Policies raise
// it for business-rule rejections; the router raises it for everything the
// storage error translator classifies.
type Error struct {
	// Status is the HTTP status code to respond with.
	Status int
	// Message is the caller-facing message.
	Message string
	// Fields optionally enumerates per-field validation reasons.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf builds an Error with a formatted message.
func Errorf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// BadRequestf builds a 400 Error, the default status for business-rule
// rejections raised by policies.
func BadRequestf(format string, args ...any) *Error {
	return Errorf(fiber.StatusBadRequest, format, args...)
}

// Forbiddenf builds a 403 Error.
func Forbiddenf(format string, args ...any) *Error {
	return Errorf(fiber.StatusForbidden, format, args...)
}
