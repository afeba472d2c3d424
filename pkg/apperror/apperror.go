package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExport       = errors.New("export failed")
	ErrInternal     = errors.New("internal server error")
)

// AppError carries a kind (one of the sentinels above), a user-facing
// message, optional details, and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil && e.Err.Error() != e.Details {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool { return target == e.Kind }

// ToJSON renders the error body: {"error": message} plus "message" when
// details are present.
func (e *AppError) ToJSON() fiber.Map {
	body := fiber.Map{"error": e.Message}
	if e.Details != "" {
		body["message"] = e.Details
	}
	return body
}

func New(kind error, msg, details string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Details: details, Err: err}
}

func NewInvalidInput(msg, details string, err error) *AppError {
	return New(ErrInvalidInput, msg, details, err)
}

func NewNotFound(resource, identifier string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s not found", resource),
		fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier), nil)
}

func NewUnauthorized(details string, err error) *AppError {
	return New(ErrUnauthorized, "Unauthorized", details, err)
}

// NewExportFailed wraps a rendering or rasterization failure.
func NewExportFailed(err error) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return New(ErrExport, "Failed to generate PDF", details, err)
}

func NewInternal(details string, err error) *AppError {
	return New(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
