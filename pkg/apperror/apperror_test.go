package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cause := errors.New("chrome exited")
	tests := []struct {
		err  error
		want int
	}{
		{NewInvalidInput("CV data is required", "", nil), http.StatusBadRequest},
		{NewNotFound("cv", "42"), http.StatusNotFound},
		{NewUnauthorized("missing token", nil), http.StatusUnauthorized},
		{NewExportFailed(cause), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewNotFound("cv", "1")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.err), tt.err.Error())
	}
}

func TestExportFailedKeepsCause(t *testing.T) {
	cause := errors.New("canvas tainted")
	err := NewExportFailed(cause)

	assert.True(t, errors.Is(err, ErrExport))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, fiber.Map{"error": "Failed to generate PDF", "message": "canvas tainted"}, err.ToJSON())
	assert.Equal(t, "Failed to generate PDF: canvas tainted", err.Error())
}

func TestToJSONOmitsEmptyDetails(t *testing.T) {
	err := NewInvalidInput("CV data is required", "", nil)
	assert.Equal(t, fiber.Map{"error": "CV data is required"}, err.ToJSON())
}
