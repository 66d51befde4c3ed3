package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/interview"
)

// HTTPStatus returns the status code for an error crossing the API boundary.
// Model and extraction failures never reach here; they are absorbed by the
// orchestrator's fallbacks.
func HTTPStatus(err error) int {
	var notFound *interview.SessionNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var validation validator.ValidationErrors
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
