package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/services"
)

// mapError maps service- and engine-layer errors to an HTTP status and a
// machine-tagged API error
func mapError(err error) (int, *APIError) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, &APIError{Code: "InvalidArgument", Message: validErr.Error()}
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, &APIError{Code: "InvalidArgument", Message: err.Error()}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, &APIError{Code: "NotFound", Message: "resource not found"}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, &APIError{Code: "AlreadyExists", Message: "resource already exists"}
	}
	if errors.Is(err, services.ErrInvalidState) {
		return http.StatusConflict, &APIError{Code: "InvalidState", Message: err.Error()}
	}

	switch engine.KindOf(err) {
	case engine.KindNotFound:
		return http.StatusNotFound, &APIError{Code: "NotFound", Message: err.Error()}
	case engine.KindInvalidArgument:
		return http.StatusBadRequest, &APIError{Code: "InvalidArgument", Message: err.Error()}
	case engine.KindInactive:
		return http.StatusUnprocessableEntity, &APIError{Code: "Inactive", Message: err.Error()}
	case engine.KindProviderUnsupported:
		return http.StatusUnprocessableEntity, &APIError{Code: "ProviderUnsupported", Message: err.Error()}
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, &APIError{Code: "Internal", Message: "internal server error"}
}
