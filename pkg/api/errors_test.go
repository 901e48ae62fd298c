package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/services"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest, "InvalidArgument"},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest, "InvalidArgument"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "NotFound"},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, "AlreadyExists"},
		{"invalid state", services.ErrInvalidState, http.StatusConflict, "InvalidState"},
		{"wrapped sentinel", errors.Join(errors.New("context"), services.ErrNotFound), http.StatusNotFound, "NotFound"},
		{"engine not found", engine.NewError(engine.KindNotFound, "agent 9 not found"), http.StatusNotFound, "NotFound"},
		{"engine invalid argument", engine.NewError(engine.KindInvalidArgument, "bad template"), http.StatusBadRequest, "InvalidArgument"},
		{"engine inactive", engine.NewError(engine.KindInactive, "workflow inactive"), http.StatusUnprocessableEntity, "Inactive"},
		{"engine provider unsupported", engine.NewError(engine.KindProviderUnsupported, "no driver"), http.StatusUnprocessableEntity, "ProviderUnsupported"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal"},
		{"engine llm failure", engine.NewError(engine.KindLLMFailure, "upstream 500"), http.StatusInternalServerError, "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}
