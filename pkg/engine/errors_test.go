package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := NewError(KindNotFound, "workflow 42 absent")
	assert.Equal(t, "NotFound: workflow 42 absent", plain.Error())

	wrapped := WrapError(KindLLMFailure, "messages call", errors.New("status 500"))
	assert.Equal(t, "LLMFailure: messages call: status 500", wrapped.Error())
	assert.Equal(t, "status 500", wrapped.Unwrap().Error())
}

func TestKindOf(t *testing.T) {
	t.Run("extracts kind through wrapping", func(t *testing.T) {
		inner := NewError(KindStepTimeout, "step 3 deadline")
		outer := fmt.Errorf("running workflow: %w", inner)
		assert.Equal(t, KindStepTimeout, KindOf(outer))
		assert.True(t, IsKind(outer, KindStepTimeout))
	})

	t.Run("returns empty for foreign errors", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
		assert.Equal(t, Kind(""), KindOf(nil))
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		kind      Kind
		retryable bool
	}{
		{KindLLMFailure, true},
		{KindStepTimeout, true},
		{KindToolFailure, true},
		{KindNotFound, false},
		{KindInactive, false},
		{KindInvalidArgument, false},
		{KindProviderUnsupported, false},
		{KindMaxIterations, false},
		{KindMaxRetriesExceeded, false},
		{KindDependencyUnmet, false},
		{KindApprovalRejected, false},
		{KindApprovalTimeout, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := NewError(tt.kind, "x")
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}

	t.Run("foreign errors are not retryable", func(t *testing.T) {
		assert.False(t, IsRetryable(errors.New("unclassified")))
	})
}
