// Package engine defines the failure taxonomy shared by the LLM driver, the
// agent runner and the orchestrator. Every failure crossing a package
// boundary carries a Kind so the step loop can decide whether to retry and
// the API layer can map it to a status code.
package engine

import (
	"errors"
	"fmt"
)

// Kind tags a failure with its engine-level classification
type Kind string

const (
	// KindNotFound marks a reference to an absent agent, tool, workflow,
	// execution, step or schedule
	KindNotFound Kind = "NotFound"

	// KindInactive marks an execution refused by an inactive agent or
	// workflow
	KindInactive Kind = "Inactive"

	// KindInvalidArgument marks malformed input: bad cron, missing agent
	// reference, invalid template
	KindInvalidArgument Kind = "InvalidArgument"

	// KindProviderUnsupported marks an agent whose provider has no driver
	KindProviderUnsupported Kind = "ProviderUnsupported"

	// KindLLMFailure marks an upstream LLM error
	KindLLMFailure Kind = "LLMFailure"

	// KindToolFailure marks a failed tool-server call or handler panic that
	// reached the orchestrator
	KindToolFailure Kind = "ToolFailure"

	// KindMaxIterations marks a tool-use loop that exceeded its turn cap
	KindMaxIterations Kind = "MaxIterations"

	// KindStepTimeout marks a step that exceeded its deadline
	KindStepTimeout Kind = "StepTimeout"

	// KindMaxRetriesExceeded marks a step retried to exhaustion
	KindMaxRetriesExceeded Kind = "MaxRetriesExceeded"

	// KindDependencyUnmet marks a step whose listed predecessors are not
	// all complete
	KindDependencyUnmet Kind = "DependencyUnmet"

	// KindApprovalRejected marks a workflow failed by a human rejection
	KindApprovalRejected Kind = "ApprovalRejected"

	// KindApprovalTimeout marks a workflow failed by an expired approval
	KindApprovalTimeout Kind = "ApprovalTimeout"
)

// Error is a classified engine failure
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the formatted error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorf creates a classified error with a formatted message
func NewErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, or "" when the chain holds
// no engine error
func KindOf(err error) Kind {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Kind
	}
	return ""
}

// IsKind reports whether the error chain carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsRetryable reports whether a step failure is a candidate for the retry
// mechanism. Only transient kinds qualify; configuration and resolution
// failures fail the step immediately
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindLLMFailure, KindStepTimeout, KindToolFailure:
		return true
	default:
		return false
	}
}
