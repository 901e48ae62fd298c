// Package approval coordinates human approval decisions with the workflow
// engine. The orchestrator creates pending requests when it reaches an
// approval step and pauses; this package records the human decision and
// either resumes the execution or fails it. A background sweeper times out
// requests whose deadline passed without a decision.
package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/pkg/models"
	"github.com/batonworks/baton/pkg/services"
)

// Resumer restarts a paused execution after an approval. The orchestrator
// satisfies it
type Resumer interface {
	Resume(ctx context.Context, executionID, approvalID int) error
}

// Notifier nudges the run queue after a resume so the requeued execution is
// picked up without waiting out a poll interval. The queue worker pool
// satisfies it; nil disables notification
type Notifier interface {
	Notify()
}

// Coordinator applies approval decisions to their owning executions
type Coordinator struct {
	approvals  *services.ApprovalService
	executions *services.ExecutionService
	resumer    Resumer
	notifier   Notifier
	logger     *slog.Logger
}

// NewCoordinator creates a Coordinator. notifier may be nil
func NewCoordinator(approvals *services.ApprovalService, executions *services.ExecutionService, resumer Resumer, notifier Notifier) *Coordinator {
	return &Coordinator{
		approvals:  approvals,
		executions: executions,
		resumer:    resumer,
		notifier:   notifier,
		logger:     slog.With("component", "approval"),
	}
}

// Approve records an approval decision and resumes the owning execution.
// A request that is no longer pending returns ErrInvalidState
func (c *Coordinator) Approve(ctx context.Context, approvalID int, approver, comments string) (*ent.ApprovalRequest, error) {
	decided, err := c.approvals.DecideApproval(ctx, approvalID, true, models.ApprovalDecisionRequest{
		Approver: approver,
		Comments: comments,
	})
	if err != nil {
		return nil, err
	}

	if err := c.resumer.Resume(ctx, decided.ExecutionID, decided.ID); err != nil {
		return nil, fmt.Errorf("resuming execution %d after approval: %w", decided.ExecutionID, err)
	}
	if c.notifier != nil {
		c.notifier.Notify()
	}

	c.logger.Info("Approval granted, execution resuming",
		"approval_id", decided.ID,
		"execution_id", decided.ExecutionID,
		"approver", approver)

	return decided, nil
}

// Reject records a rejection and fails the owning execution
func (c *Coordinator) Reject(ctx context.Context, approvalID int, approver, reason string) (*ent.ApprovalRequest, error) {
	decided, err := c.approvals.DecideApproval(ctx, approvalID, false, models.ApprovalDecisionRequest{
		Approver: approver,
		Comments: reason,
	})
	if err != nil {
		return nil, err
	}

	msg := "Approval rejected: " + reason
	if err := c.executions.UpdateExecutionStatus(ctx, decided.ExecutionID, workflowexecution.StatusFailed, &msg); err != nil {
		return nil, fmt.Errorf("failing execution %d after rejection: %w", decided.ExecutionID, err)
	}

	c.logger.Info("Approval rejected, execution failed",
		"approval_id", decided.ID,
		"execution_id", decided.ExecutionID,
		"approver", approver,
		"reason", reason)

	return decided, nil
}

// ProcessTimeouts transitions every pending request whose deadline has
// passed to timeout and fails its execution. Returns the number of requests
// timed out. Per-request failures are logged and do not stop the sweep
func (c *Coordinator) ProcessTimeouts(ctx context.Context, now time.Time) (int, error) {
	expired, err := c.approvals.ListExpiredApprovals(ctx, now)
	if err != nil {
		return 0, err
	}

	timedOut := 0
	for _, request := range expired {
		moved, err := c.approvals.MarkTimedOut(ctx, request.ID)
		if err != nil {
			c.logger.Error("Failed to time out approval",
				"approval_id", request.ID, "error", err)
			continue
		}
		if !moved {
			// Decided between the query and the update
			continue
		}

		msg := "Approval rejected: request timed out"
		if err := c.executions.UpdateExecutionStatus(ctx, request.ExecutionID, workflowexecution.StatusFailed, &msg); err != nil {
			c.logger.Error("Failed to fail execution after approval timeout",
				"execution_id", request.ExecutionID, "approval_id", request.ID, "error", err)
			continue
		}

		c.logger.Info("Approval timed out, execution failed",
			"approval_id", request.ID, "execution_id", request.ExecutionID)
		timedOut++
	}

	return timedOut, nil
}
