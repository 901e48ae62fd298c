package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/pkg/models"
)

// ApprovalService manages the durable pause tokens created by approval
// steps. At most one pending request exists per (execution, step); the
// partial unique index guarantees it
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// CreateApprovalRequest opens a pending approval for an execution's step
func (s *ApprovalService) CreateApprovalRequest(httpCtx context.Context, executionID, stepID int, requiredRole *string, timeoutAt *time.Time) (*ent.ApprovalRequest, error) {
	// Validate input
	if executionID <= 0 {
		return nil, NewValidationError("execution_id", "required")
	}
	if stepID <= 0 {
		return nil, NewValidationError("step_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.ApprovalRequest.Create().
		SetExecutionID(executionID).
		SetStepID(stepID).
		SetStatus(approvalrequest.StatusPending).
		SetNillableRequiredRole(requiredRole).
		SetNillableTimeoutAt(timeoutAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("pending approval for execution %d step %d: %w", executionID, stepID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}

	return created, nil
}

// GetApprovalRequest retrieves an approval request by ID
func (s *ApprovalService) GetApprovalRequest(ctx context.Context, approvalID int) (*ent.ApprovalRequest, error) {
	found, err := s.client.ApprovalRequest.Get(ctx, approvalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval request: %w", err)
	}

	return found, nil
}

// GetPendingByExecution retrieves the single pending approval for an
// execution, if any
func (s *ApprovalService) GetPendingByExecution(ctx context.Context, executionID int) (*ent.ApprovalRequest, error) {
	found, err := s.client.ApprovalRequest.Query().
		Where(
			approvalrequest.ExecutionIDEQ(executionID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending approval: %w", err)
	}

	return found, nil
}

// ListPendingApprovals lists pending approvals oldest first, optionally
// restricted to a required role
func (s *ApprovalService) ListPendingApprovals(ctx context.Context, role string) ([]*ent.ApprovalRequest, error) {
	query := s.client.ApprovalRequest.Query().
		Where(approvalrequest.StatusEQ(approvalrequest.StatusPending))
	if role != "" {
		query = query.Where(approvalrequest.RequiredRoleEQ(role))
	}

	approvals, err := query.
		Order(ent.Asc(approvalrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}

	return approvals, nil
}

// ListByExecution lists all approval requests for an execution
func (s *ApprovalService) ListByExecution(ctx context.Context, executionID int) ([]*ent.ApprovalRequest, error) {
	approvals, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.ExecutionIDEQ(executionID)).
		Order(ent.Asc(approvalrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}

	return approvals, nil
}

// CountPendingApprovals counts pending approvals across all executions
func (s *ApprovalService) CountPendingApprovals(ctx context.Context) (int, error) {
	count, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.StatusEQ(approvalrequest.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending approvals: %w", err)
	}

	return count, nil
}

// DecideApproval records a human decision on a pending approval. Returns
// ErrInvalidState if the request was already decided or timed out
func (s *ApprovalService) DecideApproval(httpCtx context.Context, approvalID int, approve bool, req models.ApprovalDecisionRequest) (*ent.ApprovalRequest, error) {
	// Validate input
	if req.Approver == "" {
		return nil, NewValidationError("approver", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := approvalrequest.StatusApproved
	if !approve {
		status = approvalrequest.StatusRejected
	}

	// Conditional update: only decide if still pending
	update := s.client.ApprovalRequest.Update().
		Where(
			approvalrequest.IDEQ(approvalID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		SetStatus(status).
		SetApprovedBy(req.Approver).
		SetApprovedAt(time.Now())
	if req.Comments != "" {
		update = update.SetComments(req.Comments)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide approval: %w", err)
	}
	if count == 0 {
		// Distinguish a missing row from a wrong status
		_, getErr := s.client.ApprovalRequest.Get(ctx, approvalID)
		if getErr != nil {
			if ent.IsNotFound(getErr) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to check approval: %w", getErr)
		}
		return nil, fmt.Errorf("approval %d is not pending: %w", approvalID, ErrInvalidState)
	}

	decided, err := s.client.ApprovalRequest.Get(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch approval: %w", err)
	}

	return decided, nil
}

// ListExpiredApprovals lists pending approvals whose timeout has passed
func (s *ApprovalService) ListExpiredApprovals(ctx context.Context, now time.Time) ([]*ent.ApprovalRequest, error) {
	approvals, err := s.client.ApprovalRequest.Query().
		Where(
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
			approvalrequest.TimeoutAtNotNil(),
			approvalrequest.TimeoutAtLTE(now),
		).
		Order(ent.Asc(approvalrequest.FieldTimeoutAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired approvals: %w", err)
	}

	return approvals, nil
}

// MarkTimedOut moves a pending approval to timeout. Returns false when the
// request was decided concurrently
func (s *ApprovalService) MarkTimedOut(httpCtx context.Context, approvalID int) (bool, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.ApprovalRequest.Update().
		Where(
			approvalrequest.IDEQ(approvalID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		SetStatus(approvalrequest.StatusTimeout).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark approval timed out: %w", err)
	}

	return count > 0, nil
}
