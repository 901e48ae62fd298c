package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/pkg/models"
)

// ExecutionService manages workflow execution lifecycle. The pending status
// doubles as the run queue: Enqueue-style creates insert pending rows,
// ClaimNextPending hands them to workers, and RequeueForResume returns a
// paused execution to the queue after an approval decision
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution creates a new execution row in the given initial status.
// Pass StatusPending to enqueue, StatusRunning for an inline run
func (s *ExecutionService) CreateExecution(httpCtx context.Context, workflowID int, triggerData, execContext map[string]interface{}, status workflowexecution.Status) (*ent.WorkflowExecution, error) {
	if status != workflowexecution.StatusPending && status != workflowexecution.StatusRunning {
		return nil, NewValidationError("status", "initial status must be 'pending' or 'running'")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Workflow.Query().Where(workflow.IDEQ(workflowID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workflow %d: %w", workflowID, ErrNotFound)
	}

	create := s.client.WorkflowExecution.Create().
		SetWorkflowID(workflowID).
		SetStatus(status)
	if triggerData != nil {
		create = create.SetTriggerData(triggerData)
	}
	if execContext != nil {
		create = create.SetContext(execContext)
	}
	if status == workflowexecution.StatusRunning {
		create = create.SetStartedAt(time.Now())
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	return created, nil
}

// GetExecution retrieves an execution by ID with optional workflow edge
// loading
func (s *ExecutionService) GetExecution(ctx context.Context, executionID int, withWorkflow bool) (*ent.WorkflowExecution, error) {
	query := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID))

	if withWorkflow {
		query = query.WithWorkflow()
	}

	execution, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	return execution, nil
}

// ListExecutions lists executions with filtering and pagination
func (s *ExecutionService) ListExecutions(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	query := s.client.WorkflowExecution.Query()

	// Apply filters
	if filters.WorkflowID > 0 {
		query = query.Where(workflowexecution.WorkflowIDEQ(filters.WorkflowID))
	}
	if filters.Status != "" {
		if err := workflowexecution.StatusValidator(workflowexecution.Status(filters.Status)); err != nil {
			return nil, NewValidationError("status", "unknown status")
		}
		query = query.Where(workflowexecution.StatusEQ(workflowexecution.Status(filters.Status)))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	executions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &models.ExecutionListResponse{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateExecutionStatus updates an execution's status, stamping completed_at
// on terminal transitions
func (s *ExecutionService) UpdateExecutionStatus(httpCtx context.Context, executionID int, status workflowexecution.Status, errorMessage *string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetNillableErrorMessage(errorMessage)

	if status == workflowexecution.StatusCompleted ||
		status == workflowexecution.StatusFailed ||
		status == workflowexecution.StatusCancelled {
		update = update.SetCompletedAt(time.Now())
	}

	err := update.Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update execution status: %w", err)
	}

	return nil
}

// SaveProgress persists the accumulated context and the resume cursor after
// a step completes
func (s *ExecutionService) SaveProgress(httpCtx context.Context, executionID int, execContext map[string]interface{}, nextStepOrder *int) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetContext(execContext).
		SetNillableCurrentStepOrder(nextStepOrder)

	err := update.Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save execution progress: %w", err)
	}

	return nil
}

// PauseForApproval moves a running execution to paused, recording the
// context and the order of the approval step so a later resume restarts
// there. Returns ErrInvalidState if the execution is not running
func (s *ExecutionService) PauseForApproval(httpCtx context.Context, executionID int, execContext map[string]interface{}, resumeStepOrder int) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.IDEQ(executionID),
			workflowexecution.StatusEQ(workflowexecution.StatusRunning),
		).
		SetStatus(workflowexecution.StatusPaused).
		SetContext(execContext).
		SetCurrentStepOrder(resumeStepOrder).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause execution: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("execution %d is not running: %w", executionID, ErrInvalidState)
	}

	return nil
}

// RequeueForResume returns a paused execution to the pending queue with the
// approval outcome already merged into its context. Returns ErrInvalidState
// if the execution is not paused
func (s *ExecutionService) RequeueForResume(httpCtx context.Context, executionID int, execContext map[string]interface{}) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.IDEQ(executionID),
			workflowexecution.StatusEQ(workflowexecution.StatusPaused),
		).
		SetStatus(workflowexecution.StatusPending).
		SetContext(execContext).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue execution: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("execution %d is not paused: %w", executionID, ErrInvalidState)
	}

	return nil
}

// CancelExecution cancels a pending or paused execution. Returns
// ErrInvalidState for running or terminal executions
func (s *ExecutionService) CancelExecution(httpCtx context.Context, executionID int) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.IDEQ(executionID),
			workflowexecution.StatusIn(
				workflowexecution.StatusPending,
				workflowexecution.StatusPaused,
			),
		).
		SetStatus(workflowexecution.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel execution: %w", err)
	}
	if count == 0 {
		// Distinguish a missing row from a wrong status
		exists, exErr := s.client.WorkflowExecution.Query().
			Where(workflowexecution.IDEQ(executionID)).
			Exist(ctx)
		if exErr != nil {
			return fmt.Errorf("failed to check execution: %w", exErr)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("execution %d is not pending or paused: %w", executionID, ErrInvalidState)
	}

	return nil
}

// ClaimNextPendingExecution atomically claims the oldest pending execution
// Note: This uses a simple transaction approach. In production with high concurrency,
// consider using UPDATE ... WHERE ... RETURNING with FOR UPDATE SKIP LOCKED via raw SQL.
func (s *ExecutionService) ClaimNextPendingExecution(ctx context.Context) (*ent.WorkflowExecution, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Find the oldest pending execution
	execution, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusPending)).
		Order(ent.Asc(workflowexecution.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Queue is empty
		}
		return nil, fmt.Errorf("failed to query pending execution: %w", err)
	}

	// Conditional update: only claim if still pending
	update := tx.WorkflowExecution.Update().
		Where(
			workflowexecution.IDEQ(execution.ID),
			workflowexecution.StatusEQ(workflowexecution.StatusPending),
		).
		SetStatus(workflowexecution.StatusRunning)
	// First run sets started_at; a resumed execution keeps its original
	if execution.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}

	count, err := update.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim execution: %w", err)
	}
	if count == 0 {
		// Already claimed by another worker
		return nil, nil
	}

	// Refetch the updated execution
	execution, err = tx.WorkflowExecution.Get(claimCtx, execution.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return execution, nil
}

// RequeueOrphanedExecutions returns executions stuck in running back to
// pending. Called once at startup: with a single engine process, any row
// still running at boot belongs to a crashed run
func (s *ExecutionService) RequeueOrphanedExecutions(ctx context.Context) (int, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusRunning)).
		SetStatus(workflowexecution.StatusPending).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned executions: %w", err)
	}

	return count, nil
}
