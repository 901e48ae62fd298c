package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/pkg/models"
)

// AgentExecutionService records individual LLM agent invocations, both
// workflow steps and standalone runs
type AgentExecutionService struct {
	client *ent.Client
}

// NewAgentExecutionService creates a new AgentExecutionService
func NewAgentExecutionService(client *ent.Client) *AgentExecutionService {
	return &AgentExecutionService{client: client}
}

// StartAgentExecution creates a running agent execution row. ExecutionID
// and StepID are nil for standalone invocations
func (s *AgentExecutionService) StartAgentExecution(httpCtx context.Context, req models.StartAgentExecutionRequest) (*ent.AgentExecution, error) {
	// Validate input
	if req.AgentID <= 0 {
		return nil, NewValidationError("agent_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.AgentExecution.Create().
		SetAgentID(req.AgentID).
		SetNillableExecutionID(req.ExecutionID).
		SetNillableStepID(req.StepID).
		SetStatus(agentexecution.StatusRunning).
		SetStartedAt(time.Now())
	if req.Input != nil {
		create = create.SetInput(req.Input)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent %d: %w", req.AgentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create agent execution: %w", err)
	}

	return created, nil
}

// CompleteAgentExecution finalizes a successful agent execution with its
// output and token usage
func (s *AgentExecutionService) CompleteAgentExecution(httpCtx context.Context, executionID int, output map[string]interface{}, inputTokens, outputTokens int) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get agent execution: %w", err)
	}

	now := time.Now()
	update := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(agentexecution.StatusCompleted).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		SetTokensUsed(inputTokens + outputTokens).
		SetCompletedAt(now)
	if output != nil {
		update = update.SetOutput(output)
	}
	if exec.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete agent execution: %w", err)
	}

	return nil
}

// FailAgentExecution finalizes a failed agent execution with its error
func (s *AgentExecutionService) FailAgentExecution(httpCtx context.Context, executionID int, errorMsg string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get agent execution: %w", err)
	}

	now := time.Now()
	update := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(agentexecution.StatusFailed).
		SetCompletedAt(now)
	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}
	if exec.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail agent execution: %w", err)
	}

	return nil
}

// GetAgentExecution retrieves an agent execution by ID
func (s *AgentExecutionService) GetAgentExecution(ctx context.Context, executionID int) (*ent.AgentExecution, error) {
	found, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent execution: %w", err)
	}

	return found, nil
}

// ListByWorkflowExecution lists the agent executions belonging to one
// workflow execution in creation order
func (s *AgentExecutionService) ListByWorkflowExecution(ctx context.Context, workflowExecutionID int) ([]*ent.AgentExecution, error) {
	executions, err := s.client.AgentExecution.Query().
		Where(agentexecution.ExecutionIDEQ(workflowExecutionID)).
		Order(ent.Asc(agentexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent executions: %w", err)
	}

	return executions, nil
}

// ListByAgent lists an agent's executions, newest first
func (s *AgentExecutionService) ListByAgent(ctx context.Context, agentID, limit int) ([]*ent.AgentExecution, error) {
	if limit <= 0 {
		limit = 20 // Default
	}

	executions, err := s.client.AgentExecution.Query().
		Where(agentexecution.AgentIDEQ(agentID)).
		Order(ent.Desc(agentexecution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent executions: %w", err)
	}

	return executions, nil
}
