package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/models"
)

// reorderOffset parks step orders above the live range during a reorder so
// the (workflow_id, step_order) unique index stays satisfied per statement
const reorderOffset = 1 << 20

// WorkflowService manages workflow definitions and their step graphs
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow creates a new workflow definition
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	// Validate input
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.TriggerType != "" {
		if err := workflow.TriggerTypeValidator(workflow.TriggerType(req.TriggerType)); err != nil {
			return nil, NewValidationError("trigger_type", "must be 'manual', 'scheduled' or 'event'")
		}
	}
	if req.ExecutionMode != "" {
		if err := workflow.ExecutionModeValidator(workflow.ExecutionMode(req.ExecutionMode)); err != nil {
			return nil, NewValidationError("execution_mode", "must be 'sync' or 'async'")
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Workflow.Create().
		SetName(req.Name).
		SetPublic(req.Public)
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.TriggerType != "" {
		create = create.SetTriggerType(workflow.TriggerType(req.TriggerType))
	}
	if req.TriggerConfig != nil {
		create = create.SetTriggerConfig(req.TriggerConfig)
	}
	if req.ExecutionMode != "" {
		create = create.SetExecutionMode(workflow.ExecutionMode(req.ExecutionMode))
	}
	if req.InputSchema != nil {
		create = create.SetInputSchema(req.InputSchema)
	}
	if req.InterfaceType != "" {
		create = create.SetInterfaceType(req.InterfaceType)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("workflow %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	return created, nil
}

// GetWorkflow retrieves a workflow by ID with optional step edge loading
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID int, withSteps bool) (*ent.Workflow, error) {
	query := s.client.Workflow.Query().Where(workflow.IDEQ(workflowID))

	if withSteps {
		query = query.WithSteps(func(q *ent.WorkflowStepQuery) {
			q.Order(ent.Asc(workflowstep.FieldStepOrder))
		})
	}

	found, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return found, nil
}

// GetWorkflowByName retrieves a workflow by its unique name
func (s *WorkflowService) GetWorkflowByName(ctx context.Context, name string) (*ent.Workflow, error) {
	found, err := s.client.Workflow.Query().
		Where(workflow.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow by name: %w", err)
	}

	return found, nil
}

// ListWorkflows lists workflows, optionally restricted to active ones
func (s *WorkflowService) ListWorkflows(ctx context.Context, activeOnly bool) ([]*ent.Workflow, error) {
	query := s.client.Workflow.Query()
	if activeOnly {
		query = query.Where(workflow.ActiveEQ(true))
	}

	workflows, err := query.
		Order(ent.Asc(workflow.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	return workflows, nil
}

// UpdateWorkflow applies a partial update to a workflow
func (s *WorkflowService) UpdateWorkflow(httpCtx context.Context, workflowID int, req models.UpdateWorkflowRequest) (*ent.Workflow, error) {
	// Validate input
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.TriggerType != nil {
		if err := workflow.TriggerTypeValidator(workflow.TriggerType(*req.TriggerType)); err != nil {
			return nil, NewValidationError("trigger_type", "must be 'manual', 'scheduled' or 'event'")
		}
	}
	if req.ExecutionMode != nil {
		if err := workflow.ExecutionModeValidator(workflow.ExecutionMode(*req.ExecutionMode)); err != nil {
			return nil, NewValidationError("execution_mode", "must be 'sync' or 'async'")
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Workflow.UpdateOneID(workflowID).
		SetNillableName(req.Name).
		SetNillableDescription(req.Description).
		SetNillableInterfaceType(req.InterfaceType).
		SetNillablePublic(req.Public)
	if req.TriggerType != nil {
		update = update.SetTriggerType(workflow.TriggerType(*req.TriggerType))
	}
	if req.TriggerConfig != nil {
		update = update.SetTriggerConfig(req.TriggerConfig)
	}
	if req.ExecutionMode != nil {
		update = update.SetExecutionMode(workflow.ExecutionMode(*req.ExecutionMode))
	}
	if req.InputSchema != nil {
		update = update.SetInputSchema(req.InputSchema)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("workflow name: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}

	return updated, nil
}

// SetWorkflowActive toggles a workflow's active flag
func (s *WorkflowService) SetWorkflowActive(httpCtx context.Context, workflowID int, active bool) (*ent.Workflow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.Workflow.UpdateOneID(workflowID).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set workflow active: %w", err)
	}

	return updated, nil
}

// DeleteWorkflow removes a workflow and cascades its steps, executions and
// schedules
func (s *WorkflowService) DeleteWorkflow(httpCtx context.Context, workflowID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Workflow.DeleteOneID(workflowID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete workflow: %w", err)
	}

	return nil
}

// AddStep appends a step to a workflow and re-validates the step graph
func (s *WorkflowService) AddStep(httpCtx context.Context, workflowID int, req models.StepRequest) (*ent.WorkflowStep, error) {
	if err := validateStepRequest(req); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Workflow.Query().Where(workflow.IDEQ(workflowID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workflow %d: %w", workflowID, ErrNotFound)
	}
	if req.AgentID != nil {
		exists, err = tx.Agent.Query().Where(agent.IDEQ(*req.AgentID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check agent: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("agent %d: %w", *req.AgentID, ErrNotFound)
		}
	}

	create := tx.WorkflowStep.Create().
		SetWorkflowID(workflowID).
		SetStepOrder(req.StepOrder).
		SetStepType(workflowstep.StepType(req.StepType)).
		SetName(req.Name).
		SetNillableAgentID(req.AgentID).
		SetNillableTimeoutSeconds(req.TimeoutSeconds)
	if req.InputMapping != nil {
		create = create.SetInputMapping(req.InputMapping)
	}
	if req.OutputVariable != "" {
		create = create.SetOutputVariable(req.OutputVariable)
	}
	if req.ConditionExpression != "" {
		create = create.SetConditionExpression(req.ConditionExpression)
	}
	if req.DependsOn != nil {
		create = create.SetDependsOn(req.DependsOn)
	}
	if req.ApprovalConfig != nil {
		create = create.SetApprovalConfig(req.ApprovalConfig)
	}
	if req.RetryConfig != nil {
		create = create.SetRetryConfig(req.RetryConfig)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("step_order %d already taken: %w", req.StepOrder, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create step: %w", err)
	}

	if err := s.validateWorkflowSteps(ctx, tx, workflowID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetStep retrieves a single step by ID
func (s *WorkflowService) GetStep(ctx context.Context, stepID int) (*ent.WorkflowStep, error) {
	found, err := s.client.WorkflowStep.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}

	return found, nil
}

// ListSteps lists a workflow's steps in execution order
func (s *WorkflowService) ListSteps(ctx context.Context, workflowID int) ([]*ent.WorkflowStep, error) {
	exists, err := s.client.Workflow.Query().Where(workflow.IDEQ(workflowID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workflow %d: %w", workflowID, ErrNotFound)
	}

	steps, err := s.client.WorkflowStep.Query().
		Where(workflowstep.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}

	return steps, nil
}

// UpdateStep applies a partial update to a step and re-validates the graph
func (s *WorkflowService) UpdateStep(httpCtx context.Context, stepID int, req models.UpdateStepRequest) (*ent.WorkflowStep, error) {
	// Validate input
	if req.StepOrder != nil && *req.StepOrder < 0 {
		return nil, NewValidationError("step_order", "must not be negative")
	}
	if req.StepType != nil {
		if err := workflowstep.StepTypeValidator(workflowstep.StepType(*req.StepType)); err != nil {
			return nil, NewValidationError("step_type", "must be 'agent', 'condition', 'approval' or 'parallel'")
		}
	}
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.TimeoutSeconds != nil && *req.TimeoutSeconds <= 0 {
		return nil, NewValidationError("timeout_seconds", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	step, err := tx.WorkflowStep.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	if req.AgentID != nil {
		exists, err := tx.Agent.Query().Where(agent.IDEQ(*req.AgentID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check agent: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("agent %d: %w", *req.AgentID, ErrNotFound)
		}
	}

	update := tx.WorkflowStep.UpdateOneID(stepID).
		SetNillableStepOrder(req.StepOrder).
		SetNillableName(req.Name).
		SetNillableOutputVariable(req.OutputVariable).
		SetNillableConditionExpression(req.ConditionExpression).
		SetNillableTimeoutSeconds(req.TimeoutSeconds).
		SetNillableAgentID(req.AgentID)
	if req.StepType != nil {
		update = update.SetStepType(workflowstep.StepType(*req.StepType))
		// Retyping away from agent drops the agent binding
		if workflowstep.StepType(*req.StepType) != workflowstep.StepTypeAgent && req.AgentID == nil {
			update = update.ClearAgentID()
		}
	}
	if req.InputMapping != nil {
		update = update.SetInputMapping(req.InputMapping)
	}
	if req.DependsOn != nil {
		update = update.SetDependsOn(req.DependsOn)
	}
	if req.ApprovalConfig != nil {
		update = update.SetApprovalConfig(req.ApprovalConfig)
	}
	if req.RetryConfig != nil {
		update = update.SetRetryConfig(req.RetryConfig)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("step_order already taken: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update step: %w", err)
	}

	if err := s.validateWorkflowSteps(ctx, tx, step.WorkflowID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// DeleteStep removes a step and re-validates the remaining graph
func (s *WorkflowService) DeleteStep(httpCtx context.Context, stepID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	step, err := tx.WorkflowStep.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get step: %w", err)
	}

	if err := tx.WorkflowStep.DeleteOneID(stepID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete step: %w", err)
	}

	if err := s.validateWorkflowSteps(ctx, tx, step.WorkflowID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReorderSteps assigns new orders to a workflow's steps in one transaction
func (s *WorkflowService) ReorderSteps(httpCtx context.Context, workflowID int, items []models.StepReorder) ([]*ent.WorkflowStep, error) {
	if len(items) == 0 {
		return nil, NewValidationError("steps", "required")
	}
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.StepOrder < 0 {
			return nil, NewValidationError("step_order", "must not be negative")
		}
		if seen[item.StepOrder] {
			return nil, NewValidationError("step_order", fmt.Sprintf("duplicate step_order %d", item.StepOrder))
		}
		seen[item.StepOrder] = true
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Phase one parks the moved steps outside the live order range
	for _, item := range items {
		count, err := tx.WorkflowStep.Update().
			Where(
				workflowstep.IDEQ(item.StepID),
				workflowstep.WorkflowIDEQ(workflowID),
			).
			SetStepOrder(item.StepOrder + reorderOffset).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to park step %d: %w", item.StepID, err)
		}
		if count == 0 {
			return nil, fmt.Errorf("step %d in workflow %d: %w", item.StepID, workflowID, ErrNotFound)
		}
	}

	// Phase two assigns the final orders
	for _, item := range items {
		err := tx.WorkflowStep.UpdateOneID(item.StepID).
			SetStepOrder(item.StepOrder).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("step_order %d already taken: %w", item.StepOrder, ErrAlreadyExists)
			}
			return nil, fmt.Errorf("failed to reorder step %d: %w", item.StepID, err)
		}
	}

	if err := s.validateWorkflowSteps(ctx, tx, workflowID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.ListSteps(httpCtx, workflowID)
}

// validateStepRequest checks the administered fields of a new step
func validateStepRequest(req models.StepRequest) error {
	if req.StepOrder < 0 {
		return NewValidationError("step_order", "must not be negative")
	}
	if req.StepType == "" {
		return NewValidationError("step_type", "required")
	}
	if err := workflowstep.StepTypeValidator(workflowstep.StepType(req.StepType)); err != nil {
		return NewValidationError("step_type", "must be 'agent', 'condition', 'approval' or 'parallel'")
	}
	if req.Name == "" {
		return NewValidationError("name", "required")
	}
	if req.TimeoutSeconds != nil && *req.TimeoutSeconds <= 0 {
		return NewValidationError("timeout_seconds", "must be positive")
	}
	return nil
}

// validateWorkflowSteps reloads a workflow's steps inside the transaction
// and checks the full graph
func (s *WorkflowService) validateWorkflowSteps(ctx context.Context, tx *ent.Tx, workflowID int) error {
	steps, err := tx.WorkflowStep.Query().
		Where(workflowstep.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load steps for validation: %w", err)
	}
	return validateStepGraph(steps)
}

// validateStepGraph checks structural invariants over a workflow's full step
// set: unique orders, agent binding matching the step type, dependency
// references resolving to real orders, and an acyclic dependency graph
func validateStepGraph(steps []*ent.WorkflowStep) error {
	orders := make(map[int]*ent.WorkflowStep, len(steps))
	for _, st := range steps {
		if _, dup := orders[st.StepOrder]; dup {
			return NewValidationError("step_order", fmt.Sprintf("duplicate step_order %d", st.StepOrder))
		}
		orders[st.StepOrder] = st
	}

	for _, st := range steps {
		if st.StepType == workflowstep.StepTypeAgent {
			if st.AgentID == nil {
				return NewValidationError("agent_id", fmt.Sprintf("agent step %d requires agent_id", st.StepOrder))
			}
		} else if st.AgentID != nil {
			return NewValidationError("agent_id", fmt.Sprintf("step %d is not an agent step and must not set agent_id", st.StepOrder))
		}
		for _, dep := range st.DependsOn {
			if dep == st.StepOrder {
				return NewValidationError("depends_on", fmt.Sprintf("step %d depends on itself", st.StepOrder))
			}
			if _, ok := orders[dep]; !ok {
				return NewValidationError("depends_on", fmt.Sprintf("step %d depends on unknown step_order %d", st.StepOrder, dep))
			}
		}
	}

	// Kahn's algorithm; leftover nodes mean a dependency cycle
	indegree := make(map[int]int, len(steps))
	dependents := make(map[int][]int, len(steps))
	for _, st := range steps {
		if _, ok := indegree[st.StepOrder]; !ok {
			indegree[st.StepOrder] = 0
		}
		for _, dep := range st.DependsOn {
			indegree[st.StepOrder]++
			dependents[dep] = append(dependents[dep], st.StepOrder)
		}
	}
	queue := make([]int, 0, len(steps))
	for order, deg := range indegree {
		if deg == 0 {
			queue = append(queue, order)
		}
	}
	visited := 0
	for len(queue) > 0 {
		order := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range dependents[order] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if visited != len(steps) {
		return NewValidationError("depends_on", "dependency graph contains a cycle")
	}

	return nil
}
