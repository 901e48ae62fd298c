// Package orchestrator drives workflow executions through their step graphs:
// sequential agent invocations, condition gates, human approval pauses, and
// parallel fan-out, with per-step timeouts and retry backoff. Executions are
// durable; the accumulated context and a resume cursor are persisted after
// every step so a crashed or paused run can be picked up where it stopped.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/agent"
	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/expr"
	"github.com/batonworks/baton/pkg/projection"
	"github.com/batonworks/baton/pkg/services"
)

// DefaultStepTimeout bounds agent steps that set no timeout_seconds
const DefaultStepTimeout = 300 * time.Second

// Outcome reports where a drive pass left an execution: a terminal status
// with the final context, or paused awaiting an approval decision. Step
// failures are folded into the outcome rather than returned as errors; the
// error return of Start and Continue is reserved for infrastructure problems
type Outcome struct {
	ExecutionID int
	Status      workflowexecution.Status
	Context     map[string]interface{}
	Error       string
}

// Orchestrator executes workflows against their persisted step graphs
type Orchestrator struct {
	workflows   *services.WorkflowService
	executions  *services.ExecutionService
	approvals   *services.ApprovalService
	runner      *agent.Runner
	stepTimeout time.Duration
	logger      *slog.Logger
}

// New creates an Orchestrator. stepTimeout applies to steps without an
// explicit timeout_seconds; zero selects DefaultStepTimeout
func New(workflows *services.WorkflowService, executions *services.ExecutionService, approvals *services.ApprovalService, runner *agent.Runner, stepTimeout time.Duration) *Orchestrator {
	if stepTimeout <= 0 {
		stepTimeout = DefaultStepTimeout
	}
	return &Orchestrator{
		workflows:   workflows,
		executions:  executions,
		approvals:   approvals,
		runner:      runner,
		stepTimeout: stepTimeout,
		logger:      slog.Default(),
	}
}

// Start creates an execution for the workflow and drives it inline to a
// terminal or paused state. The trigger data is stored on the execution and
// seeds the context under the "trigger" key
func (o *Orchestrator) Start(ctx context.Context, workflowID int, triggerData map[string]interface{}) (*Outcome, error) {
	wf, err := o.workflows.GetWorkflow(ctx, workflowID, true)
	if err != nil {
		return nil, err
	}
	if !wf.Active {
		return nil, engine.NewErrorf(engine.KindInactive, "workflow %q is inactive", wf.Name)
	}

	if triggerData == nil {
		triggerData = map[string]interface{}{}
	}
	execCtx := map[string]interface{}{"trigger": triggerData}

	exec, err := o.executions.CreateExecution(ctx, workflowID, triggerData, execCtx, workflowexecution.StatusRunning)
	if err != nil {
		return nil, err
	}
	o.logger.Info("Workflow execution started",
		"workflow_id", workflowID, "workflow", wf.Name, "execution_id", exec.ID)

	return o.drive(ctx, exec.ID, wf.Edges.Steps, execCtx, 0)
}

// Enqueue creates a pending execution for the queue workers instead of
// driving it inline
func (o *Orchestrator) Enqueue(ctx context.Context, workflowID int, triggerData map[string]interface{}) (*ent.WorkflowExecution, error) {
	wf, err := o.workflows.GetWorkflow(ctx, workflowID, false)
	if err != nil {
		return nil, err
	}
	if !wf.Active {
		return nil, engine.NewErrorf(engine.KindInactive, "workflow %q is inactive", wf.Name)
	}

	if triggerData == nil {
		triggerData = map[string]interface{}{}
	}
	execCtx := map[string]interface{}{"trigger": triggerData}

	exec, err := o.executions.CreateExecution(ctx, workflowID, triggerData, execCtx, workflowexecution.StatusPending)
	if err != nil {
		return nil, err
	}
	o.logger.Info("Workflow execution enqueued",
		"workflow_id", workflowID, "workflow", wf.Name, "execution_id", exec.ID)

	return exec, nil
}

// Continue drives a claimed execution from its persisted cursor. The caller
// must have moved the row to running first; queue workers do this through
// ClaimNextPendingExecution
func (o *Orchestrator) Continue(ctx context.Context, executionID int) (*Outcome, error) {
	exec, err := o.executions.GetExecution(ctx, executionID, false)
	if err != nil {
		return nil, err
	}
	if exec.Status != workflowexecution.StatusRunning {
		return nil, fmt.Errorf("execution %d is not running: %w", executionID, services.ErrInvalidState)
	}

	steps, err := o.workflows.ListSteps(ctx, exec.WorkflowID)
	if err != nil {
		return nil, err
	}

	execCtx := exec.Context
	if execCtx == nil {
		trigger := exec.TriggerData
		if trigger == nil {
			trigger = map[string]interface{}{}
		}
		execCtx = map[string]interface{}{"trigger": trigger}
	}

	fromOrder := 0
	if exec.CurrentStepOrder != nil {
		fromOrder = *exec.CurrentStepOrder
	}

	return o.drive(ctx, exec.ID, steps, execCtx, fromOrder)
}

// Resume merges an approval outcome into a paused execution's context and
// requeues it as pending. A queue worker then claims the row and re-enters
// the step loop at the persisted cursor, which the pause left pointing at
// the step after the approval
func (o *Orchestrator) Resume(ctx context.Context, executionID, approvalID int) error {
	approval, err := o.approvals.GetApprovalRequest(ctx, approvalID)
	if err != nil {
		return err
	}
	if approval.ExecutionID != executionID {
		return services.NewValidationError("approval_id",
			fmt.Sprintf("approval %d does not belong to execution %d", approvalID, executionID))
	}

	exec, err := o.executions.GetExecution(ctx, executionID, false)
	if err != nil {
		return err
	}
	if exec.Status != workflowexecution.StatusPaused {
		return fmt.Errorf("execution %d is not paused: %w", executionID, services.ErrInvalidState)
	}

	step, err := o.workflows.GetStep(ctx, approval.StepID)
	if err != nil {
		return err
	}

	execCtx := exec.Context
	if execCtx == nil {
		execCtx = map[string]interface{}{}
	}
	if step.OutputVariable != "" {
		approvedBy := ""
		if approval.ApprovedBy != nil {
			approvedBy = *approval.ApprovedBy
		}
		comments := ""
		if approval.Comments != nil {
			comments = *approval.Comments
		}
		execCtx[step.OutputVariable] = map[string]interface{}{
			"approved":   true,
			"approvedBy": approvedBy,
			"comments":   comments,
		}
	}

	if err := o.executions.RequeueForResume(ctx, executionID, execCtx); err != nil {
		return err
	}
	o.logger.Info("Execution requeued after approval",
		"execution_id", executionID, "approval_id", approvalID)

	return nil
}

// drive runs the step loop from fromOrder until the workflow completes,
// fails, or pauses at an approval. Steps whose order precedes the cursor
// count as completed for dependency checks
func (o *Orchestrator) drive(ctx context.Context, executionID int, steps []*ent.WorkflowStep, execCtx map[string]interface{}, fromOrder int) (*Outcome, error) {
	completed := make(map[int]bool)
	for _, step := range steps {
		if step.StepOrder < fromOrder {
			completed[step.StepOrder] = true
		}
	}

	for i := 0; i < len(steps); i++ {
		step := steps[i]
		if completed[step.StepOrder] {
			continue
		}

		if step.ConditionExpression != "" {
			skip, evalErr := expr.EvaluateBool(execCtx, step.ConditionExpression)
			if evalErr != nil {
				o.logger.Warn("Unrecognized condition expression, step will run",
					"execution_id", executionID, "step", step.Name,
					"expression", step.ConditionExpression, "error", evalErr)
			}
			if skip {
				o.logger.Info("Step skipped by condition",
					"execution_id", executionID, "step", step.Name)
				completed[step.StepOrder] = true
				if err := o.executions.SaveProgress(ctx, executionID, execCtx, nextOrderAfter(steps, i)); err != nil {
					return nil, err
				}
				continue
			}
		}

		if err := checkDependencies(step, completed); err != nil {
			return o.fail(ctx, executionID, execCtx, err)
		}

		var output map[string]interface{}
		switch step.StepType {
		case workflowstep.StepTypeAgent:
			out, err := o.runAgentStep(ctx, executionID, step, execCtx)
			if err != nil {
				return o.fail(ctx, executionID, execCtx, err)
			}
			output = out

		case workflowstep.StepTypeCondition:
			// The gate itself ran above; the step records that it held
			output = map[string]interface{}{"skipped": true}

		case workflowstep.StepTypeApproval:
			requiredRole, timeoutAt := approvalParams(step, execCtx)
			if _, err := o.approvals.CreateApprovalRequest(ctx, executionID, step.ID, requiredRole, timeoutAt); err != nil {
				return o.fail(ctx, executionID, execCtx, err)
			}
			if step.OutputVariable != "" {
				execCtx[step.OutputVariable] = map[string]interface{}{
					"status":  "PENDING",
					"message": "Waiting for approval",
				}
			}
			resumeOrder := nextOrderAfter(steps, i)
			if err := o.executions.PauseForApproval(ctx, executionID, execCtx, *resumeOrder); err != nil {
				return nil, err
			}
			o.logger.Info("Execution paused for approval",
				"execution_id", executionID, "step", step.Name)
			return &Outcome{
				ExecutionID: executionID,
				Status:      workflowexecution.StatusPaused,
				Context:     execCtx,
			}, nil

		case workflowstep.StepTypeParallel:
			group := collectParallelGroup(steps, i)
			output = o.runParallelGroup(ctx, executionID, group, execCtx)
			for _, sub := range group {
				completed[sub.StepOrder] = true
			}

		default:
			err := engine.NewErrorf(engine.KindInvalidArgument,
				"step %q has unsupported type %s", step.Name, step.StepType)
			return o.fail(ctx, executionID, execCtx, err)
		}

		if step.OutputVariable != "" {
			execCtx[step.OutputVariable] = output
		}
		completed[step.StepOrder] = true

		if err := o.executions.SaveProgress(ctx, executionID, execCtx, nextOrderAfter(steps, i)); err != nil {
			return nil, err
		}
	}

	if err := o.executions.UpdateExecutionStatus(ctx, executionID, workflowexecution.StatusCompleted, nil); err != nil {
		return nil, err
	}
	o.logger.Info("Workflow execution completed", "execution_id", executionID)

	return &Outcome{
		ExecutionID: executionID,
		Status:      workflowexecution.StatusCompleted,
		Context:     execCtx,
	}, nil
}

// runAgentStep projects the step input, then invokes the agent runner under
// the step's timeout and retry discipline
func (o *Orchestrator) runAgentStep(ctx context.Context, executionID int, step *ent.WorkflowStep, execCtx map[string]interface{}) (map[string]interface{}, error) {
	if step.AgentID == nil {
		return nil, engine.NewErrorf(engine.KindInvalidArgument,
			"step %q has no agent assigned", step.Name)
	}

	// A nil mapping passes the whole context through
	input := projection.Project(execCtx, step.InputMapping)

	timeout := o.stepTimeout
	if step.TimeoutSeconds != nil && *step.TimeoutSeconds > 0 {
		timeout = time.Duration(*step.TimeoutSeconds) * time.Second
	}

	var output map[string]interface{}
	err := runWithRetry(ctx, parseRetryConfig(step.RetryConfig), o.logger, step.Name, func() error {
		stepCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		result, err := o.runner.Run(stepCtx, *step.AgentID, input, &executionID, &step.ID)
		if err != nil {
			if stepCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
				return engine.WrapError(engine.KindStepTimeout,
					fmt.Sprintf("step %q exceeded its %s timeout", step.Name, timeout), err)
			}
			return err
		}
		output = result.Output
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// fail marks the execution failed with the cause and reports it as the
// outcome. The context keeps whatever progress earlier steps committed
func (o *Orchestrator) fail(ctx context.Context, executionID int, execCtx map[string]interface{}, cause error) (*Outcome, error) {
	msg := cause.Error()
	if err := o.executions.UpdateExecutionStatus(ctx, executionID, workflowexecution.StatusFailed, &msg); err != nil {
		o.logger.Error("Failed to mark execution failed",
			"execution_id", executionID, "error", err)
	}
	o.logger.Error("Workflow execution failed",
		"execution_id", executionID, "error", cause)

	return &Outcome{
		ExecutionID: executionID,
		Status:      workflowexecution.StatusFailed,
		Context:     execCtx,
		Error:       msg,
	}, nil
}

// approvalParams reads requiredRole and timeoutMinutes for an approval step.
// The input mapping is projected against the context so the values may be
// templated; the approval_config column overrides mapped keys
func approvalParams(step *ent.WorkflowStep, execCtx map[string]interface{}) (*string, *time.Time) {
	params := map[string]interface{}{}
	if len(step.InputMapping) > 0 {
		params = projection.Project(execCtx, step.InputMapping)
	}
	for k, v := range step.ApprovalConfig {
		params[k] = v
	}

	var requiredRole *string
	if role, ok := params["requiredRole"].(string); ok && role != "" {
		requiredRole = &role
	}
	var timeoutAt *time.Time
	if minutes, ok := numberValue(params["timeoutMinutes"]); ok && minutes > 0 {
		at := time.Now().Add(time.Duration(minutes * float64(time.Minute)))
		timeoutAt = &at
	}
	return requiredRole, timeoutAt
}

// checkDependencies verifies every step order listed in depends_on already
// completed. Sequential execution satisfies this trivially; parallel groups
// and resumed runs rely on the completed set
func checkDependencies(step *ent.WorkflowStep, completed map[int]bool) error {
	for _, dep := range step.DependsOn {
		if !completed[dep] {
			return engine.NewErrorf(engine.KindDependencyUnmet,
				"step %q requires step order %d to complete first", step.Name, dep)
		}
	}
	return nil
}

// nextOrderAfter computes the resume cursor once steps[i] is done: the next
// step's order, or one past the last order at the end of the graph
func nextOrderAfter(steps []*ent.WorkflowStep, i int) *int {
	var next int
	if i+1 < len(steps) {
		next = steps[i+1].StepOrder
	} else {
		next = steps[i].StepOrder + 1
	}
	return &next
}
