package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
)

// buildApprovalWorkflow creates prepare -> approval gate -> ship and returns
// the workflow. The gate requires MANAGER and times out after an hour
func buildApprovalWorkflow(app *testApp, t *testing.T, name string) *ent.Workflow {
	t.Helper()
	prep := app.createAgent(t, name+"-prep")
	ship := app.createAgent(t, name+"-ship")
	wf := app.createWorkflow(t, name)
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: prep.ID, outputVariable: "prep",
	})
	app.createStep(t, wf.ID, stepSpec{
		order: 2, stepType: workflowstep.StepTypeApproval,
		name: "manager-gate", outputVariable: "approval",
		inputMapping: map[string]interface{}{"requiredRole": "MANAGER", "timeoutMinutes": 60},
	})
	app.createStep(t, wf.ID, stepSpec{
		order: 3, stepType: workflowstep.StepTypeAgent,
		agentID: ship.ID, outputVariable: "final",
	})
	return wf
}

// pendingApproval returns the single pending request owned by the execution
func pendingApproval(app *testApp, t *testing.T, executionID int) *ent.ApprovalRequest {
	t.Helper()
	pending, err := app.client.ApprovalRequest.Query().
		Where(
			approvalrequest.ExecutionIDEQ(executionID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	return pending[0]
}

// A workflow pauses at its approval gate, the coordinator's decision
// requeues it, and a pool worker drives it from the cursor to completion
// with everything committed before the pause intact.
func TestE2E_ApprovalGrantedResumes(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.
		RespondText("prepared", 6, 2).
		RespondText("shipped", 7, 2)

	wf := buildApprovalWorkflow(app, t, "e2e-approve")

	outcome, err := app.orch.Start(ctx, wf.ID, map[string]interface{}{"req": "laptop"})
	require.NoError(t, err)
	require.Equal(t, workflowexecution.StatusPaused, outcome.Status)

	request := pendingApproval(app, t, outcome.ExecutionID)
	require.NotNil(t, request.RequiredRole)
	assert.Equal(t, "MANAGER", *request.RequiredRole)

	_, err = app.coordinator.Approve(ctx, request.ID, "alice", "approved for Q3")
	require.NoError(t, err)

	final := app.waitForStatus(t, outcome.ExecutionID, workflowexecution.StatusCompleted)

	assert.Equal(t, "shipped", final.Context["final"].(map[string]interface{})["text"])
	assert.Equal(t, map[string]interface{}{
		"approved":   true,
		"approvedBy": "alice",
		"comments":   "approved for Q3",
	}, final.Context["approval"])
	for key := range outcome.Context {
		assert.Contains(t, final.Context, key)
	}
	// The ship step ran exactly once despite the pause and requeue
	assert.Len(t, app.provider.Requests(), 2)
}

// A rejected gate fails the execution with the rejection reason and the
// post-gate step never reaches the provider.
func TestE2E_ApprovalRejectedFails(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.RespondText("prepared", 6, 2)

	wf := buildApprovalWorkflow(app, t, "e2e-reject")

	outcome, err := app.orch.Start(ctx, wf.ID, nil)
	require.NoError(t, err)
	require.Equal(t, workflowexecution.StatusPaused, outcome.Status)

	request := pendingApproval(app, t, outcome.ExecutionID)
	_, err = app.coordinator.Reject(ctx, request.ID, "bob", "no budget")
	require.NoError(t, err)

	failed, err := app.client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "Approval rejected: no budget", *failed.ErrorMessage)

	// Only the prepare step ever ran
	assert.Len(t, app.provider.Requests(), 1)

	decided, err := app.client.ApprovalRequest.Get(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusRejected, decided.Status)
}

// A gate left undecided past its deadline is swept to timeout and its
// execution fails.
func TestE2E_ApprovalTimeoutSweep(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.RespondText("prepared", 6, 2)

	wf := buildApprovalWorkflow(app, t, "e2e-timeout")

	outcome, err := app.orch.Start(ctx, wf.ID, nil)
	require.NoError(t, err)
	require.Equal(t, workflowexecution.StatusPaused, outcome.Status)

	request := pendingApproval(app, t, outcome.ExecutionID)
	require.NotNil(t, request.TimeoutAt)

	// Sweep from two hours in the future, past the one hour deadline
	timedOut, err := app.coordinator.ProcessTimeouts(ctx, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, timedOut)

	failed, err := app.client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "Approval rejected: request timed out", *failed.ErrorMessage)

	expired, err := app.client.ApprovalRequest.Get(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusTimeout, expired.Status)
}
