package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
)

// createTestAgent inserts a minimal active agent directly
func createTestAgent(t *testing.T, client *ent.Client, name string) *ent.Agent {
	t.Helper()
	created, err := client.Agent.Create().
		SetName(name).
		SetProvider("anthropic").
		SetModel("claude-sonnet-4-5").
		Save(context.Background())
	require.NoError(t, err)
	return created
}

// createTestTool inserts a minimal active tool directly
func createTestTool(t *testing.T, client *ent.Client, name string) *ent.Tool {
	t.Helper()
	created, err := client.Tool.Create().
		SetName(name).
		SetHandler(name).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

// createTestWorkflow inserts a minimal active workflow directly
func createTestWorkflow(t *testing.T, client *ent.Client, name string) *ent.Workflow {
	t.Helper()
	created, err := client.Workflow.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

// createTestStep inserts a step directly, bypassing service-side graph
// validation
func createTestStep(t *testing.T, client *ent.Client, workflowID, order int, stepType workflowstep.StepType, agentID *int) *ent.WorkflowStep {
	t.Helper()
	create := client.WorkflowStep.Create().
		SetWorkflowID(workflowID).
		SetStepOrder(order).
		SetStepType(stepType).
		SetName("step").
		SetNillableAgentID(agentID)
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

// createTestExecution inserts an execution directly in the given status
func createTestExecution(t *testing.T, client *ent.Client, workflowID int, status workflowexecution.Status) *ent.WorkflowExecution {
	t.Helper()
	create := client.WorkflowExecution.Create().
		SetWorkflowID(workflowID).
		SetStatus(status)
	if status != workflowexecution.StatusPending {
		create = create.SetStartedAt(time.Now())
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
