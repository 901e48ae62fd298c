package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestAgentExecutionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentExecutionService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "runner")
	wf := createTestWorkflow(t, client.Client, "runner-wf")
	step := createTestStep(t, client.Client, wf.ID, 0, workflowstep.StepTypeAgent, intPtr(agent.ID))
	exec := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)

	t.Run("start records a running row", func(t *testing.T) {
		started, err := service.StartAgentExecution(ctx, models.StartAgentExecutionRequest{
			AgentID:     agent.ID,
			ExecutionID: intPtr(exec.ID),
			StepID:      intPtr(step.ID),
			Input:       map[string]interface{}{"text": "hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusRunning, started.Status)
		assert.NotNil(t, started.StartedAt)
		require.NotNil(t, started.ExecutionID)
		assert.Equal(t, exec.ID, *started.ExecutionID)
	})

	t.Run("complete stores output and token split", func(t *testing.T) {
		started, err := service.StartAgentExecution(ctx, models.StartAgentExecutionRequest{
			AgentID: agent.ID,
		})
		require.NoError(t, err)

		err = service.CompleteAgentExecution(ctx, started.ID,
			map[string]interface{}{"text": "done", "stop_reason": "end_turn"}, 120, 45)
		require.NoError(t, err)

		reloaded, err := service.GetAgentExecution(ctx, started.ID)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusCompleted, reloaded.Status)
		assert.Equal(t, "done", reloaded.Output["text"])
		require.NotNil(t, reloaded.InputTokens)
		assert.Equal(t, 120, *reloaded.InputTokens)
		require.NotNil(t, reloaded.OutputTokens)
		assert.Equal(t, 45, *reloaded.OutputTokens)
		require.NotNil(t, reloaded.TokensUsed)
		assert.Equal(t, 165, *reloaded.TokensUsed)
		assert.NotNil(t, reloaded.CompletedAt)
		assert.NotNil(t, reloaded.DurationMs)
	})

	t.Run("fail stores the error", func(t *testing.T) {
		started, err := service.StartAgentExecution(ctx, models.StartAgentExecutionRequest{
			AgentID: agent.ID,
		})
		require.NoError(t, err)

		err = service.FailAgentExecution(ctx, started.ID, "provider timed out")
		require.NoError(t, err)

		reloaded, err := service.GetAgentExecution(ctx, started.ID)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusFailed, reloaded.Status)
		require.NotNil(t, reloaded.ErrorMessage)
		assert.Equal(t, "provider timed out", *reloaded.ErrorMessage)
	})

	t.Run("validates agent reference", func(t *testing.T) {
		_, err := service.StartAgentExecution(ctx, models.StartAgentExecutionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.StartAgentExecution(ctx, models.StartAgentExecutionRequest{AgentID: 999999})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists by workflow execution", func(t *testing.T) {
		rows, err := service.ListByWorkflowExecution(ctx, exec.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("lists by agent newest first", func(t *testing.T) {
		rows, err := service.ListByAgent(ctx, agent.ID, 2)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
