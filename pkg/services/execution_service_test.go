package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestExecutionService_CreateExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "exec-wf")

	t.Run("creates pending execution without started_at", func(t *testing.T) {
		trigger := map[string]interface{}{"source": "test"}
		created, err := service.CreateExecution(ctx, wf.ID, trigger,
			map[string]interface{}{"trigger": trigger},
			workflowexecution.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusPending, created.Status)
		assert.Nil(t, created.StartedAt)
		assert.Equal(t, "test", created.TriggerData["source"])
	})

	t.Run("creates running execution with started_at", func(t *testing.T) {
		created, err := service.CreateExecution(ctx, wf.ID, nil, nil,
			workflowexecution.StatusRunning)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusRunning, created.Status)
		assert.NotNil(t, created.StartedAt)
	})

	t.Run("rejects terminal initial status", func(t *testing.T) {
		_, err := service.CreateExecution(ctx, wf.ID, nil, nil,
			workflowexecution.StatusCompleted)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing workflow", func(t *testing.T) {
		_, err := service.CreateExecution(ctx, 999999, nil, nil,
			workflowexecution.StatusPending)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ListExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "listed-wf")
	other := createTestWorkflow(t, client.Client, "other-listed-wf")
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusCompleted)
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusFailed)
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusCompleted)
	createTestExecution(t, client.Client, other.ID, workflowexecution.StatusCompleted)

	t.Run("filters by workflow and status", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{
			WorkflowID: wf.ID,
			Status:     "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Executions, 2)
	})

	t.Run("paginates with default limit", func(t *testing.T) {
		resp, err := service.ListExecutions(ctx, models.ExecutionFilters{
			WorkflowID: wf.ID,
			Limit:      2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Executions, 2)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := service.ListExecutions(ctx, models.ExecutionFilters{Status: "exploded"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestExecutionService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "transition-wf")

	t.Run("terminal status stamps completed_at and error", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)

		err := service.UpdateExecutionStatus(ctx, exec.ID,
			workflowexecution.StatusFailed, strPtr("step 2 exploded"))
		require.NoError(t, err)

		reloaded, err := service.GetExecution(ctx, exec.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusFailed, reloaded.Status)
		assert.NotNil(t, reloaded.CompletedAt)
		require.NotNil(t, reloaded.ErrorMessage)
		assert.Equal(t, "step 2 exploded", *reloaded.ErrorMessage)
	})

	t.Run("save progress persists context and cursor", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)

		err := service.SaveProgress(ctx, exec.ID,
			map[string]interface{}{"summary": "done"}, intPtr(2))
		require.NoError(t, err)

		reloaded, err := service.GetExecution(ctx, exec.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "done", reloaded.Context["summary"])
		require.NotNil(t, reloaded.CurrentStepOrder)
		assert.Equal(t, 2, *reloaded.CurrentStepOrder)
	})

	t.Run("pause requires running", func(t *testing.T) {
		running := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)
		err := service.PauseForApproval(ctx, running.ID,
			map[string]interface{}{"k": "v"}, 3)
		require.NoError(t, err)

		reloaded, err := service.GetExecution(ctx, running.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusPaused, reloaded.Status)
		require.NotNil(t, reloaded.CurrentStepOrder)
		assert.Equal(t, 3, *reloaded.CurrentStepOrder)

		pending := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPending)
		err = service.PauseForApproval(ctx, pending.ID, nil, 0)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("requeue requires paused", func(t *testing.T) {
		paused := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPaused)
		err := service.RequeueForResume(ctx, paused.ID,
			map[string]interface{}{"approval": map[string]interface{}{"approved": true}})
		require.NoError(t, err)

		reloaded, err := service.GetExecution(ctx, paused.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusPending, reloaded.Status)

		err = service.RequeueForResume(ctx, paused.ID, nil)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("cancel applies to pending and paused only", func(t *testing.T) {
		pending := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPending)
		err := service.CancelExecution(ctx, pending.ID)
		require.NoError(t, err)

		reloaded, err := service.GetExecution(ctx, pending.ID, false)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusCancelled, reloaded.Status)
		assert.NotNil(t, reloaded.CompletedAt)

		running := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)
		err = service.CancelExecution(ctx, running.ID)
		assert.ErrorIs(t, err, ErrInvalidState)

		err = service.CancelExecution(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ClaimNextPendingExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "claim-wf")

	t.Run("returns nil on empty queue", func(t *testing.T) {
		claimed, err := service.ClaimNextPendingExecution(ctx)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims oldest first and sets started_at", func(t *testing.T) {
		first := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPending)
		time.Sleep(10 * time.Millisecond)
		second := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPending)

		claimed, err := service.ClaimNextPendingExecution(ctx)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, workflowexecution.StatusRunning, claimed.Status)
		assert.NotNil(t, claimed.StartedAt)

		claimed, err = service.ClaimNextPendingExecution(ctx)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, second.ID, claimed.ID)

		claimed, err = service.ClaimNextPendingExecution(ctx)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("resumed execution keeps its original started_at", func(t *testing.T) {
		paused := createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPaused)
		originalStart := paused.StartedAt
		require.NotNil(t, originalStart)

		err := service.RequeueForResume(ctx, paused.ID, map[string]interface{}{})
		require.NoError(t, err)

		claimed, err := service.ClaimNextPendingExecution(ctx)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, paused.ID, claimed.ID)
		require.NotNil(t, claimed.StartedAt)
		assert.WithinDuration(t, *originalStart, *claimed.StartedAt, time.Second)
	})
}

func TestExecutionService_RequeueOrphanedExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "orphan-wf")
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusRunning)
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusCompleted)
	createTestExecution(t, client.Client, wf.ID, workflowexecution.StatusPaused)

	count, err := service.RequeueOrphanedExecutions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	pending, err := client.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}
