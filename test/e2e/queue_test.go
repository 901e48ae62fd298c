package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/engine"
)

// An async execution goes pending -> claimed by a worker -> driven through
// both steps -> completed, with each step's output merged under its
// variable and the second step fed only its projected input.
func TestE2E_AsyncLifecycle(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.
		RespondText("billing", 12, 3).
		RespondText("ticket filed", 9, 2)

	classifier := app.createAgent(t, "e2e-classifier")
	responder := app.createAgent(t, "e2e-responder")
	wf := app.createWorkflow(t, "e2e-async")
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: classifier.ID, name: "classify", outputVariable: "class",
	})
	app.createStep(t, wf.ID, stepSpec{
		order: 2, stepType: workflowstep.StepTypeAgent,
		agentID: responder.ID, name: "respond", outputVariable: "result",
		inputMapping: map[string]interface{}{"category": "${class.text}"},
	})

	exec, err := app.orch.Enqueue(ctx, wf.ID, map[string]interface{}{"query": "refund?"})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPending, exec.Status)
	app.pool.Notify()

	final := app.waitForStatus(t, exec.ID, workflowexecution.StatusCompleted)

	assert.Equal(t, map[string]interface{}{
		"trigger": map[string]interface{}{"query": "refund?"},
		"class":   map[string]interface{}{"text": "billing", "stop_reason": "end_turn"},
		"result":  map[string]interface{}{"text": "ticket filed", "stop_reason": "end_turn"},
	}, final.Context)
	assert.NotNil(t, final.StartedAt)
	assert.NotNil(t, final.CompletedAt)

	requests := app.provider.Requests()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[1].Messages[0].Blocks[0].Text, `"category":"billing"`)

	// One audit row per agent step, both completed
	completed, err := app.client.AgentExecution.Query().
		Where(
			agentexecution.ExecutionIDEQ(exec.ID),
			agentexecution.StatusEQ(agentexecution.StatusCompleted),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
}

// A true skip predicate drops the gated step from a queued run: its output
// variable stays unset and the following step still executes.
func TestE2E_ConditionSkip(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.
		RespondText("skip", 5, 1).
		RespondText("done", 5, 1)

	first := app.createAgent(t, "e2e-cond-first")
	third := app.createAgent(t, "e2e-cond-third")
	wf := app.createWorkflow(t, "e2e-cond")
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: first.ID, outputVariable: "a",
	})
	app.createStep(t, wf.ID, stepSpec{
		order: 2, stepType: workflowstep.StepTypeCondition,
		condition: "${a.text}==skip", outputVariable: "s",
	})
	app.createStep(t, wf.ID, stepSpec{
		order: 3, stepType: workflowstep.StepTypeAgent,
		agentID: third.ID, outputVariable: "b",
	})

	exec, err := app.orch.Enqueue(ctx, wf.ID, nil)
	require.NoError(t, err)
	app.pool.Notify()

	final := app.waitForStatus(t, exec.ID, workflowexecution.StatusCompleted)
	assert.NotContains(t, final.Context, "s")
	assert.Equal(t, "done", final.Context["b"].(map[string]interface{})["text"])
	assert.Len(t, app.provider.Requests(), 2)
}

// A transient provider failure inside a queued execution is retried with
// backoff on the same worker and the execution still completes.
func TestE2E_RetryThroughQueue(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.
		RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503")).
		RespondText("recovered", 8, 2)

	worker := app.createAgent(t, "e2e-retry")
	wf := app.createWorkflow(t, "e2e-retry")
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: worker.ID, outputVariable: "answer",
		retryConfig: map[string]interface{}{
			"maxRetries": 2, "initialDelayMs": 10, "multiplier": 2, "maxDelayMs": 100,
		},
	})

	exec, err := app.orch.Enqueue(ctx, wf.ID, nil)
	require.NoError(t, err)
	app.pool.Notify()

	final := app.waitForStatus(t, exec.ID, workflowexecution.StatusCompleted)
	assert.Equal(t, "recovered", final.Context["answer"].(map[string]interface{})["text"])
	assert.Len(t, app.provider.Requests(), 2)

	failed, err := app.client.AgentExecution.Query().
		Where(
			agentexecution.ExecutionIDEQ(exec.ID),
			agentexecution.StatusEQ(agentexecution.StatusFailed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
}

// Multiple queued executions are drained concurrently by the pool and each
// keeps its own context.
func TestE2E_QueueDrainsBacklog(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		app.provider.RespondText("done", 5, 1)
	}

	worker := app.createAgent(t, "e2e-backlog")
	wf := app.createWorkflow(t, "e2e-backlog")
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: worker.ID, outputVariable: "out",
	})

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		exec, err := app.orch.Enqueue(ctx, wf.ID, map[string]interface{}{"n": i})
		require.NoError(t, err)
		ids = append(ids, exec.ID)
	}
	app.pool.Notify()

	for i, id := range ids {
		final := app.waitForStatus(t, id, workflowexecution.StatusCompleted)
		trigger := final.Context["trigger"].(map[string]interface{})
		assert.EqualValues(t, i, trigger["n"])
	}

	// The queue is empty once the backlog drains
	require.Eventually(t, func() bool {
		health := app.pool.Health()
		return health.QueueDepth == 0 && health.RunningCount == 0
	}, 5*time.Second, 20*time.Millisecond)
}
