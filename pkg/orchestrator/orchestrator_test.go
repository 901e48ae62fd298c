package orchestrator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/agent"
	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/models"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
	testdb "github.com/batonworks/baton/test/database"
)

func newTestOrchestrator(client *ent.Client, providers ...llm.Provider) *Orchestrator {
	registry := llm.NewRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	runner := agent.NewRunner(
		services.NewAgentService(client),
		services.NewAgentExecutionService(client),
		llm.NewDriver(registry),
		tools.NewDispatcher(nil, services.NewToolService(client)),
		false,
	)
	return New(
		services.NewWorkflowService(client),
		services.NewExecutionService(client),
		services.NewApprovalService(client),
		runner,
		0,
	)
}

func createOrchAgent(t *testing.T, client *ent.Client, name, provider string) *ent.Agent {
	t.Helper()
	created, err := client.Agent.Create().
		SetName(name).
		SetProvider(provider).
		SetModel("claude-sonnet-4-5").
		SetSystemPrompt("You execute workflow steps.").
		SetActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func createOrchWorkflow(t *testing.T, client *ent.Client, name string, active bool) *ent.Workflow {
	t.Helper()
	created, err := client.Workflow.Create().
		SetName(name).
		SetActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

type stepSpec struct {
	order          int
	stepType       workflowstep.StepType
	agentID        int
	name           string
	inputMapping   map[string]interface{}
	outputVariable string
	condition      string
	dependsOn      []int
	retryConfig    map[string]interface{}
	timeoutSeconds int
}

func createStep(t *testing.T, client *ent.Client, workflowID int, spec stepSpec) *ent.WorkflowStep {
	t.Helper()
	if spec.name == "" {
		spec.name = fmt.Sprintf("step-%d", spec.order)
	}
	create := client.WorkflowStep.Create().
		SetWorkflowID(workflowID).
		SetStepOrder(spec.order).
		SetStepType(spec.stepType).
		SetName(spec.name)
	if spec.agentID != 0 {
		create = create.SetAgentID(spec.agentID)
	}
	if spec.inputMapping != nil {
		create = create.SetInputMapping(spec.inputMapping)
	}
	if spec.outputVariable != "" {
		create = create.SetOutputVariable(spec.outputVariable)
	}
	if spec.condition != "" {
		create = create.SetConditionExpression(spec.condition)
	}
	if spec.dependsOn != nil {
		create = create.SetDependsOn(spec.dependsOn)
	}
	if spec.retryConfig != nil {
		create = create.SetRetryConfig(spec.retryConfig)
	}
	if spec.timeoutSeconds > 0 {
		create = create.SetTimeoutSeconds(spec.timeoutSeconds)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestStartHappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	provider := llm.NewScriptedProvider("scripted").
		RespondText("greeting", 12, 3).
		RespondText("ok", 9, 2)
	orch := newTestOrchestrator(client.Client, provider)

	classifier := createOrchAgent(t, client.Client, "orch-classifier", "scripted")
	responder := createOrchAgent(t, client.Client, "orch-responder", "scripted")
	wf := createOrchWorkflow(t, client.Client, "orch-happy-path", true)
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 0, stepType: workflowstep.StepTypeAgent,
		agentID: classifier.ID, name: "classify", outputVariable: "class",
	})
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: responder.ID, name: "respond", outputVariable: "result",
		inputMapping: map[string]interface{}{"category": "${class.text}"},
	})

	outcome, err := orch.Start(ctx, wf.ID, map[string]interface{}{"query": "hello"})
	require.NoError(t, err)

	assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
	assert.Empty(t, outcome.Error)
	expected := map[string]interface{}{
		"trigger": map[string]interface{}{"query": "hello"},
		"class":   map[string]interface{}{"text": "greeting", "stop_reason": "end_turn"},
		"result":  map[string]interface{}{"text": "ok", "stop_reason": "end_turn"},
	}
	assert.Equal(t, expected, outcome.Context)

	// The second agent received the projected category, not the whole context
	requests := provider.Requests()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[1].Messages[0].Blocks[0].Text, `"category":"greeting"`)

	row, err := client.Client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, row.Status)
	assert.Equal(t, expected, row.Context)
	assert.NotNil(t, row.CompletedAt)
	require.NotNil(t, row.CurrentStepOrder)
	assert.Equal(t, 2, *row.CurrentStepOrder)
}

func TestConditionSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("true predicate skips the step and leaves its variable unset", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").
			RespondText("skip", 5, 1).
			RespondText("done", 5, 1)
		orch := newTestOrchestrator(client.Client, provider)

		first := createOrchAgent(t, client.Client, "cond-skip-first", "scripted")
		third := createOrchAgent(t, client.Client, "cond-skip-third", "scripted")
		wf := createOrchWorkflow(t, client.Client, "cond-skip", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 1, stepType: workflowstep.StepTypeAgent,
			agentID: first.ID, outputVariable: "a",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 2, stepType: workflowstep.StepTypeCondition,
			condition: "${a.text}==skip", outputVariable: "s",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 3, stepType: workflowstep.StepTypeAgent,
			agentID: third.ID, outputVariable: "b",
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		assert.Equal(t, "skip", outcome.Context["a"].(map[string]interface{})["text"])
		assert.Equal(t, "done", outcome.Context["b"].(map[string]interface{})["text"])
		assert.NotContains(t, outcome.Context, "s")
		// Only steps 1 and 3 reached the provider
		assert.Len(t, provider.Requests(), 2)
	})

	t.Run("false predicate runs the step and records its output", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").RespondText("other", 5, 1)
		orch := newTestOrchestrator(client.Client, provider)

		first := createOrchAgent(t, client.Client, "cond-run-first", "scripted")
		wf := createOrchWorkflow(t, client.Client, "cond-run", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 1, stepType: workflowstep.StepTypeAgent,
			agentID: first.ID, outputVariable: "a",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 2, stepType: workflowstep.StepTypeCondition,
			condition: "${a.text}==skip", outputVariable: "s",
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		assert.Equal(t, map[string]interface{}{"skipped": true}, outcome.Context["s"])
	})

	t.Run("unrecognized expression runs the step", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").
			RespondText("anything", 5, 1).
			RespondText("ran", 5, 1)
		orch := newTestOrchestrator(client.Client, provider)

		first := createOrchAgent(t, client.Client, "cond-garbled-first", "scripted")
		second := createOrchAgent(t, client.Client, "cond-garbled-second", "scripted")
		wf := createOrchWorkflow(t, client.Client, "cond-garbled", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 1, stepType: workflowstep.StepTypeAgent,
			agentID: first.ID, outputVariable: "a",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 2, stepType: workflowstep.StepTypeAgent,
			agentID: second.ID, outputVariable: "b",
			condition: "not a recognizable predicate",
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		assert.Equal(t, "ran", outcome.Context["b"].(map[string]interface{})["text"])
	})
}

func TestStepRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	retryConfig := map[string]interface{}{
		"maxRetries": 3, "initialDelayMs": 10, "multiplier": 2, "maxDelayMs": 1000,
	}

	t.Run("recovers from a transient failure on the second attempt", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").
			RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503")).
			RespondText("recovered", 8, 2)
		orch := newTestOrchestrator(client.Client, provider)

		worker := createOrchAgent(t, client.Client, "retry-recovers", "scripted")
		wf := createOrchWorkflow(t, client.Client, "retry-recovers", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, outputVariable: "answer", retryConfig: retryConfig,
		})

		started := time.Now()
		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		// First retry backs off initialDelayMs before attempting again
		assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)
		assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		assert.Equal(t, "recovered", outcome.Context["answer"].(map[string]interface{})["text"])
		assert.Len(t, provider.Requests(), 2)

		failed, err := client.Client.AgentExecution.Query().
			Where(
				agentexecution.ExecutionIDEQ(outcome.ExecutionID),
				agentexecution.StatusEQ(agentexecution.StatusFailed),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, failed)
	})

	t.Run("exhausting the budget fails the execution", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").
			RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503"))
		orch := newTestOrchestrator(client.Client, provider)

		worker := createOrchAgent(t, client.Client, "retry-exhausted", "scripted")
		wf := createOrchWorkflow(t, client.Client, "retry-exhausted", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, outputVariable: "answer",
			retryConfig: map[string]interface{}{"maxRetries": 2, "initialDelayMs": 1},
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, workflowexecution.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.Error, "MaxRetriesExceeded")
		assert.Contains(t, outcome.Error, "after 2 attempts")
		assert.Len(t, provider.Requests(), 2)

		row, err := client.Client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "after 2 attempts")
	})

	t.Run("deterministic failures are not retried", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").
			RespondError(engine.NewError(engine.KindInvalidArgument, "bad model"))
		orch := newTestOrchestrator(client.Client, provider)

		worker := createOrchAgent(t, client.Client, "retry-deterministic", "scripted")
		wf := createOrchWorkflow(t, client.Client, "retry-deterministic", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, outputVariable: "answer", retryConfig: retryConfig,
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, workflowexecution.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.Error, "bad model")
		assert.Len(t, provider.Requests(), 1)
	})
}

func TestApprovalPauseAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	provider := llm.NewScriptedProvider("scripted").
		RespondText("prepared", 6, 2).
		RespondText("shipped", 7, 2)
	orch := newTestOrchestrator(client.Client, provider)

	prep := createOrchAgent(t, client.Client, "approval-prep", "scripted")
	ship := createOrchAgent(t, client.Client, "approval-ship", "scripted")
	wf := createOrchWorkflow(t, client.Client, "approval-flow", true)
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: prep.ID, outputVariable: "prep",
	})
	gate := createStep(t, client.Client, wf.ID, stepSpec{
		order: 2, stepType: workflowstep.StepTypeApproval,
		name: "manager-gate", outputVariable: "approval",
		inputMapping: map[string]interface{}{"requiredRole": "MANAGER", "timeoutMinutes": 60},
	})
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 3, stepType: workflowstep.StepTypeAgent,
		agentID: ship.ID, outputVariable: "final",
	})

	outcome, err := orch.Start(ctx, wf.ID, map[string]interface{}{"req": "laptop"})
	require.NoError(t, err)

	require.Equal(t, workflowexecution.StatusPaused, outcome.Status)
	assert.Equal(t, map[string]interface{}{
		"status":  "PENDING",
		"message": "Waiting for approval",
	}, outcome.Context["approval"])

	// Exactly one pending approval owned by the gate step
	pending, err := client.Client.ApprovalRequest.Query().
		Where(approvalrequest.ExecutionIDEQ(outcome.ExecutionID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	request := pending[0]
	assert.Equal(t, approvalrequest.StatusPending, request.Status)
	assert.Equal(t, gate.ID, request.StepID)
	require.NotNil(t, request.RequiredRole)
	assert.Equal(t, "MANAGER", *request.RequiredRole)
	require.NotNil(t, request.TimeoutAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *request.TimeoutAt, time.Minute)

	paused, err := client.Client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPaused, paused.Status)
	require.NotNil(t, paused.CurrentStepOrder)
	assert.Equal(t, 3, *paused.CurrentStepOrder)

	// Decide, merge the outcome, requeue
	approvals := services.NewApprovalService(client.Client)
	_, err = approvals.DecideApproval(ctx, request.ID, true, models.ApprovalDecisionRequest{
		Approver: "alice", Comments: "ok",
	})
	require.NoError(t, err)
	require.NoError(t, orch.Resume(ctx, outcome.ExecutionID, request.ID))

	requeued, err := client.Client.WorkflowExecution.Get(ctx, outcome.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPending, requeued.Status)
	assert.Equal(t, map[string]interface{}{
		"approved":   true,
		"approvedBy": "alice",
		"comments":   "ok",
	}, requeued.Context["approval"])

	// A worker claims the row and re-enters the loop at the cursor
	executions := services.NewExecutionService(client.Client)
	claimed, err := executions.ClaimNextPendingExecution(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, outcome.ExecutionID, claimed.ID)
	assert.Equal(t, workflowexecution.StatusRunning, claimed.Status)

	final, err := orch.Continue(ctx, claimed.ID)
	require.NoError(t, err)

	assert.Equal(t, workflowexecution.StatusCompleted, final.Status)
	assert.Equal(t, "shipped", final.Context["final"].(map[string]interface{})["text"])
	// The ship step ran exactly once
	assert.Len(t, provider.Requests(), 2)
	// Resume preserves everything committed before the pause
	for key := range outcome.Context {
		assert.Contains(t, final.Context, key)
	}
}

func TestParallelGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("runs the group concurrently and merges outputs", func(t *testing.T) {
		left := llm.NewScriptedProvider("prov-left").RespondText("alpha", 6, 2)
		right := llm.NewScriptedProvider("prov-right").RespondText("beta", 7, 3)
		main := llm.NewScriptedProvider("scripted").RespondText("summary", 5, 1)
		orch := newTestOrchestrator(client.Client, left, right, main)

		agentLeft := createOrchAgent(t, client.Client, "par-left", "prov-left")
		agentRight := createOrchAgent(t, client.Client, "par-right", "prov-right")
		agentSum := createOrchAgent(t, client.Client, "par-sum", "scripted")
		wf := createOrchWorkflow(t, client.Client, "par-merge", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeParallel,
			name: "fan", outputVariable: "fan",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 1, stepType: workflowstep.StepTypeAgent,
			agentID: agentLeft.ID, name: "gather-alpha", outputVariable: "x", dependsOn: []int{0},
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 2, stepType: workflowstep.StepTypeAgent,
			agentID: agentRight.ID, name: "gather-beta", outputVariable: "y", dependsOn: []int{0},
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 3, stepType: workflowstep.StepTypeAgent,
			agentID: agentSum.ID, name: "summarize", outputVariable: "summary",
			dependsOn:    []int{1, 2},
			inputMapping: map[string]interface{}{"left": "${x.text}", "right": "${y.text}"},
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		require.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		alphaOut := map[string]interface{}{"text": "alpha", "stop_reason": "end_turn"}
		betaOut := map[string]interface{}{"text": "beta", "stop_reason": "end_turn"}
		assert.Equal(t, alphaOut, outcome.Context["x"])
		assert.Equal(t, betaOut, outcome.Context["y"])
		assert.Equal(t, map[string]interface{}{"x": alphaOut, "y": betaOut}, outcome.Context["fan"])

		// Each sub-step ran once; the summarizer saw both projected outputs
		assert.Len(t, left.Requests(), 1)
		assert.Len(t, right.Requests(), 1)
		sumRequests := main.Requests()
		require.Len(t, sumRequests, 1)
		assert.Contains(t, sumRequests[0].Messages[0].Blocks[0].Text, `"left":"alpha"`)
		assert.Contains(t, sumRequests[0].Messages[0].Blocks[0].Text, `"right":"beta"`)
	})

	t.Run("a sub-step failure is folded in without aborting the group", func(t *testing.T) {
		left := llm.NewScriptedProvider("prov-ok").RespondText("alpha", 6, 2)
		right := llm.NewScriptedProvider("prov-broken").
			RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503"))
		orch := newTestOrchestrator(client.Client, left, right)

		agentLeft := createOrchAgent(t, client.Client, "parfail-left", "prov-ok")
		agentRight := createOrchAgent(t, client.Client, "parfail-right", "prov-broken")
		wf := createOrchWorkflow(t, client.Client, "par-subfailure", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeParallel,
			name: "fan", outputVariable: "fan",
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 1, stepType: workflowstep.StepTypeAgent,
			agentID: agentLeft.ID, name: "gather-alpha", outputVariable: "x", dependsOn: []int{0},
		})
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 2, stepType: workflowstep.StepTypeAgent,
			agentID: agentRight.ID, name: "gather-beta", outputVariable: "y", dependsOn: []int{0},
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)

		require.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
		assert.Contains(t, outcome.Context, "x")
		assert.NotContains(t, outcome.Context, "y")

		fan := outcome.Context["fan"].(map[string]interface{})
		failure := fan["y"].(map[string]interface{})
		assert.Equal(t, "gather-beta", failure["stepName"])
		assert.Contains(t, failure["error"], "upstream 503")
	})
}

func TestExecutionGuards(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("unknown workflow", func(t *testing.T) {
		orch := newTestOrchestrator(client.Client)
		_, err := orch.Start(ctx, 999999, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("inactive workflow rejects new executions", func(t *testing.T) {
		orch := newTestOrchestrator(client.Client)
		wf := createOrchWorkflow(t, client.Client, "guard-inactive", false)

		_, err := orch.Start(ctx, wf.ID, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindInactive))

		_, err = orch.Enqueue(ctx, wf.ID, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindInactive))

		count, err := client.Client.WorkflowExecution.Query().
			Where(workflowexecution.WorkflowIDEQ(wf.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("agent step without an agent fails the execution", func(t *testing.T) {
		orch := newTestOrchestrator(client.Client)
		wf := createOrchWorkflow(t, client.Client, "guard-no-agent", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent, name: "orphan",
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.Error, "no agent assigned")
	})

	t.Run("unmet dependency fails the execution", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted")
		orch := newTestOrchestrator(client.Client, provider)
		worker := createOrchAgent(t, client.Client, "guard-dep-agent", "scripted")
		wf := createOrchWorkflow(t, client.Client, "guard-unmet-dep", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, dependsOn: []int{7},
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.Error, "requires step order 7")
		assert.Empty(t, provider.Requests())
	})

	t.Run("resume requires a paused execution", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").RespondText("done", 5, 1)
		orch := newTestOrchestrator(client.Client, provider)
		worker := createOrchAgent(t, client.Client, "guard-resume-agent", "scripted")
		wf := createOrchWorkflow(t, client.Client, "guard-resume", true)
		step := createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, outputVariable: "out",
		})

		outcome, err := orch.Start(ctx, wf.ID, nil)
		require.NoError(t, err)
		require.Equal(t, workflowexecution.StatusCompleted, outcome.Status)

		request, err := client.Client.ApprovalRequest.Create().
			SetExecutionID(outcome.ExecutionID).
			SetStepID(step.ID).
			Save(ctx)
		require.NoError(t, err)

		err = orch.Resume(ctx, outcome.ExecutionID, request.ID)
		assert.ErrorIs(t, err, services.ErrInvalidState)

		// The approval must belong to the execution being resumed
		err = orch.Resume(ctx, outcome.ExecutionID+1000, request.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
	})

	t.Run("resume with an unknown approval", func(t *testing.T) {
		orch := newTestOrchestrator(client.Client)
		err := orch.Resume(ctx, 123456, 999999)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("continue requires a claimed execution", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted").RespondText("done", 5, 1)
		orch := newTestOrchestrator(client.Client, provider)
		worker := createOrchAgent(t, client.Client, "guard-continue-agent", "scripted")
		wf := createOrchWorkflow(t, client.Client, "guard-continue", true)
		createStep(t, client.Client, wf.ID, stepSpec{
			order: 0, stepType: workflowstep.StepTypeAgent,
			agentID: worker.ID, outputVariable: "out",
		})

		exec, err := orch.Enqueue(ctx, wf.ID, nil)
		require.NoError(t, err)

		_, err = orch.Continue(ctx, exec.ID)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})
}

func TestEnqueueAndContinue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	provider := llm.NewScriptedProvider("scripted").RespondText("done", 5, 1)
	orch := newTestOrchestrator(client.Client, provider)

	worker := createOrchAgent(t, client.Client, "queue-worker", "scripted")
	wf := createOrchWorkflow(t, client.Client, "queue-flow", true)
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 0, stepType: workflowstep.StepTypeAgent,
		agentID: worker.ID, outputVariable: "out",
	})

	exec, err := orch.Enqueue(ctx, wf.ID, map[string]interface{}{"source": "api"})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPending, exec.Status)
	assert.Nil(t, exec.StartedAt)
	assert.Equal(t, map[string]interface{}{
		"trigger": map[string]interface{}{"source": "api"},
	}, exec.Context)

	executions := services.NewExecutionService(client.Client)
	claimed, err := executions.ClaimNextPendingExecution(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, exec.ID, claimed.ID)
	assert.NotNil(t, claimed.StartedAt)

	outcome, err := orch.Continue(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, outcome.Status)
	assert.Equal(t, "done", outcome.Context["out"].(map[string]interface{})["text"])
}

// blockingProvider parks every completion until its context expires
type blockingProvider struct {
	name string
}

func (p *blockingProvider) Name() string { return p.name }

func (p *blockingProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, engine.WrapError(engine.KindLLMFailure, "LLM request failed", ctx.Err())
}

func TestStepTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	orch := newTestOrchestrator(client.Client, &blockingProvider{name: "blocking"})
	worker := createOrchAgent(t, client.Client, "timeout-worker", "blocking")
	wf := createOrchWorkflow(t, client.Client, "timeout-flow", true)
	createStep(t, client.Client, wf.ID, stepSpec{
		order: 0, stepType: workflowstep.StepTypeAgent,
		agentID: worker.ID, name: "slow", outputVariable: "out", timeoutSeconds: 1,
	})

	started := time.Now()
	outcome, err := orch.Start(ctx, wf.ID, nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(started), time.Second)
	assert.Equal(t, workflowexecution.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Error, "StepTimeout")
	assert.Contains(t, outcome.Error, `step "slow" exceeded its 1s timeout`)
}
