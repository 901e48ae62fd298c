// Package e2e runs full-stack scenarios: real PostgreSQL, the persisted
// step graph, the worker pool, the approval coordinator, and the cron
// scheduler, with only the LLM provider scripted.
package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/agent"
	"github.com/batonworks/baton/pkg/approval"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/orchestrator"
	"github.com/batonworks/baton/pkg/queue"
	"github.com/batonworks/baton/pkg/scheduler"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
	testdb "github.com/batonworks/baton/test/database"
)

// testApp wires the whole engine the way cmd/baton does, minus the HTTP
// server, against an isolated test schema
type testApp struct {
	client   *ent.Client
	provider *llm.ScriptedProvider

	schedules   *services.ScheduleService
	orch        *orchestrator.Orchestrator
	pool        *queue.WorkerPool
	coordinator *approval.Coordinator
	scheduler   *scheduler.Scheduler
}

// newTestApp builds the stack and starts the worker pool with a short poll
// interval so scenarios settle quickly. The pool is stopped on cleanup
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	client := testdb.NewTestClient(t)
	provider := llm.NewScriptedProvider("scripted")

	registry := llm.NewRegistry()
	registry.Register(provider)

	agents := services.NewAgentService(client.Client)
	toolsSvc := services.NewToolService(client.Client)
	workflows := services.NewWorkflowService(client.Client)
	executions := services.NewExecutionService(client.Client)
	agentExecutions := services.NewAgentExecutionService(client.Client)
	approvals := services.NewApprovalService(client.Client)
	schedules := services.NewScheduleService(client.Client)

	runner := agent.NewRunner(agents, agentExecutions, llm.NewDriver(registry), tools.NewDispatcher(nil, toolsSvc), false)
	orch := orchestrator.New(workflows, executions, approvals, runner, time.Minute)

	pool := queue.NewWorkerPool(client.Client, orch, queue.Config{
		Workers:      2,
		PollInterval: 25 * time.Millisecond,
	})
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	coordinator := approval.NewCoordinator(approvals, executions, orch, pool)

	return &testApp{
		client:      client.Client,
		provider:    provider,
		schedules:   schedules,
		orch:        orch,
		pool:        pool,
		coordinator: coordinator,
		scheduler:   scheduler.New(schedules, orch, pool),
	}
}

func (app *testApp) createAgent(t *testing.T, name string) *ent.Agent {
	t.Helper()
	created, err := app.client.Agent.Create().
		SetName(name).
		SetProvider("scripted").
		SetModel("claude-sonnet-4-5").
		SetSystemPrompt("You execute workflow steps.").
		SetActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func (app *testApp) createWorkflow(t *testing.T, name string) *ent.Workflow {
	t.Helper()
	created, err := app.client.Workflow.Create().
		SetName(name).
		SetActive(true).
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
	retryConfig    map[string]interface{}
}

func (app *testApp) createStep(t *testing.T, workflowID int, spec stepSpec) *ent.WorkflowStep {
	t.Helper()
	if spec.name == "" {
		spec.name = fmt.Sprintf("step-%d", spec.order)
	}
	create := app.client.WorkflowStep.Create().
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
	if spec.retryConfig != nil {
		create = create.SetRetryConfig(spec.retryConfig)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

// waitForStatus blocks until the execution reaches the given status and
// returns the final row
func (app *testApp) waitForStatus(t *testing.T, executionID int, status workflowexecution.Status) *ent.WorkflowExecution {
	t.Helper()
	ctx := context.Background()

	var row *ent.WorkflowExecution
	require.Eventually(t, func() bool {
		var err error
		row, err = app.client.WorkflowExecution.Get(ctx, executionID)
		if err != nil {
			return false
		}
		return row.Status == status
	}, 10*time.Second, 20*time.Millisecond,
		"execution %d never reached status %s", executionID, status)
	return row
}
