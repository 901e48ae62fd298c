package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
	testdb "github.com/batonworks/baton/test/database"
)

func newTestRunner(client *ent.Client, provider *llm.ScriptedProvider, dispatcher *tools.Dispatcher, hasToolServer bool) *Runner {
	registry := llm.NewRegistry()
	registry.Register(provider)
	if dispatcher == nil {
		dispatcher = tools.NewDispatcher(nil, nil)
	}
	return NewRunner(
		services.NewAgentService(client),
		services.NewAgentExecutionService(client),
		llm.NewDriver(registry),
		dispatcher,
		hasToolServer,
	)
}

func createRunnerAgent(t *testing.T, client *ent.Client, name string, active bool) *ent.Agent {
	t.Helper()
	created, err := client.Agent.Create().
		SetName(name).
		SetProvider("scripted").
		SetModel("claude-sonnet-4-5").
		SetSystemPrompt("You investigate incidents.").
		SetActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func linkTool(t *testing.T, client *ent.Client, agentID int, name string, toolType tool.ToolType, active bool) *ent.Tool {
	t.Helper()
	ctx := context.Background()
	created, err := client.Tool.Create().
		SetName(name).
		SetToolType(toolType).
		SetDescription("test tool " + name).
		SetInputSchema(map[string]interface{}{"type": "object"}).
		SetHandler(name).
		SetActive(active).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.AgentTool.Create().
		SetAgentID(agentID).
		SetToolID(created.ID).
		Save(ctx)
	require.NoError(t, err)
	return created
}

func TestRunnerRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("runs agent and records execution", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-records", true)
		provider := llm.NewScriptedProvider("scripted").RespondText("incident resolved", 40, 15)
		runner := newTestRunner(client.Client, provider, nil, false)

		result, err := runner.Run(ctx, testAgent.ID, map[string]interface{}{"alert": "disk full"}, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "incident resolved", result.Output["text"])
		assert.Equal(t, llm.StopEndTurn, result.Output["stop_reason"])
		assert.Equal(t, 40, result.InputTokens)
		assert.Equal(t, 15, result.OutputTokens)

		// Input rendered as compact JSON in the first user message
		requests := provider.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, `{"alert":"disk full"}`, requests[0].Messages[0].Blocks[0].Text)
		assert.Equal(t, "You investigate incidents.", requests[0].System)

		// AgentExecution finalized with tokens and duration
		record, err := client.AgentExecution.Query().
			Where(agentexecution.AgentID(testAgent.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusCompleted, record.Status)
		assert.Equal(t, 40, *record.InputTokens)
		assert.Equal(t, 15, *record.OutputTokens)
		assert.Equal(t, 55, *record.TokensUsed)
		assert.NotNil(t, record.DurationMs)
		assert.Equal(t, "incident resolved", record.Output["text"])
	})

	t.Run("string input passes through", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-stringinput", true)
		provider := llm.NewScriptedProvider("scripted").RespondText("ok", 1, 1)
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, testAgent.ID, "just a sentence", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "just a sentence", provider.Requests()[0].Messages[0].Blocks[0].Text)
	})

	t.Run("advertises active tools and skips inactive ones", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-activetools", true)
		linkTool(t, client.Client, testAgent.ID, "search_logs", tool.ToolTypeInProcess, true)
		linkTool(t, client.Client, testAgent.ID, "page_oncall", tool.ToolTypeInProcess, false)

		provider := llm.NewScriptedProvider("scripted").RespondText("ok", 1, 1)
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, testAgent.ID, "input", nil, nil)
		require.NoError(t, err)

		catalog := provider.Requests()[0].Tools
		require.Len(t, catalog, 1)
		assert.Equal(t, "search_logs", catalog[0].Name)
	})

	t.Run("advertises mcp_call for external tools", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-mcpcall", true)
		linkTool(t, client.Client, testAgent.ID, "search_kb", tool.ToolTypeExternal, true)

		provider := llm.NewScriptedProvider("scripted").RespondText("ok", 1, 1)
		runner := newTestRunner(client.Client, provider, nil, true)

		_, err := runner.Run(ctx, testAgent.ID, "input", nil, nil)
		require.NoError(t, err)

		catalog := provider.Requests()[0].Tools
		require.Len(t, catalog, 2)
		assert.Equal(t, "search_kb", catalog[0].Name)
		assert.Equal(t, tools.ReservedMCPCall, catalog[1].Name)
	})

	t.Run("no mcp_call without a tool server", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-noserver", true)
		linkTool(t, client.Client, testAgent.ID, "remote_only", tool.ToolTypeExternal, true)

		provider := llm.NewScriptedProvider("scripted").RespondText("ok", 1, 1)
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, testAgent.ID, "input", nil, nil)
		require.NoError(t, err)

		catalog := provider.Requests()[0].Tools
		require.Len(t, catalog, 1)
		assert.Equal(t, "remote_only", catalog[0].Name)
	})

	t.Run("dispatches tool calls through the dispatcher", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-dispatches", true)
		linkTool(t, client.Client, testAgent.ID, "lookup_runbook", tool.ToolTypeInProcess, true)

		provider := llm.NewScriptedProvider("scripted").
			Respond(&llm.Response{
				Blocks: []llm.ContentBlock{
					{Type: llm.BlockToolUse, ID: "tu_1", Name: "lookup_runbook", Input: map[string]interface{}{"id": "rb-7"}},
				},
				StopReason: llm.StopToolUse,
				Usage:      llm.Usage{InputTokens: 5, OutputTokens: 2},
			}).
			RespondText("followed the runbook", 9, 4)

		dispatcher := tools.NewDispatcher(nil, nil)
		dispatcher.Register("lookup_runbook", func(_ context.Context, input map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"runbook": input["id"], "steps": 3}, nil
		})
		runner := newTestRunner(client.Client, provider, dispatcher, false)

		result, err := runner.Run(ctx, testAgent.ID, "disk alert", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "followed the runbook", result.Output["text"])
		assert.Equal(t, 14, result.InputTokens)
		assert.Equal(t, 6, result.OutputTokens)

		// Second request carries the handler result back to the model
		second := provider.Requests()[1].Messages
		require.Len(t, second, 3)
		assert.Contains(t, second[2].Blocks[0].Content, "rb-7")
	})

	t.Run("inactive agent", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-inactive", false)
		provider := llm.NewScriptedProvider("scripted").RespondText("never", 0, 0)
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, testAgent.ID, "input", nil, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindInactive))
		assert.Empty(t, provider.Requests())
	})

	t.Run("unknown agent", func(t *testing.T) {
		provider := llm.NewScriptedProvider("scripted")
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, 99999, "input", nil, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindNotFound))
	})

	t.Run("driver failure finalizes the execution as failed", func(t *testing.T) {
		testAgent := createRunnerAgent(t, client.Client, "agent-driverfail", true)
		provider := llm.NewScriptedProvider("scripted").
			RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503"))
		runner := newTestRunner(client.Client, provider, nil, false)

		_, err := runner.Run(ctx, testAgent.ID, "input", nil, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindLLMFailure))

		record, err := client.AgentExecution.Query().
			Where(agentexecution.AgentID(testAgent.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusFailed, record.Status)
		assert.Contains(t, *record.ErrorMessage, "upstream 503")
	})
}
