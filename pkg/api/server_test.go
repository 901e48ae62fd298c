package api

import (
	"context"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	agentpkg "github.com/batonworks/baton/pkg/agent"
	"github.com/batonworks/baton/pkg/approval"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/orchestrator"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
	testdb "github.com/batonworks/baton/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer bundles the router with the pieces tests script directly
type testServer struct {
	router   *gin.Engine
	client   *ent.Client
	provider *llm.ScriptedProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	agents := services.NewAgentService(dbClient.Client)
	toolsSvc := services.NewToolService(dbClient.Client)
	workflows := services.NewWorkflowService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client)
	agentExecutions := services.NewAgentExecutionService(dbClient.Client)
	approvals := services.NewApprovalService(dbClient.Client)
	schedules := services.NewScheduleService(dbClient.Client)
	knowledge := services.NewKnowledgeService(dbClient.Client)

	provider := llm.NewScriptedProvider("anthropic")
	registry := llm.NewRegistry()
	registry.Register(provider)
	runner := agentpkg.NewRunner(agents, agentExecutions, llm.NewDriver(registry), tools.NewDispatcher(nil, toolsSvc), false)
	orch := orchestrator.New(workflows, executions, approvals, runner, time.Minute)
	coordinator := approval.NewCoordinator(approvals, executions, orch, nil)

	server := NewServer(Deps{
		DB:              dbClient,
		Agents:          agents,
		Tools:           toolsSvc,
		Workflows:       workflows,
		Executions:      executions,
		AgentExecutions: agentExecutions,
		Approvals:       approvals,
		Schedules:       schedules,
		Knowledge:       knowledge,
		Orchestrator:    orch,
		Coordinator:     coordinator,
	})

	return &testServer{
		router:   server.Router(),
		client:   dbClient.Client,
		provider: provider,
	}
}

// do performs one request and decodes the envelope
func (ts *testServer) do(t *testing.T, method, path string, body interface{}) (int, Envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return recorder.Code, envelope
}

// dataAs re-decodes the envelope data into out
func dataAs(t *testing.T, envelope Envelope, out interface{}) {
	t.Helper()
	encoded, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(encoded, out))
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}

func TestAgentEndpoints(t *testing.T) {
	ts := newTestServer(t)

	create := map[string]interface{}{
		"name":          "classifier",
		"provider":      "anthropic",
		"model":         "claude-sonnet-4-5",
		"system_prompt": "You classify storefront queries.",
		"temperature":   0.2,
		"max_tokens":    512,
	}

	status, envelope := ts.do(t, http.MethodPost, "/api/v1/agents", create)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, envelope.Success)

	var created struct {
		ID           int     `json:"id"`
		Name         string  `json:"name"`
		Provider     string  `json:"provider"`
		Model        string  `json:"model"`
		SystemPrompt string  `json:"system_prompt"`
		Temperature  float64 `json:"temperature"`
		MaxTokens    int     `json:"max_tokens"`
		Active       bool    `json:"active"`
	}
	dataAs(t, envelope, &created)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active)

	t.Run("fetch returns the administered fields unchanged", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodGet, fmt.Sprintf("/api/v1/agents/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, status)

		var fetched map[string]interface{}
		dataAs(t, envelope, &fetched)
		assert.Equal(t, "classifier", fetched["name"])
		assert.Equal(t, "anthropic", fetched["provider"])
		assert.Equal(t, "claude-sonnet-4-5", fetched["model"])
		assert.Equal(t, "You classify storefront queries.", fetched["system_prompt"])
		assert.Equal(t, 0.2, fetched["temperature"])
		assert.Equal(t, float64(512), fetched["max_tokens"])
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodPost, "/api/v1/agents", create)
		assert.Equal(t, http.StatusConflict, status)
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "AlreadyExists", envelope.Error.Code)
	})

	t.Run("missing agent is 404", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodGet, "/api/v1/agents/99999", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "NotFound", envelope.Error.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodGet, "/api/v1/agents/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("deactivate flips the active flag", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/agents/%d/deactivate", created.ID), nil)
		require.Equal(t, http.StatusOK, status)

		var updated struct {
			Active bool `json:"active"`
		}
		dataAs(t, envelope, &updated)
		assert.False(t, updated.Active)
	})
}

// buildAgentWorkflow creates an agent and a one-step workflow through the
// HTTP surface and returns their IDs
func buildAgentWorkflow(t *testing.T, ts *testServer, name string) (agentID, workflowID int) {
	t.Helper()

	_, envelope := ts.do(t, http.MethodPost, "/api/v1/agents", map[string]interface{}{
		"name":     name + "-agent",
		"provider": "anthropic",
		"model":    "claude-sonnet-4-5",
	})
	var agentRow struct {
		ID int `json:"id"`
	}
	dataAs(t, envelope, &agentRow)

	status, envelope := ts.do(t, http.MethodPost, "/api/v1/workflows", map[string]interface{}{
		"name":         name,
		"trigger_type": "manual",
	})
	require.Equal(t, http.StatusCreated, status)
	var wfRow struct {
		ID int `json:"id"`
	}
	dataAs(t, envelope, &wfRow)

	status, _ = ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/steps", wfRow.ID), map[string]interface{}{
		"step_order":      0,
		"step_type":       "agent",
		"agent_id":        agentRow.ID,
		"name":            "answer",
		"output_variable": "answer",
	})
	require.Equal(t, http.StatusCreated, status)

	return agentRow.ID, wfRow.ID
}

func TestExecuteWorkflowSync(t *testing.T) {
	ts := newTestServer(t)
	ts.provider.RespondText("hello there", 10, 5)

	_, workflowID := buildAgentWorkflow(t, ts, "greet")

	status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/execute", workflowID),
		map[string]interface{}{"trigger_data": map[string]interface{}{"query": "hi"}})
	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	var outcome ExecutionOutcome
	dataAs(t, envelope, &outcome)
	assert.Equal(t, "completed", outcome.Status)
	assert.Equal(t, map[string]interface{}{"query": "hi"}, outcome.Context["trigger"])

	answer, ok := outcome.Context["answer"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello there", answer["text"])
}

func TestExecuteInactiveWorkflow(t *testing.T) {
	ts := newTestServer(t)

	_, workflowID := buildAgentWorkflow(t, ts, "dormant")
	status, _ := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/deactivate", workflowID), nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/execute", workflowID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Inactive", envelope.Error.Code)
}

func TestApprovalEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.provider.RespondText("draft ready", 5, 5)

	agentID, workflowID := buildAgentWorkflow(t, ts, "review")
	_ = agentID

	status, _ := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/steps", workflowID), map[string]interface{}{
		"step_order":      1,
		"step_type":       "approval",
		"name":            "manager sign-off",
		"output_variable": "signoff",
		"input_mapping": map[string]interface{}{
			"requiredRole":   "MANAGER",
			"timeoutMinutes": 60,
		},
	})
	require.Equal(t, http.StatusCreated, status)

	status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/workflows/%d/execute", workflowID), nil)
	require.Equal(t, http.StatusOK, status)

	var outcome ExecutionOutcome
	dataAs(t, envelope, &outcome)
	require.Equal(t, "paused", outcome.Status)

	status, envelope = ts.do(t, http.MethodGet, "/api/v1/approvals/pending?role=MANAGER", nil)
	require.Equal(t, http.StatusOK, status)
	var pending []struct {
		ID int `json:"id"`
	}
	dataAs(t, envelope, &pending)
	require.Len(t, pending, 1)

	status, envelope = ts.do(t, http.MethodGet, "/api/v1/approvals/pending/count", nil)
	require.Equal(t, http.StatusOK, status)
	var count struct {
		Count int `json:"count"`
	}
	dataAs(t, envelope, &count)
	assert.Equal(t, 1, count.Count)

	t.Run("approve requeues the execution", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/approvals/%d/approve", pending[0].ID),
			map[string]interface{}{"approver": "alice", "comments": "ok"})
		require.Equal(t, http.StatusOK, status)
		require.True(t, envelope.Success)

		exec, err := ts.client.WorkflowExecution.Get(context.Background(), outcome.ExecutionID)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusPending, exec.Status)
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/approvals/%d/reject", pending[0].ID),
			map[string]interface{}{"approver": "bob", "reason": "late"})
		assert.Equal(t, http.StatusConflict, status)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "InvalidState", envelope.Error.Code)
	})
}

func TestScheduleEndpoints(t *testing.T) {
	ts := newTestServer(t)

	_, workflowID := buildAgentWorkflow(t, ts, "nightly")

	status, envelope := ts.do(t, http.MethodPost, "/api/v1/schedules", map[string]interface{}{
		"workflow_id":     workflowID,
		"cron_expression": "0 3 * * *",
		"trigger_data":    map[string]interface{}{"source": "cron"},
	})
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID        int       `json:"id"`
		Enabled   bool      `json:"enabled"`
		NextRunAt time.Time `json:"next_run_at"`
	}
	dataAs(t, envelope, &created)
	assert.True(t, created.Enabled)
	assert.True(t, created.NextRunAt.After(time.Now()))

	t.Run("malformed cron is 400", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/api/v1/schedules", map[string]interface{}{
			"workflow_id":     workflowID,
			"cron_expression": "every tuesday",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("cancel disables the schedule", func(t *testing.T) {
		status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/schedules/%d/cancel", created.ID), nil)
		require.Equal(t, http.StatusOK, status)

		var updated struct {
			Enabled bool `json:"enabled"`
		}
		dataAs(t, envelope, &updated)
		assert.False(t, updated.Enabled)
	})
}
