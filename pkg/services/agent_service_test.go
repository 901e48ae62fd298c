package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestAgentService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("creates agent with defaults", func(t *testing.T) {
		created, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:         "summarizer",
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-5",
			SystemPrompt: "You summarize things.",
		})
		require.NoError(t, err)
		assert.Equal(t, "summarizer", created.Name)
		assert.Equal(t, "anthropic", created.Provider)
		assert.Equal(t, 0.7, created.Temperature)
		assert.Equal(t, 4096, created.MaxTokens)
		assert.True(t, created.Active)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateAgentRequest
		}{
			{
				name: "missing name",
				req:  models.CreateAgentRequest{Provider: "anthropic", Model: "m"},
			},
			{
				name: "missing provider",
				req:  models.CreateAgentRequest{Name: "a", Model: "m"},
			},
			{
				name: "missing model",
				req:  models.CreateAgentRequest{Name: "a", Provider: "anthropic"},
			},
			{
				name: "temperature out of range",
				req: models.CreateAgentRequest{
					Name: "a", Provider: "anthropic", Model: "m",
					Temperature: floatPtr(1.5),
				},
			},
			{
				name: "non-positive max_tokens",
				req: models.CreateAgentRequest{
					Name: "a", Provider: "anthropic", Model: "m",
					MaxTokens: intPtr(0),
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateAgent(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		req := models.CreateAgentRequest{
			Name:     "dup-agent",
			Provider: "anthropic",
			Model:    "claude-sonnet-4-5",
		}
		_, err := service.CreateAgent(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateAgent(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestAgentService_GetAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("gets agent by id and by name", func(t *testing.T) {
		created := createTestAgent(t, client.Client, "lookup-agent")

		byID, err := service.GetAgent(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byID.ID)

		byName, err := service.GetAgentByName(ctx, "lookup-agent")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)
	})

	t.Run("loads tool edges on request", func(t *testing.T) {
		agent := createTestAgent(t, client.Client, "tooled-agent")
		tool := createTestTool(t, client.Client, "calculator")
		_, err := service.AssignTool(ctx, agent.ID, models.AssignToolRequest{ToolID: tool.ID})
		require.NoError(t, err)

		found, err := service.GetAgent(ctx, agent.ID, true)
		require.NoError(t, err)
		require.Len(t, found.Edges.AgentTools, 1)
		require.NotNil(t, found.Edges.AgentTools[0].Edges.Tool)
		assert.Equal(t, "calculator", found.Edges.AgentTools[0].Edges.Tool.Name)
	})

	t.Run("returns ErrNotFound for missing agent", func(t *testing.T) {
		_, err := service.GetAgent(ctx, 999999, false)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.GetAgentByName(ctx, "no-such-agent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	createTestAgent(t, client.Client, "alpha")
	inactive := createTestAgent(t, client.Client, "beta")
	_, err := service.SetAgentActive(ctx, inactive.ID, false)
	require.NoError(t, err)

	all, err := service.ListAgents(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := service.ListAgents(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "alpha", active[0].Name)
}

func TestAgentService_UpdateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		created := createTestAgent(t, client.Client, "updatable")

		updated, err := service.UpdateAgent(ctx, created.ID, models.UpdateAgentRequest{
			Model:       strPtr("claude-opus-4-1"),
			Temperature: floatPtr(0.2),
		})
		require.NoError(t, err)
		assert.Equal(t, "claude-opus-4-1", updated.Model)
		assert.Equal(t, 0.2, updated.Temperature)
		// Untouched fields survive
		assert.Equal(t, "updatable", updated.Name)
		assert.Equal(t, "anthropic", updated.Provider)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		created := createTestAgent(t, client.Client, "strict")

		_, err := service.UpdateAgent(ctx, created.ID, models.UpdateAgentRequest{Name: strPtr("")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing agent", func(t *testing.T) {
		_, err := service.UpdateAgent(ctx, 999999, models.UpdateAgentRequest{Model: strPtr("m")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("deletes unreferenced agent", func(t *testing.T) {
		created := createTestAgent(t, client.Client, "deletable")

		err := service.DeleteAgent(ctx, created.ID)
		require.NoError(t, err)

		_, err = service.GetAgent(ctx, created.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("refuses while a workflow step references the agent", func(t *testing.T) {
		agent := createTestAgent(t, client.Client, "referenced")
		wf := createTestWorkflow(t, client.Client, "referencing-wf")
		createTestStep(t, client.Client, wf.ID, 0, "agent", intPtr(agent.ID))

		err := service.DeleteAgent(ctx, agent.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("returns ErrNotFound for missing agent", func(t *testing.T) {
		err := service.DeleteAgent(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_ToolAssignments(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "assignee")
	tool := createTestTool(t, client.Client, "search")

	t.Run("assigns and lists tools", func(t *testing.T) {
		assigned, err := service.AssignTool(ctx, agent.ID, models.AssignToolRequest{
			ToolID: tool.ID,
			Config: map[string]interface{}{"max_results": float64(5)},
		})
		require.NoError(t, err)
		assert.Equal(t, agent.ID, assigned.AgentID)
		assert.Equal(t, tool.ID, assigned.ToolID)

		assignments, err := service.ListAgentTools(ctx, agent.ID)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		require.NotNil(t, assignments[0].Edges.Tool)
		assert.Equal(t, "search", assignments[0].Edges.Tool.Name)
		assert.Equal(t, float64(5), assignments[0].Config["max_results"])
	})

	t.Run("rejects duplicate assignment", func(t *testing.T) {
		_, err := service.AssignTool(ctx, agent.ID, models.AssignToolRequest{ToolID: tool.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("returns ErrNotFound for missing sides", func(t *testing.T) {
		_, err := service.AssignTool(ctx, 999999, models.AssignToolRequest{ToolID: tool.ID})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.AssignTool(ctx, agent.ID, models.AssignToolRequest{ToolID: 999999})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("removes assignment once", func(t *testing.T) {
		err := service.RemoveTool(ctx, agent.ID, tool.ID)
		require.NoError(t, err)

		err = service.RemoveTool(ctx, agent.ID, tool.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func floatPtr(v float64) *float64 {
	return &v
}
