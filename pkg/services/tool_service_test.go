package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestToolService_CreateTool(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	t.Run("creates tool with schema and handler", func(t *testing.T) {
		created, err := service.CreateTool(ctx, models.CreateToolRequest{
			Name:        "fetch_metrics",
			ToolType:    "in_process",
			Description: "Fetches service metrics",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"service": map[string]interface{}{"type": "string"},
				},
			},
			Handler: "fetch_metrics",
		})
		require.NoError(t, err)
		assert.Equal(t, "fetch_metrics", created.Name)
		assert.Equal(t, "object", created.InputSchema["type"])
		assert.True(t, created.Active)
	})

	t.Run("defaults tool_type to in_process", func(t *testing.T) {
		created, err := service.CreateTool(ctx, models.CreateToolRequest{Name: "plain"})
		require.NoError(t, err)
		assert.Equal(t, "in_process", string(created.ToolType))
	})

	t.Run("rejects unknown tool_type", func(t *testing.T) {
		_, err := service.CreateTool(ctx, models.CreateToolRequest{
			Name:     "weird",
			ToolType: "telepathic",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := service.CreateTool(ctx, models.CreateToolRequest{Name: "dup-tool"})
		require.NoError(t, err)

		_, err = service.CreateTool(ctx, models.CreateToolRequest{Name: "dup-tool"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestToolService_ResolveHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	t.Run("returns the handler reference for an active tool", func(t *testing.T) {
		_, err := service.CreateTool(ctx, models.CreateToolRequest{
			Name:    "order_lookup",
			Handler: "OrderLookupHandler",
		})
		require.NoError(t, err)

		ref, err := service.ResolveHandler(ctx, "order_lookup")
		require.NoError(t, err)
		assert.Equal(t, "OrderLookupHandler", ref)
	})

	t.Run("unknown tool resolves empty", func(t *testing.T) {
		ref, err := service.ResolveHandler(ctx, "no_such_tool")
		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("inactive tool resolves empty", func(t *testing.T) {
		created, err := service.CreateTool(ctx, models.CreateToolRequest{
			Name:    "retired_lookup",
			Handler: "RetiredHandler",
		})
		require.NoError(t, err)
		_, err = service.SetToolActive(ctx, created.ID, false)
		require.NoError(t, err)

		ref, err := service.ResolveHandler(ctx, "retired_lookup")
		require.NoError(t, err)
		assert.Empty(t, ref)
	})
}

func TestToolService_ListTools(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	_, err := service.CreateTool(ctx, models.CreateToolRequest{Name: "local", ToolType: "in_process"})
	require.NoError(t, err)
	external, err := service.CreateTool(ctx, models.CreateToolRequest{Name: "remote", ToolType: "external"})
	require.NoError(t, err)
	_, err = service.SetToolActive(ctx, external.ID, false)
	require.NoError(t, err)

	all, err := service.ListTools(ctx, models.ToolFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	externals, err := service.ListTools(ctx, models.ToolFilters{ToolType: "external"})
	require.NoError(t, err)
	require.Len(t, externals, 1)
	assert.Equal(t, "remote", externals[0].Name)

	active, err := service.ListTools(ctx, models.ToolFilters{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "local", active[0].Name)
}

func TestToolService_UpdateTool(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	created := createTestTool(t, client.Client, "mutable")

	updated, err := service.UpdateTool(ctx, created.ID, models.UpdateToolRequest{
		Description: strPtr("Updated description"),
		Handler:     strPtr("mutable_v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, "mutable_v2", updated.Handler)
	assert.Equal(t, "mutable", updated.Name)

	_, err = service.UpdateTool(ctx, 999999, models.UpdateToolRequest{Handler: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToolService_DeleteTool(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	agents := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("delete cascades agent assignments", func(t *testing.T) {
		agent := createTestAgent(t, client.Client, "holder")
		tool := createTestTool(t, client.Client, "disposable")
		_, err := agents.AssignTool(ctx, agent.ID, models.AssignToolRequest{ToolID: tool.ID})
		require.NoError(t, err)

		err = service.DeleteTool(ctx, tool.ID)
		require.NoError(t, err)

		remaining, err := client.AgentTool.Query().
			Where(agenttool.AgentIDEQ(agent.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("returns ErrNotFound for missing tool", func(t *testing.T) {
		err := service.DeleteTool(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
