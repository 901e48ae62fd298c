package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestKnowledgeService_CRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()

	t.Run("creates and gets an entry", func(t *testing.T) {
		created, err := service.CreateEntry(ctx, models.CreateKnowledgeRequest{
			Title:    "Escalation policy",
			Content:  "Page the on-call after two failures.",
			Category: "operations",
			Tags:     []string{"oncall", "policy"},
		})
		require.NoError(t, err)
		assert.True(t, created.Active)

		found, err := service.GetEntry(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Escalation policy", found.Title)
		assert.Equal(t, []string{"oncall", "policy"}, found.Tags)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateEntry(ctx, models.CreateKnowledgeRequest{Content: "body"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateEntry(ctx, models.CreateKnowledgeRequest{Title: "head"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("filters listings by category and active", func(t *testing.T) {
		other, err := service.CreateEntry(ctx, models.CreateKnowledgeRequest{
			Title:    "Billing FAQ",
			Content:  "Invoices go out monthly.",
			Category: "billing",
		})
		require.NoError(t, err)
		_, err = service.UpdateEntry(ctx, other.ID, models.UpdateKnowledgeRequest{
			Active: boolPtr(false),
		})
		require.NoError(t, err)

		ops, err := service.ListEntries(ctx, "operations", false)
		require.NoError(t, err)
		assert.Len(t, ops, 1)

		active, err := service.ListEntries(ctx, "", true)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("updates and deletes", func(t *testing.T) {
		created, err := service.CreateEntry(ctx, models.CreateKnowledgeRequest{
			Title:   "Scratch",
			Content: "temp",
		})
		require.NoError(t, err)

		updated, err := service.UpdateEntry(ctx, created.ID, models.UpdateKnowledgeRequest{
			Content: strPtr("replaced"),
		})
		require.NoError(t, err)
		assert.Equal(t, "replaced", updated.Content)

		err = service.DeleteEntry(ctx, created.ID)
		require.NoError(t, err)

		_, err = service.GetEntry(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func boolPtr(v bool) *bool {
	return &v
}
