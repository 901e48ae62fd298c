package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

// approvalFixture creates the workflow, approval step and paused execution
// an approval request hangs off
func approvalFixture(t *testing.T, client *ent.Client, name string) (*ent.WorkflowExecution, *ent.WorkflowStep) {
	t.Helper()
	wf := createTestWorkflow(t, client, name)
	step := createTestStep(t, client, wf.ID, 0, workflowstep.StepTypeApproval, nil)
	exec := createTestExecution(t, client, wf.ID, workflowexecution.StatusPaused)
	return exec, step
}

func TestApprovalService_CreateApprovalRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	exec, step := approvalFixture(t, client.Client, "approval-wf")

	t.Run("creates pending request", func(t *testing.T) {
		timeout := time.Now().Add(30 * time.Minute)
		created, err := service.CreateApprovalRequest(ctx, exec.ID, step.ID,
			strPtr("finance"), &timeout)
		require.NoError(t, err)
		assert.Equal(t, approvalrequest.StatusPending, created.Status)
		require.NotNil(t, created.RequiredRole)
		assert.Equal(t, "finance", *created.RequiredRole)
		require.NotNil(t, created.TimeoutAt)
	})

	t.Run("rejects second pending request for same execution and step", func(t *testing.T) {
		_, err := service.CreateApprovalRequest(ctx, exec.ID, step.ID, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("allows a new pending request once the first is decided", func(t *testing.T) {
		pending, err := service.GetPendingByExecution(ctx, exec.ID)
		require.NoError(t, err)

		_, err = service.DecideApproval(ctx, pending.ID, true, models.ApprovalDecisionRequest{
			Approver: "ops@example.com",
		})
		require.NoError(t, err)

		_, err = service.CreateApprovalRequest(ctx, exec.ID, step.ID, nil, nil)
		require.NoError(t, err)
	})
}

func TestApprovalService_DecideApproval(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	exec, step := approvalFixture(t, client.Client, "decide-wf")

	t.Run("requires an approver", func(t *testing.T) {
		created, err := service.CreateApprovalRequest(ctx, exec.ID, step.ID, nil, nil)
		require.NoError(t, err)

		_, err = service.DecideApproval(ctx, created.ID, true, models.ApprovalDecisionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("records a rejection with comments", func(t *testing.T) {
		pending, err := service.GetPendingByExecution(ctx, exec.ID)
		require.NoError(t, err)

		decided, err := service.DecideApproval(ctx, pending.ID, false, models.ApprovalDecisionRequest{
			Approver: "cfo@example.com",
			Comments: "no budget",
		})
		require.NoError(t, err)
		assert.Equal(t, approvalrequest.StatusRejected, decided.Status)
		require.NotNil(t, decided.ApprovedBy)
		assert.Equal(t, "cfo@example.com", *decided.ApprovedBy)
		require.NotNil(t, decided.Comments)
		assert.Equal(t, "no budget", *decided.Comments)
		assert.NotNil(t, decided.ApprovedAt)
	})

	t.Run("refuses a second decision", func(t *testing.T) {
		decided, err := service.ListByExecution(ctx, exec.ID)
		require.NoError(t, err)
		require.NotEmpty(t, decided)

		_, err = service.DecideApproval(ctx, decided[0].ID, true, models.ApprovalDecisionRequest{
			Approver: "late@example.com",
		})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("returns ErrNotFound for missing request", func(t *testing.T) {
		_, err := service.DecideApproval(ctx, 999999, true, models.ApprovalDecisionRequest{
			Approver: "nobody@example.com",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApprovalService_ListPendingApprovals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	execA, stepA := approvalFixture(t, client.Client, "pending-wf-a")
	execB, stepB := approvalFixture(t, client.Client, "pending-wf-b")

	_, err := service.CreateApprovalRequest(ctx, execA.ID, stepA.ID, strPtr("finance"), nil)
	require.NoError(t, err)
	_, err = service.CreateApprovalRequest(ctx, execB.ID, stepB.ID, strPtr("security"), nil)
	require.NoError(t, err)

	all, err := service.ListPendingApprovals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	finance, err := service.ListPendingApprovals(ctx, "finance")
	require.NoError(t, err)
	require.Len(t, finance, 1)
	assert.Equal(t, execA.ID, finance[0].ExecutionID)

	count, err := service.CountPendingApprovals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestApprovalService_Timeouts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()

	exec, step := approvalFixture(t, client.Client, "timeout-wf")

	expired := time.Now().Add(-time.Minute)
	created, err := service.CreateApprovalRequest(ctx, exec.ID, step.ID, nil, &expired)
	require.NoError(t, err)

	t.Run("lists expired pending requests", func(t *testing.T) {
		found, err := service.ListExpiredApprovals(ctx, time.Now())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, created.ID, found[0].ID)
	})

	t.Run("marks timed out exactly once", func(t *testing.T) {
		claimed, err := service.MarkTimedOut(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = service.MarkTimedOut(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, claimed)

		reloaded, err := service.GetApprovalRequest(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, approvalrequest.StatusTimeout, reloaded.Status)
	})

	t.Run("timed out requests leave the expired list", func(t *testing.T) {
		found, err := service.ListExpiredApprovals(ctx, time.Now())
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
