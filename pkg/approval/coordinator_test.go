package approval

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/services"
	testdb "github.com/batonworks/baton/test/database"
)

// recordingResumer records Resume calls without driving anything
type recordingResumer struct {
	mu    sync.Mutex
	calls [][2]int
	err   error
}

func (r *recordingResumer) Resume(_ context.Context, executionID, approvalID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, [2]int{executionID, approvalID})
	return r.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *recordingNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

// pausedFixture creates a workflow with one approval step and a paused
// execution carrying a pending approval request
func pausedFixture(t *testing.T, client *ent.Client, name string, timeoutAt *time.Time) (*ent.WorkflowExecution, *ent.ApprovalRequest) {
	t.Helper()
	ctx := context.Background()

	wf, err := client.Workflow.Create().SetName(name).Save(ctx)
	require.NoError(t, err)
	step, err := client.WorkflowStep.Create().
		SetWorkflowID(wf.ID).
		SetStepOrder(0).
		SetStepType(workflowstep.StepTypeApproval).
		SetName("approve").
		Save(ctx)
	require.NoError(t, err)
	exec, err := client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetStatus(workflowexecution.StatusPaused).
		Save(ctx)
	require.NoError(t, err)
	request, err := client.ApprovalRequest.Create().
		SetExecutionID(exec.ID).
		SetStepID(step.ID).
		SetNillableTimeoutAt(timeoutAt).
		Save(ctx)
	require.NoError(t, err)
	return exec, request
}

func newCoordinator(client *ent.Client, resumer Resumer, notifier Notifier) *Coordinator {
	return NewCoordinator(
		services.NewApprovalService(client),
		services.NewExecutionService(client),
		resumer,
		notifier,
	)
}

func TestCoordinator_Approve(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	resumer := &recordingResumer{}
	notifier := &recordingNotifier{}
	coordinator := newCoordinator(client.Client, resumer, notifier)

	exec, request := pausedFixture(t, client.Client, "approve-wf", nil)

	decided, err := coordinator.Approve(ctx, request.ID, "alice", "ok")
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "alice", *decided.ApprovedBy)

	require.Len(t, resumer.calls, 1)
	assert.Equal(t, [2]int{exec.ID, request.ID}, resumer.calls[0])
	assert.Equal(t, 1, notifier.count)

	t.Run("second decision is rejected at the transition boundary", func(t *testing.T) {
		_, err := coordinator.Approve(ctx, request.ID, "bob", "me too")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidState)
		assert.Len(t, resumer.calls, 1, "a decided request must not resume again")
	})
}

func TestCoordinator_Reject(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	resumer := &recordingResumer{}
	coordinator := newCoordinator(client.Client, resumer, nil)

	exec, request := pausedFixture(t, client.Client, "reject-wf", nil)

	decided, err := coordinator.Reject(ctx, request.ID, "bob", "no budget")
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusRejected, decided.Status)
	assert.Empty(t, resumer.calls, "a rejection must not resume the execution")

	failed, err := client.Client.WorkflowExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "Approval rejected: no budget")
}

func TestCoordinator_ProcessTimeouts(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	coordinator := newCoordinator(client.Client, &recordingResumer{}, nil)

	overdue := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	expiredExec, expiredRequest := pausedFixture(t, client.Client, "expired-wf", &overdue)
	freshExec, freshRequest := pausedFixture(t, client.Client, "fresh-wf", &future)
	openExec, openRequest := pausedFixture(t, client.Client, "open-wf", nil)

	count, err := coordinator.ProcessTimeouts(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	timedOut, err := client.Client.ApprovalRequest.Get(ctx, expiredRequest.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusTimeout, timedOut.Status)

	failed, err := client.Client.WorkflowExecution.Get(ctx, expiredExec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "Approval rejected")

	// Requests with a future or absent deadline are untouched
	for _, id := range []int{freshRequest.ID, openRequest.ID} {
		request, err := client.Client.ApprovalRequest.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, approvalrequest.StatusPending, request.Status)
	}
	for _, id := range []int{freshExec.ID, openExec.ID} {
		exec, err := client.Client.WorkflowExecution.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, workflowexecution.StatusPaused, exec.Status)
	}

	t.Run("sweep is idempotent", func(t *testing.T) {
		count, err := coordinator.ProcessTimeouts(ctx, time.Now())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestSweeper_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	coordinator := newCoordinator(client.Client, &recordingResumer{}, nil)

	overdue := time.Now().Add(-time.Minute)
	exec, _ := pausedFixture(t, client.Client, "sweeper-wf", &overdue)

	sweeper := NewSweeper(coordinator, time.Hour)
	sweeper.Start(context.Background())
	defer sweeper.Stop()

	// The initial sweep runs synchronously enough to observe shortly after
	require.Eventually(t, func() bool {
		current, err := client.Client.WorkflowExecution.Get(context.Background(), exec.ID)
		return err == nil && current.Status == workflowexecution.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)
}
