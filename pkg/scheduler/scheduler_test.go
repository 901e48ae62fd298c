package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/pkg/services"
	testdb "github.com/batonworks/baton/test/database"
)

// recordingEnqueuer records enqueue calls and fabricates execution rows
type recordingEnqueuer struct {
	mu    sync.Mutex
	calls []enqueueCall
}

type enqueueCall struct {
	workflowID int
	trigger    map[string]interface{}
}

func (e *recordingEnqueuer) Enqueue(_ context.Context, workflowID int, trigger map[string]interface{}) (*ent.WorkflowExecution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, enqueueCall{workflowID: workflowID, trigger: trigger})
	return &ent.WorkflowExecution{ID: len(e.calls)}, nil
}

func (e *recordingEnqueuer) Calls() []enqueueCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]enqueueCall, len(e.calls))
	copy(out, e.calls)
	return out
}

func createSchedule(t *testing.T, client *ent.Client, workflowName, cron string, nextRunAt time.Time, trigger map[string]interface{}) *ent.WorkflowSchedule {
	t.Helper()
	ctx := context.Background()
	wf, err := client.Workflow.Create().SetName(workflowName).Save(ctx)
	require.NoError(t, err)
	create := client.WorkflowSchedule.Create().
		SetWorkflowID(wf.ID).
		SetCronExpression(cron).
		SetNextRunAt(nextRunAt)
	if trigger != nil {
		create = create.SetTriggerData(trigger)
	}
	sched, err := create.Save(ctx)
	require.NoError(t, err)
	return sched
}

func TestScheduler_TickFiresDueScheduleOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	enqueuer := &recordingEnqueuer{}
	s := New(services.NewScheduleService(client.Client), enqueuer, nil)

	now := time.Now()
	sched := createSchedule(t, client.Client, "due-wf", "*/5 * * * *",
		now.Add(-time.Second), map[string]interface{}{"source": "cron"})

	s.Tick(ctx, now)
	s.Tick(ctx, now.Add(time.Second))

	calls := enqueuer.Calls()
	require.Len(t, calls, 1, "two ticks over one due instant must fire exactly once")
	assert.Equal(t, sched.WorkflowID, calls[0].workflowID)
	assert.Equal(t, map[string]interface{}{"source": "cron"}, calls[0].trigger)

	advanced, err := client.Client.WorkflowSchedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, advanced.LastRunAt)
	assert.WithinDuration(t, now, *advanced.LastRunAt, time.Second)
	// */5 puts the next fire at most five minutes out
	assert.True(t, advanced.NextRunAt.After(now))
	assert.LessOrEqual(t, advanced.NextRunAt.Sub(now), 5*time.Minute)
}

func TestScheduler_TickSkipsDisabledAndFuture(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	enqueuer := &recordingEnqueuer{}
	s := New(services.NewScheduleService(client.Client), enqueuer, nil)

	now := time.Now()
	disabled := createSchedule(t, client.Client, "disabled-wf", "* * * * *", now.Add(-time.Minute), nil)
	_, err := client.Client.WorkflowSchedule.UpdateOneID(disabled.ID).SetEnabled(false).Save(ctx)
	require.NoError(t, err)
	createSchedule(t, client.Client, "future-wf", "* * * * *", now.Add(time.Hour), nil)

	s.Tick(ctx, now)

	assert.Empty(t, enqueuer.Calls())
}

func TestScheduler_TickDefersUnparseableCron(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	enqueuer := &recordingEnqueuer{}
	s := New(services.NewScheduleService(client.Client), enqueuer, nil)

	// The service validates cron on create, so corrupt the row directly
	now := time.Now()
	sched := createSchedule(t, client.Client, "bad-cron-wf", "* * * * *", now.Add(-time.Second), nil)
	_, err := client.Client.WorkflowSchedule.UpdateOneID(sched.ID).
		SetCronExpression("not a cron").
		Save(ctx)
	require.NoError(t, err)

	s.Tick(ctx, now)

	// The due fire still happens; the next one is pushed an hour out
	assert.Len(t, enqueuer.Calls(), 1)
	deferred, err := client.Client.WorkflowSchedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), deferred.NextRunAt, time.Minute)
}

func TestScheduler_MissingTriggerDataBecomesEmptyObject(t *testing.T) {
	client := testdb.NewTestClient(t)

	enqueuer := &recordingEnqueuer{}
	s := New(services.NewScheduleService(client.Client), enqueuer, nil)

	now := time.Now()
	createSchedule(t, client.Client, "no-trigger-wf", "* * * * *", now.Add(-time.Second), nil)

	s.Tick(context.Background(), now)

	calls := enqueuer.Calls()
	require.Len(t, calls, 1)
	assert.NotNil(t, calls[0].trigger)
	assert.Empty(t, calls[0].trigger)
}
