package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/models"
)

// A due schedule fires through the real enqueue path: the tick claims it,
// enqueues an execution carrying the schedule's trigger data, and a pool
// worker runs it to completion. The claim also advances next_run_at so the
// same instant never fires twice.
func TestE2E_ScheduledRun(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.provider.RespondText("nightly report ready", 10, 3)

	worker := app.createAgent(t, "e2e-cron-worker")
	wf := app.createWorkflow(t, "e2e-cron")
	app.createStep(t, wf.ID, stepSpec{
		order: 1, stepType: workflowstep.StepTypeAgent,
		agentID: worker.ID, outputVariable: "report",
	})

	sched, err := app.schedules.CreateSchedule(ctx, models.CreateScheduleRequest{
		WorkflowID:     wf.ID,
		CronExpression: "*/5 * * * *",
		TriggerData:    map[string]interface{}{"source": "cron", "job": "nightly"},
	})
	require.NoError(t, err)

	// Pull the fire instant into the past so the next tick claims it
	_, err = app.client.WorkflowSchedule.UpdateOneID(sched.ID).
		SetNextRunAt(time.Now().Add(-time.Second)).
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	app.scheduler.Tick(ctx, now)
	app.scheduler.Tick(ctx, now.Add(time.Second))

	var executionID int
	require.Eventually(t, func() bool {
		rows, err := app.client.WorkflowExecution.Query().
			Where(workflowexecution.WorkflowIDEQ(wf.ID)).
			All(ctx)
		if err != nil || len(rows) == 0 {
			return false
		}
		executionID = rows[0].ID
		return true
	}, 5*time.Second, 20*time.Millisecond)

	// Exactly one execution for the two ticks over one due instant
	count, err := app.client.WorkflowExecution.Query().
		Where(workflowexecution.WorkflowIDEQ(wf.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	final := app.waitForStatus(t, executionID, workflowexecution.StatusCompleted)
	assert.Equal(t, map[string]interface{}{"source": "cron", "job": "nightly"},
		final.Context["trigger"])
	assert.Equal(t, "nightly report ready",
		final.Context["report"].(map[string]interface{})["text"])

	advanced, err := app.client.WorkflowSchedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, advanced.LastRunAt)
	assert.True(t, advanced.NextRunAt.After(now))
}
