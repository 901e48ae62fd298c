package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestParseCron(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "five fields", expr: "*/5 * * * *", wantErr: false},
		{name: "six fields with seconds", expr: "0 */5 * * * *", wantErr: false},
		{name: "descriptor", expr: "@hourly", wantErr: false},
		{name: "empty", expr: "", wantErr: true},
		{name: "garbage", expr: "every tuesday", wantErr: true},
		{name: "too many fields", expr: "* * * * * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCron(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_CreateSchedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "scheduled-wf")

	t.Run("creates schedule with computed next_run_at", func(t *testing.T) {
		before := time.Now()
		created, err := service.CreateSchedule(ctx, models.CreateScheduleRequest{
			WorkflowID:     wf.ID,
			CronExpression: "*/5 * * * *",
			TriggerData:    map[string]interface{}{"source": "cron"},
		})
		require.NoError(t, err)
		assert.True(t, created.Enabled)
		assert.Nil(t, created.LastRunAt)
		assert.True(t, created.NextRunAt.After(before))
		assert.True(t, created.NextRunAt.Before(before.Add(6*time.Minute)))
	})

	t.Run("rejects invalid cron", func(t *testing.T) {
		_, err := service.CreateSchedule(ctx, models.CreateScheduleRequest{
			WorkflowID:     wf.ID,
			CronExpression: "whenever",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing workflow", func(t *testing.T) {
		_, err := service.CreateSchedule(ctx, models.CreateScheduleRequest{
			WorkflowID:     999999,
			CronExpression: "* * * * *",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScheduleService_UpdateSchedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "updating-wf")
	created, err := service.CreateSchedule(ctx, models.CreateScheduleRequest{
		WorkflowID:     wf.ID,
		CronExpression: "0 0 * * *",
	})
	require.NoError(t, err)

	t.Run("changing the cron recomputes next_run_at", func(t *testing.T) {
		updated, err := service.UpdateSchedule(ctx, created.ID, models.UpdateScheduleRequest{
			CronExpression: strPtr("* * * * *"),
		})
		require.NoError(t, err)
		assert.Equal(t, "* * * * *", updated.CronExpression)
		assert.True(t, updated.NextRunAt.Before(time.Now().Add(2*time.Minute)))
	})

	t.Run("rejects invalid cron", func(t *testing.T) {
		_, err := service.UpdateSchedule(ctx, created.ID, models.UpdateScheduleRequest{
			CronExpression: strPtr("nope"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("re-enabling recomputes next_run_at", func(t *testing.T) {
		_, err := service.SetScheduleEnabled(ctx, created.ID, false)
		require.NoError(t, err)

		// Park next_run_at in the past while disabled
		_, err = client.WorkflowSchedule.UpdateOneID(created.ID).
			SetNextRunAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		enabled, err := service.SetScheduleEnabled(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, enabled.NextRunAt.After(time.Now().Add(-time.Minute)))
	})
}

func TestScheduleService_ClaimDueSchedules(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "due-wf")

	t.Run("claims due schedules once", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		created, err := client.WorkflowSchedule.Create().
			SetWorkflowID(wf.ID).
			SetCronExpression("* * * * *").
			SetNextRunAt(past).
			Save(ctx)
		require.NoError(t, err)

		now := time.Now()
		claimed, err := service.ClaimDueSchedules(ctx, now)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, created.ID, claimed[0].Schedule.ID)
		assert.NoError(t, claimed[0].CronErr)

		// The claim advanced the schedule past now
		reloaded, err := service.GetSchedule(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.LastRunAt)
		assert.WithinDuration(t, now, *reloaded.LastRunAt, time.Second)
		assert.True(t, reloaded.NextRunAt.After(now))

		// An immediate second tick claims nothing
		claimed, err = service.ClaimDueSchedules(ctx, time.Now())
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("ignores disabled schedules", func(t *testing.T) {
		disabled, err := client.WorkflowSchedule.Create().
			SetWorkflowID(wf.ID).
			SetCronExpression("* * * * *").
			SetNextRunAt(time.Now().Add(-time.Minute)).
			SetEnabled(false).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := service.ClaimDueSchedules(ctx, time.Now())
		require.NoError(t, err)
		for _, c := range claimed {
			assert.NotEqual(t, disabled.ID, c.Schedule.ID)
		}
	})

	t.Run("bad stored cron falls back an hour out", func(t *testing.T) {
		// Bypass service validation to simulate a corrupted row
		bad, err := client.WorkflowSchedule.Create().
			SetWorkflowID(wf.ID).
			SetCronExpression("not a cron").
			SetNextRunAt(time.Now().Add(-time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		now := time.Now()
		claimed, err := service.ClaimDueSchedules(ctx, now)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, bad.ID, claimed[0].Schedule.ID)
		assert.Error(t, claimed[0].CronErr)

		reloaded, err := service.GetSchedule(ctx, bad.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(time.Hour), reloaded.NextRunAt, time.Minute)
	})
}
