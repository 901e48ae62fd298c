package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowschedule"
	"github.com/batonworks/baton/pkg/models"
)

// cronParser accepts standard five-field cron with an optional leading
// seconds field, plus descriptors like @hourly
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseCron parses a schedule's cron expression
func ParseCron(expr string) (cron.Schedule, error) {
	return cronParser.Parse(expr)
}

// nextAfter computes the next fire time strictly after now. Unparseable
// expressions fall back an hour out so a bad stored schedule cannot
// hot-loop the scheduler
func nextAfter(expr string, now time.Time) (time.Time, error) {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return now.Add(time.Hour), err
	}
	return schedule.Next(now), nil
}

// ClaimedSchedule pairs a claimed schedule with the cron parse error hit
// while advancing it, if any
type ClaimedSchedule struct {
	Schedule *ent.WorkflowSchedule
	CronErr  error
}

// ScheduleService manages cron-triggered workflow schedules
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// CreateSchedule registers a cron schedule for a workflow and computes its
// first fire time
func (s *ScheduleService) CreateSchedule(httpCtx context.Context, req models.CreateScheduleRequest) (*ent.WorkflowSchedule, error) {
	// Validate input
	if req.WorkflowID <= 0 {
		return nil, NewValidationError("workflow_id", "required")
	}
	if req.CronExpression == "" {
		return nil, NewValidationError("cron_expression", "required")
	}
	schedule, err := ParseCron(req.CronExpression)
	if err != nil {
		return nil, NewValidationError("cron_expression", fmt.Sprintf("invalid: %v", err))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Workflow.Query().Where(workflow.IDEQ(req.WorkflowID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workflow %d: %w", req.WorkflowID, ErrNotFound)
	}

	create := s.client.WorkflowSchedule.Create().
		SetWorkflowID(req.WorkflowID).
		SetCronExpression(req.CronExpression).
		SetNextRunAt(schedule.Next(time.Now()))
	if req.TriggerData != nil {
		create = create.SetTriggerData(req.TriggerData)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return created, nil
}

// GetSchedule retrieves a schedule by ID
func (s *ScheduleService) GetSchedule(ctx context.Context, scheduleID int) (*ent.WorkflowSchedule, error) {
	found, err := s.client.WorkflowSchedule.Get(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return found, nil
}

// ListSchedules lists schedules, optionally restricted to enabled ones
func (s *ScheduleService) ListSchedules(ctx context.Context, enabledOnly bool) ([]*ent.WorkflowSchedule, error) {
	query := s.client.WorkflowSchedule.Query()
	if enabledOnly {
		query = query.Where(workflowschedule.EnabledEQ(true))
	}

	schedules, err := query.
		Order(ent.Asc(workflowschedule.FieldNextRunAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	return schedules, nil
}

// ListByWorkflow lists a workflow's schedules
func (s *ScheduleService) ListByWorkflow(ctx context.Context, workflowID int) ([]*ent.WorkflowSchedule, error) {
	schedules, err := s.client.WorkflowSchedule.Query().
		Where(workflowschedule.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowschedule.FieldNextRunAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	return schedules, nil
}

// UpdateSchedule applies a partial update; changing the cron expression
// recomputes next_run_at from now
func (s *ScheduleService) UpdateSchedule(httpCtx context.Context, scheduleID int, req models.UpdateScheduleRequest) (*ent.WorkflowSchedule, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.WorkflowSchedule.UpdateOneID(scheduleID)
	if req.CronExpression != nil {
		schedule, err := ParseCron(*req.CronExpression)
		if err != nil {
			return nil, NewValidationError("cron_expression", fmt.Sprintf("invalid: %v", err))
		}
		update = update.
			SetCronExpression(*req.CronExpression).
			SetNextRunAt(schedule.Next(time.Now()))
	}
	if req.TriggerData != nil {
		update = update.SetTriggerData(req.TriggerData)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	return updated, nil
}

// SetScheduleEnabled toggles a schedule. Re-enabling recomputes next_run_at
// from now so the backlog accumulated while disabled never fires
func (s *ScheduleService) SetScheduleEnabled(httpCtx context.Context, scheduleID int, enabled bool) (*ent.WorkflowSchedule, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sched, err := s.client.WorkflowSchedule.Get(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	update := s.client.WorkflowSchedule.UpdateOneID(scheduleID).
		SetEnabled(enabled)
	if enabled && !sched.Enabled {
		next, _ := nextAfter(sched.CronExpression, time.Now())
		update = update.SetNextRunAt(next)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set schedule enabled: %w", err)
	}

	return updated, nil
}

// DeleteSchedule removes a schedule
func (s *ScheduleService) DeleteSchedule(httpCtx context.Context, scheduleID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowSchedule.DeleteOneID(scheduleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return nil
}

// ClaimDueSchedules atomically claims every enabled schedule whose
// next_run_at has passed, advancing last_run_at and next_run_at inside the
// claim so a schedule fires at most once per due instant. The caller
// enqueues an execution for each claimed schedule
func (s *ScheduleService) ClaimDueSchedules(ctx context.Context, now time.Time) ([]ClaimedSchedule, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	due, err := tx.WorkflowSchedule.Query().
		Where(
			workflowschedule.EnabledEQ(true),
			workflowschedule.NextRunAtLTE(now),
		).
		Order(ent.Asc(workflowschedule.FieldNextRunAt)).
		All(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due schedules: %w", err)
	}

	var claimed []ClaimedSchedule
	for _, sched := range due {
		next, cronErr := nextAfter(sched.CronExpression, now)

		// Conditional update: only claim if next_run_at is unchanged
		count, err := tx.WorkflowSchedule.Update().
			Where(
				workflowschedule.IDEQ(sched.ID),
				workflowschedule.EnabledEQ(true),
				workflowschedule.NextRunAtEQ(sched.NextRunAt),
			).
			SetLastRunAt(now).
			SetNextRunAt(next).
			Save(claimCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim schedule %d: %w", sched.ID, err)
		}
		if count == 0 {
			// Advanced by another scheduler tick
			continue
		}

		claimed = append(claimed, ClaimedSchedule{Schedule: sched, CronErr: cronErr})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}
