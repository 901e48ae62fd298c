// Package scheduler fires cron-triggered workflows. Once per minute it
// claims every enabled schedule whose next_run_at has passed and enqueues an
// execution with the schedule's stored trigger data. The claim advances
// last_run_at and next_run_at atomically, so a schedule fires at most once
// per due instant even across overlapping ticks.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/pkg/services"
)

// Enqueuer creates a pending execution for the run queue. The orchestrator
// satisfies it
type Enqueuer interface {
	Enqueue(ctx context.Context, workflowID int, triggerData map[string]interface{}) (*ent.WorkflowExecution, error)
}

// Notifier nudges the run queue after an enqueue. The queue worker pool
// satisfies it; nil disables notification
type Notifier interface {
	Notify()
}

// Scheduler ticks once per wall-clock minute and fires due schedules
type Scheduler struct {
	schedules *services.ScheduleService
	enqueuer  Enqueuer
	notifier  Notifier
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Scheduler. notifier may be nil
func New(schedules *services.ScheduleService, enqueuer Enqueuer, notifier Notifier) *Scheduler {
	return &Scheduler{
		schedules: schedules,
		enqueuer:  enqueuer,
		notifier:  notifier,
		logger:    slog.With("component", "scheduler"),
	}
}

// Start launches the tick loop, aligned to second 0 of each minute
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started")
}

// Stop signals the tick loop to exit and waits for the in-flight tick
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	for {
		// Sleep to the top of the next minute rather than a fixed
		// interval, so ticks stay aligned after slow claims
		now := time.Now()
		next := now.Truncate(time.Minute).Add(time.Minute)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case tickAt := <-timer.C:
			s.Tick(ctx, tickAt)
		}
	}
}

// Tick claims and fires every due schedule. Per-schedule failures are
// logged and never abort the tick
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	claimed, err := s.schedules.ClaimDueSchedules(ctx, now)
	if err != nil {
		s.logger.Error("Failed to claim due schedules", "error", err)
		return
	}

	for _, c := range claimed {
		if c.CronErr != nil {
			// The claim already pushed next_run_at an hour out
			s.logger.Error("Schedule has an unparseable cron expression, deferred an hour",
				"schedule_id", c.Schedule.ID,
				"workflow_id", c.Schedule.WorkflowID,
				"cron", c.Schedule.CronExpression,
				"error", c.CronErr)
		}

		trigger := c.Schedule.TriggerData
		if trigger == nil {
			trigger = map[string]interface{}{}
		}

		exec, err := s.enqueuer.Enqueue(ctx, c.Schedule.WorkflowID, trigger)
		if err != nil {
			s.logger.Error("Failed to enqueue scheduled execution",
				"schedule_id", c.Schedule.ID,
				"workflow_id", c.Schedule.WorkflowID,
				"error", err)
			continue
		}

		s.logger.Info("Scheduled execution enqueued",
			"schedule_id", c.Schedule.ID,
			"workflow_id", c.Schedule.WorkflowID,
			"execution_id", exec.ID)
	}

	if len(claimed) > 0 && s.notifier != nil {
		s.notifier.Notify()
	}
}
