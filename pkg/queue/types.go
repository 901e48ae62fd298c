// Package queue runs the execution queue: a pool of workers claims pending
// workflow executions and drives each one to its next stop point. The
// pending status doubles as the queue, so enqueueing, approval resumes and
// crash recovery all feed the same claim loop.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/batonworks/baton/pkg/orchestrator"
)

// ErrQueueEmpty indicates no pending executions were available to claim
var ErrQueueEmpty = errors.New("no pending executions available")

// ExecutionDriver drives a claimed execution from its persisted cursor to a
// terminal or paused state. The orchestrator satisfies it; workers own only
// claiming and pacing
type ExecutionDriver interface {
	Continue(ctx context.Context, executionID int) (*orchestrator.Outcome, error)
}

// Config tunes the worker pool
type Config struct {
	Workers      int
	PollInterval time.Duration
	PollJitter   time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.PollJitter < 0 {
		c.PollJitter = 0
	}
	return c
}

// WorkerStatus represents the current state of a worker
type WorkerStatus string

// Worker status constants
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	QueueDepth      int            `json:"queue_depth"`
	RunningCount    int            `json:"running_count"`
	OrphansRequeued int            `json:"orphans_requeued"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker
type WorkerHealth struct {
	ID                  string       `json:"id"`
	Status              WorkerStatus `json:"status"`
	CurrentExecutionID  int          `json:"current_execution_id,omitempty"`
	ExecutionsProcessed int          `json:"executions_processed"`
	LastActivity        time.Time    `json:"last_activity"`
}
