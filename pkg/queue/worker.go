package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/batonworks/baton/pkg/services"
)

// Worker is a single queue worker that polls for and drives executions
type Worker struct {
	id         string
	executions *services.ExecutionService
	driver     ExecutionDriver
	config     Config
	wake       <-chan struct{}
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentExecutionID int
	processed          int
	lastActivity       time.Time
}

// NewWorker creates a queue worker. wake may be nil; when set, a send on it
// cuts the poll latency after an enqueue or an approval resume
func NewWorker(id string, executions *services.ExecutionService, driver ExecutionDriver, cfg Config, wake <-chan struct{}) *Worker {
	return &Worker{
		id:           id,
		executions:   executions,
		driver:       driver,
		config:       cfg.withDefaults(),
		wake:         wake,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// execution. Safe to call multiple times
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              w.status,
		CurrentExecutionID:  w.currentExecutionID,
		ExecutionsProcessed: w.processed,
		LastActivity:        w.lastActivity,
	}
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Queue worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Queue worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, queue worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrQueueEmpty) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing execution", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration, a wake signal, or stop
func (w *Worker) sleep(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-w.stopCh:
	case <-w.wake:
	case <-timer.C:
	}
}

// pollAndProcess claims the oldest pending execution and drives it. A drive
// error leaves the row in running; the startup orphan requeue returns it to
// the queue on the next boot
func (w *Worker) pollAndProcess(ctx context.Context) error {
	execution, err := w.executions.ClaimNextPendingExecution(ctx)
	if err != nil {
		return fmt.Errorf("claiming execution: %w", err)
	}
	if execution == nil {
		return ErrQueueEmpty
	}

	log := slog.With("execution_id", execution.ID, "worker_id", w.id)
	log.Info("Execution claimed")

	w.setStatus(WorkerStatusWorking, execution.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	outcome, err := w.driver.Continue(ctx, execution.ID)
	if err != nil {
		return fmt.Errorf("driving execution %d: %w", execution.ID, err)
	}

	w.mu.Lock()
	w.processed++
	w.mu.Unlock()

	log.Info("Execution processing complete", "status", outcome.Status)
	return nil
}

// pollInterval returns the poll duration with jitter
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state
func (w *Worker) setStatus(status WorkerStatus, executionID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentExecutionID = executionID
	w.lastActivity = time.Now()
}
