package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/pkg/services"
)

// WorkerPool manages a pool of queue workers
type WorkerPool struct {
	client  *ent.Client
	driver  ExecutionDriver
	config  Config
	workers []*Worker
	wake    chan struct{}

	mu              sync.Mutex
	started         bool
	orphansRequeued int
}

// NewWorkerPool creates a worker pool driving executions through driver
func NewWorkerPool(client *ent.Client, driver ExecutionDriver, cfg Config) *WorkerPool {
	cfg = cfg.withDefaults()
	return &WorkerPool{
		client:  client,
		driver:  driver,
		config:  cfg,
		workers: make([]*Worker, 0, cfg.Workers),
		wake:    make(chan struct{}, 1),
	}
}

// Start requeues executions orphaned by a previous crash and spawns the
// worker goroutines. It is safe to call multiple times; subsequent calls
// are no-ops
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	executions := services.NewExecutionService(p.client)

	requeued, err := executions.RequeueOrphanedExecutions(ctx)
	if err != nil {
		return fmt.Errorf("requeuing orphaned executions: %w", err)
	}
	p.orphansRequeued = requeued
	if requeued > 0 {
		slog.Info("Requeued orphaned executions from previous run", "count", requeued)
	}

	slog.Info("Starting worker pool", "worker_count", p.config.Workers)

	for i := 0; i < p.config.Workers; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		worker := NewWorker(workerID, executions, p.driver, p.config, p.wake)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current executions before exiting
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Worker pool stopped gracefully")
}

// Notify nudges an idle worker to poll immediately instead of waiting out
// its interval. Called after an enqueue or an approval resume; dropping the
// signal when one is already pending is fine
func (p *WorkerPool) Notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Health returns the current health status of the pool
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	runningCount, errR := p.client.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusRunning)).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running executions for health check", "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running executions query failed: %v", errR)
		}
	}

	p.mu.Lock()
	orphansRequeued := p.orphansRequeued
	p.mu.Unlock()

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		QueueDepth:      queueDepth,
		RunningCount:    runningCount,
		OrphansRequeued: orphansRequeued,
		WorkerStats:     workerStats,
	}
}
