package approval

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically times out overdue pending approvals. Sweeps are
// idempotent; running one alongside a human decision resolves through the
// approval row's conditional status update.
type Sweeper struct {
	coordinator *Coordinator
	interval    time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper running every interval; zero selects one
// minute
func NewSweeper(coordinator *Coordinator, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		coordinator: coordinator,
		interval:    interval,
	}
}

// Start launches the background sweep loop
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Approval sweeper started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Approval sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.coordinator.ProcessTimeouts(ctx, time.Now())
	if err != nil {
		slog.Error("Approval timeout sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Approval timeout sweep completed", "timed_out", count)
	}
}
