package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/batonworks/baton/pkg/engine"
)

// Defaults applied when a retry_config document omits a field
const (
	defaultMaxRetries     = 3
	defaultInitialDelayMs = 1000
	defaultMaxDelayMs     = 30000
	defaultMultiplier     = 2.0
)

// RetryConfig drives exponential backoff for a step's transient failures
type RetryConfig struct {
	MaxRetries     int
	InitialDelayMs int
	MaxDelayMs     int
	Multiplier     float64
}

// parseRetryConfig reads a step's retry_config document, filling defaults
// for missing fields. A step without retry_config does not retry: nil in,
// nil out
func parseRetryConfig(doc map[string]interface{}) *RetryConfig {
	if doc == nil {
		return nil
	}
	cfg := &RetryConfig{
		MaxRetries:     defaultMaxRetries,
		InitialDelayMs: defaultInitialDelayMs,
		MaxDelayMs:     defaultMaxDelayMs,
		Multiplier:     defaultMultiplier,
	}
	if v, ok := numberValue(doc["maxRetries"]); ok && v >= 0 {
		cfg.MaxRetries = int(v)
	}
	if v, ok := numberValue(doc["initialDelayMs"]); ok && v >= 0 {
		cfg.InitialDelayMs = int(v)
	}
	if v, ok := numberValue(doc["maxDelayMs"]); ok && v >= 0 {
		cfg.MaxDelayMs = int(v)
	}
	if v, ok := numberValue(doc["multiplier"]); ok && v > 0 {
		cfg.Multiplier = v
	}
	return cfg
}

// Delay returns the backoff before retry n, counted from zero:
// min(initialDelayMs * multiplier^n, maxDelayMs)
func (c *RetryConfig) Delay(n int) time.Duration {
	ms := float64(c.InitialDelayMs) * math.Pow(c.Multiplier, float64(n))
	if ms > float64(c.MaxDelayMs) {
		ms = float64(c.MaxDelayMs)
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// runWithRetry runs fn, retrying transient failures under cfg. Deterministic
// failures propagate immediately. Once maxRetries attempts have failed the
// last error is wrapped as MaxRetriesExceeded. Backoff sleeps in-process; a
// crash mid-retry leaves the execution running until the orphan requeue at
// next startup
func runWithRetry(ctx context.Context, cfg *RetryConfig, logger *slog.Logger, stepName string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if cfg == nil || !engine.IsRetryable(err) {
			return err
		}
		failures := attempt + 1
		if failures >= cfg.MaxRetries {
			return engine.WrapError(engine.KindMaxRetriesExceeded,
				fmt.Sprintf("step %q failed after %d attempts", stepName, failures), err)
		}

		delay := cfg.Delay(attempt)
		logger.Warn("Step attempt failed, backing off",
			"step", stepName, "attempt", failures, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
	}
}

// numberValue coerces the numeric shapes a JSON document field can carry
func numberValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
