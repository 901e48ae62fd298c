package orchestrator

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/engine"
)

func TestParseRetryConfig(t *testing.T) {
	t.Run("nil document disables retry", func(t *testing.T) {
		assert.Nil(t, parseRetryConfig(nil))
	})

	t.Run("empty document gets all defaults", func(t *testing.T) {
		cfg := parseRetryConfig(map[string]interface{}{})
		require.NotNil(t, cfg)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 1000, cfg.InitialDelayMs)
		assert.Equal(t, 30000, cfg.MaxDelayMs)
		assert.Equal(t, 2.0, cfg.Multiplier)
	})

	t.Run("partial document keeps remaining defaults", func(t *testing.T) {
		cfg := parseRetryConfig(map[string]interface{}{"maxRetries": 5})
		require.NotNil(t, cfg)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, 1000, cfg.InitialDelayMs)
	})

	t.Run("accepts the float64 shape JSON decoding produces", func(t *testing.T) {
		cfg := parseRetryConfig(map[string]interface{}{
			"maxRetries":     float64(2),
			"initialDelayMs": float64(50),
			"maxDelayMs":     float64(80),
			"multiplier":     1.5,
		})
		require.NotNil(t, cfg)
		assert.Equal(t, 2, cfg.MaxRetries)
		assert.Equal(t, 50, cfg.InitialDelayMs)
		assert.Equal(t, 80, cfg.MaxDelayMs)
		assert.Equal(t, 1.5, cfg.Multiplier)
	})

	t.Run("non-numeric values fall back to defaults", func(t *testing.T) {
		cfg := parseRetryConfig(map[string]interface{}{"maxRetries": "plenty"})
		require.NotNil(t, cfg)
		assert.Equal(t, 3, cfg.MaxRetries)
	})
}

func TestRetryConfigDelay(t *testing.T) {
	cfg := &RetryConfig{InitialDelayMs: 100, MaxDelayMs: 350, Multiplier: 2.0}

	assert.Equal(t, 100*time.Millisecond, cfg.Delay(0))
	assert.Equal(t, 200*time.Millisecond, cfg.Delay(1))
	// 400ms capped by maxDelayMs
	assert.Equal(t, 350*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, 350*time.Millisecond, cfg.Delay(8))
}

func TestRunWithRetry(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	transient := engine.NewError(engine.KindLLMFailure, "upstream 503")

	t.Run("returns immediately on success", func(t *testing.T) {
		calls := 0
		err := runWithRetry(ctx, &RetryConfig{MaxRetries: 3, InitialDelayMs: 1, MaxDelayMs: 10, Multiplier: 2}, logger, "classify", func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		calls := 0
		err := runWithRetry(ctx, &RetryConfig{MaxRetries: 3, InitialDelayMs: 1, MaxDelayMs: 10, Multiplier: 2}, logger, "classify", func() error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhaustion wraps the last error as MaxRetriesExceeded", func(t *testing.T) {
		calls := 0
		err := runWithRetry(ctx, &RetryConfig{MaxRetries: 2, InitialDelayMs: 1, MaxDelayMs: 10, Multiplier: 2}, logger, "classify", func() error {
			calls++
			return transient
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, engine.IsKind(err, engine.KindMaxRetriesExceeded))
		assert.Contains(t, err.Error(), "after 2 attempts")
		assert.Contains(t, err.Error(), "upstream 503")
	})

	t.Run("deterministic failures are not retried", func(t *testing.T) {
		calls := 0
		err := runWithRetry(ctx, &RetryConfig{MaxRetries: 3, InitialDelayMs: 1, MaxDelayMs: 10, Multiplier: 2}, logger, "classify", func() error {
			calls++
			return engine.NewError(engine.KindInvalidArgument, "bad request")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, engine.IsKind(err, engine.KindInvalidArgument))
	})

	t.Run("nil config fails on first error", func(t *testing.T) {
		calls := 0
		err := runWithRetry(ctx, nil, logger, "classify", func() error {
			calls++
			return transient
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, engine.IsKind(err, engine.KindLLMFailure))
	})

	t.Run("cancelled context aborts the backoff sleep", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := runWithRetry(cancelled, &RetryConfig{MaxRetries: 3, InitialDelayMs: 60000, MaxDelayMs: 60000, Multiplier: 2}, logger, "classify", func() error {
			return transient
		})
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindLLMFailure))
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
