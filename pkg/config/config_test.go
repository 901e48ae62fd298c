package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", s.Port)
	assert.True(t, s.SchedulerEnabled)
	assert.Equal(t, "anthropic", s.LLM.Provider)
	assert.Equal(t, 2, s.Engine.Workers)
	assert.Equal(t, time.Second, s.Engine.PollInterval)
	assert.Equal(t, 300*time.Second, s.Engine.StepTimeout)
	assert.Equal(t, time.Minute, s.Engine.ApprovalSweepInterval)
	assert.Equal(t, 30*time.Second, s.ToolServer.Timeout)
	assert.Empty(t, s.ToolServer.Transport)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_API_VERSION", "2023-06-01")
	t.Setenv("ENGINE_WORKERS", "4")
	t.Setenv("STEP_TIMEOUT_DEFAULT_SECONDS", "120")
	t.Setenv("TOOLSERVER_TRANSPORT", "grpc")
	t.Setenv("TOOLSERVER_ADDR", "localhost:50052")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", s.Port)
	assert.False(t, s.SchedulerEnabled)
	assert.Equal(t, "sk-test", s.LLM.APIKey)
	assert.Equal(t, "2023-06-01", s.LLM.APIVersion)
	assert.Equal(t, 4, s.Engine.Workers)
	assert.Equal(t, 120*time.Second, s.Engine.StepTimeout)
	assert.Equal(t, "grpc", s.ToolServer.Transport)
	assert.Equal(t, "localhost:50052", s.ToolServer.Addr)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric workers", "ENGINE_WORKERS", "many"},
		{"zero workers", "ENGINE_WORKERS", "0"},
		{"negative timeout", "STEP_TIMEOUT_DEFAULT_SECONDS", "-5"},
		{"bad scheduler flag", "SCHEDULER_ENABLED", "maybe"},
		{"unknown transport", "TOOLSERVER_TRANSPORT", "carrier-pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresTransportTarget(t *testing.T) {
	t.Setenv("TOOLSERVER_TRANSPORT", "grpc")
	_, err := Load()
	assert.Error(t, err, "grpc transport without TOOLSERVER_ADDR must be rejected")

	t.Setenv("TOOLSERVER_TRANSPORT", "mcp")
	_, err = Load()
	assert.Error(t, err, "mcp transport without a URL or command must be rejected")

	t.Setenv("TOOLSERVER_URL", "http://localhost:3000/mcp")
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/mcp", s.ToolServer.URL)
}
