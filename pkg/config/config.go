// Package config loads process configuration from the environment. Workflow
// and agent definitions live in the database; the environment only carries
// infrastructure settings (LLM credentials, tool-server endpoint, engine
// tuning, HTTP port).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LLMConfig configures the outbound LLM provider
type LLMConfig struct {
	// Provider is the default provider tag registered at startup
	Provider string

	// APIKey authenticates against the provider
	APIKey string

	// APIVersion is the provider wire version tag, when the provider
	// distinguishes versions
	APIVersion string
}

// ToolServerConfig configures the external tool-server connection. An empty
// Transport disables the tool server; agents then see stub results for
// unregistered tools
type ToolServerConfig struct {
	// Transport selects "mcp" or "grpc"; empty disables the tool server
	Transport string

	// Addr is the gRPC gateway target
	Addr string

	// URL is the MCP streamable-HTTP endpoint
	URL string

	// Command launches an MCP stdio server as a subprocess
	Command string

	// Timeout bounds each tool call
	Timeout time.Duration
}

// EngineConfig tunes the execution engine
type EngineConfig struct {
	// Workers is the run-queue worker count
	Workers int

	// PollInterval paces idle queue workers
	PollInterval time.Duration

	// StepTimeout applies to steps without an explicit timeout_seconds
	StepTimeout time.Duration

	// ApprovalSweepInterval paces the approval timeout sweeper
	ApprovalSweepInterval time.Duration
}

// Settings is the full process configuration
type Settings struct {
	// Port is the admin HTTP bind port
	Port string

	// SchedulerEnabled controls the per-minute cron tick
	SchedulerEnabled bool

	LLM        LLMConfig
	ToolServer ToolServerConfig
	Engine     EngineConfig
}

// Load reads Settings from the environment, applying defaults and
// validating the handful of values that can be malformed. Database settings
// are loaded separately by pkg/database
func Load() (*Settings, error) {
	s := &Settings{
		Port:             getEnvOrDefault("PORT", "8080"),
		SchedulerEnabled: true,
		LLM: LLMConfig{
			Provider:   getEnvOrDefault("LLM_PROVIDER", "anthropic"),
			APIKey:     os.Getenv("LLM_API_KEY"),
			APIVersion: os.Getenv("LLM_API_VERSION"),
		},
		ToolServer: ToolServerConfig{
			Transport: os.Getenv("TOOLSERVER_TRANSPORT"),
			Addr:      os.Getenv("TOOLSERVER_ADDR"),
			URL:       os.Getenv("TOOLSERVER_URL"),
			Command:   os.Getenv("TOOLSERVER_COMMAND"),
		},
	}

	enabled, err := parseBool("SCHEDULER_ENABLED", true)
	if err != nil {
		return nil, err
	}
	s.SchedulerEnabled = enabled

	if s.Engine.Workers, err = parseInt("ENGINE_WORKERS", 2); err != nil {
		return nil, err
	}
	if s.Engine.Workers < 1 {
		return nil, fmt.Errorf("ENGINE_WORKERS must be at least 1, got %d", s.Engine.Workers)
	}
	if s.Engine.PollInterval, err = parseSeconds("ENGINE_POLL_INTERVAL_SECONDS", 1); err != nil {
		return nil, err
	}
	if s.Engine.StepTimeout, err = parseSeconds("STEP_TIMEOUT_DEFAULT_SECONDS", 300); err != nil {
		return nil, err
	}
	if s.Engine.ApprovalSweepInterval, err = parseSeconds("APPROVAL_SWEEP_INTERVAL_SECONDS", 60); err != nil {
		return nil, err
	}
	if s.ToolServer.Timeout, err = parseSeconds("TOOLSERVER_TIMEOUT_SECONDS", 30); err != nil {
		return nil, err
	}

	switch s.ToolServer.Transport {
	case "", "mcp", "grpc":
	default:
		return nil, fmt.Errorf("TOOLSERVER_TRANSPORT must be mcp or grpc, got %q", s.ToolServer.Transport)
	}
	if s.ToolServer.Transport == "grpc" && s.ToolServer.Addr == "" {
		return nil, fmt.Errorf("TOOLSERVER_ADDR is required when TOOLSERVER_TRANSPORT=grpc")
	}
	if s.ToolServer.Transport == "mcp" && s.ToolServer.URL == "" && s.ToolServer.Command == "" {
		return nil, fmt.Errorf("TOOLSERVER_URL or TOOLSERVER_COMMAND is required when TOOLSERVER_TRANSPORT=mcp")
	}

	return s, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseSeconds(key string, defaultSeconds int) (time.Duration, error) {
	seconds, err := parseInt(key, defaultSeconds)
	if err != nil {
		return 0, err
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
