// Baton orchestrator server: serves the admin HTTP API, runs the
// execution queue workers, fires cron schedules, and sweeps approval
// timeouts.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	agentpkg "github.com/batonworks/baton/pkg/agent"
	"github.com/batonworks/baton/pkg/api"
	"github.com/batonworks/baton/pkg/approval"
	"github.com/batonworks/baton/pkg/config"
	"github.com/batonworks/baton/pkg/database"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/orchestrator"
	"github.com/batonworks/baton/pkg/queue"
	"github.com/batonworks/baton/pkg/scheduler"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
	"github.com/batonworks/baton/pkg/toolserver"
	"github.com/batonworks/baton/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using existing environment")
	}

	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting baton",
		"version", version.Full(),
		"port", settings.Port,
		"workers", settings.Engine.Workers,
		"llm_provider", settings.LLM.Provider,
		"scheduler_enabled", settings.SchedulerEnabled)

	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Services
	agents := services.NewAgentService(dbClient.Client)
	toolsSvc := services.NewToolService(dbClient.Client)
	workflows := services.NewWorkflowService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client)
	agentExecutions := services.NewAgentExecutionService(dbClient.Client)
	approvals := services.NewApprovalService(dbClient.Client)
	schedules := services.NewScheduleService(dbClient.Client)
	knowledge := services.NewKnowledgeService(dbClient.Client)

	// LLM providers
	registry := llm.NewRegistry()
	registry.Register(llm.NewAnthropicProvider(settings.LLM.APIKey, settings.LLM.APIVersion))
	driver := llm.NewDriver(registry)

	// Tool server (optional)
	var toolServer toolserver.Client
	if settings.ToolServer.Transport != "" {
		toolServer, err = toolserver.NewClient(toolserver.Config{
			Transport: settings.ToolServer.Transport,
			Addr:      settings.ToolServer.Addr,
			URL:       settings.ToolServer.URL,
			Command:   settings.ToolServer.Command,
			Timeout:   settings.ToolServer.Timeout,
		})
		if err != nil {
			slog.Error("Failed to initialize tool-server client", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := toolServer.Close(); err != nil {
				slog.Error("Error closing tool-server client", "error", err)
			}
		}()
		slog.Info("Tool-server client initialized",
			"transport", settings.ToolServer.Transport)
	}

	dispatcher := tools.NewDispatcher(toolServer, toolsSvc)
	runner := agentpkg.NewRunner(agents, agentExecutions, driver, dispatcher, toolServer != nil)

	// Engine
	orch := orchestrator.New(workflows, executions, approvals, runner, settings.Engine.StepTimeout)

	pool := queue.NewWorkerPool(dbClient.Client, orch, queue.Config{
		Workers:      settings.Engine.Workers,
		PollInterval: settings.Engine.PollInterval,
		PollJitter:   settings.Engine.PollInterval / 4,
	})
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	coordinator := approval.NewCoordinator(approvals, executions, orch, pool)
	sweeper := approval.NewSweeper(coordinator, settings.Engine.ApprovalSweepInterval)
	sweeper.Start(ctx)

	var cronScheduler *scheduler.Scheduler
	if settings.SchedulerEnabled {
		cronScheduler = scheduler.New(schedules, orch, pool)
		cronScheduler.Start(ctx)
	}

	// Admin HTTP server
	httpServer := api.NewServer(api.Deps{
		DB:              dbClient,
		Agents:          agents,
		Tools:           toolsSvc,
		Workflows:       workflows,
		Executions:      executions,
		AgentExecutions: agentExecutions,
		Approvals:       approvals,
		Schedules:       schedules,
		Knowledge:       knowledge,
		Orchestrator:    orch,
		Coordinator:     coordinator,
		Pool:            pool,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + settings.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Baton started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop intake first, then drain the engine
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	pool.Stop()

	slog.Info("Baton shutdown complete")
}
