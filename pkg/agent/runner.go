// Package agent executes single agent invocations: load the agent row,
// assemble its tool catalog, drive the LLM conversation, and record the
// AgentExecution.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/batonworks/baton/ent"
	enttool "github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/llm"
	"github.com/batonworks/baton/pkg/models"
	"github.com/batonworks/baton/pkg/services"
	"github.com/batonworks/baton/pkg/tools"
)

// RunResult carries an agent invocation's output and token usage
type RunResult struct {
	Output       map[string]interface{}
	InputTokens  int
	OutputTokens int
}

// Runner runs agents against the LLM driver and records their executions
type Runner struct {
	agents        *services.AgentService
	executions    *services.AgentExecutionService
	driver        *llm.Driver
	dispatcher    *tools.Dispatcher
	hasToolServer bool
	logger        *slog.Logger
}

// NewRunner creates a runner. hasToolServer controls whether the reserved
// mcp_call tool is advertised to agents that link external tools
func NewRunner(agents *services.AgentService, executions *services.AgentExecutionService, driver *llm.Driver, dispatcher *tools.Dispatcher, hasToolServer bool) *Runner {
	return &Runner{
		agents:        agents,
		executions:    executions,
		driver:        driver,
		dispatcher:    dispatcher,
		hasToolServer: hasToolServer,
		logger:        slog.Default(),
	}
}

// Run executes one agent invocation. executionID and stepID link the
// recorded AgentExecution to its workflow step when the invocation happens
// inside a workflow
func (r *Runner) Run(ctx context.Context, agentID int, input interface{}, executionID, stepID *int) (*RunResult, error) {
	loaded, err := r.agents.GetAgent(ctx, agentID, true)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, engine.NewErrorf(engine.KindNotFound, "agent %d not found", agentID)
		}
		return nil, err
	}
	if !loaded.Active {
		return nil, engine.NewErrorf(engine.KindInactive, "agent %s is inactive", loaded.Name)
	}

	record, err := r.executions.StartAgentExecution(ctx, models.StartAgentExecutionRequest{
		AgentID:     agentID,
		ExecutionID: executionID,
		StepID:      stepID,
		Input:       inputDocument(input),
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Agent invocation started",
		"agent", loaded.Name, "agent_execution_id", record.ID)

	result, err := r.driver.Invoke(ctx, llm.InvokeSpec{
		Provider:       loaded.Provider,
		Model:          loaded.Model,
		System:         loaded.SystemPrompt,
		Temperature:    loaded.Temperature,
		MaxTokens:      loaded.MaxTokens,
		Tools:          r.buildCatalog(loaded),
		InitialContent: initialContent(input),
	}, r.dispatcher.Dispatch)
	if err != nil {
		if failErr := r.executions.FailAgentExecution(ctx, record.ID, err.Error()); failErr != nil {
			r.logger.Error("Failed to record agent failure",
				"agent_execution_id", record.ID, "error", failErr)
		}
		return nil, err
	}

	output := map[string]interface{}{
		"text":        result.Text,
		"stop_reason": result.StopReason,
	}
	if err := r.executions.CompleteAgentExecution(ctx, record.ID, output, result.InputTokens, result.OutputTokens); err != nil {
		return nil, err
	}

	return &RunResult{
		Output:       output,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
	}, nil
}

// buildCatalog assembles tool definitions from the agent's active linked
// tools. When a tool server is deployed and the agent links at least one
// external tool, the reserved mcp_call proxy is advertised as well
func (r *Runner) buildCatalog(loaded *ent.Agent) []llm.ToolDefinition {
	var catalog []llm.ToolDefinition
	hasExternal := false
	for _, link := range loaded.Edges.AgentTools {
		linked := link.Edges.Tool
		if linked == nil || !linked.Active {
			continue
		}
		if linked.ToolType == enttool.ToolTypeExternal {
			hasExternal = true
		}
		catalog = append(catalog, llm.ToolDefinition{
			Name:        linked.Name,
			Description: linked.Description,
			InputSchema: linked.InputSchema,
		})
	}
	if hasExternal && r.hasToolServer {
		catalog = append(catalog, mcpCallDefinition())
	}
	return catalog
}

// mcpCallDefinition advertises the tool-server proxy to the model
func mcpCallDefinition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        tools.ReservedMCPCall,
		Description: "Call a tool hosted on the external tool server. Pass the tool's name and its arguments object.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"tool_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the tool to call",
				},
				"arguments": map[string]interface{}{
					"type":        "object",
					"description": "Arguments for the tool",
				},
			},
			"required": []string{"tool_name"},
		},
	}
}

// inputDocument shapes the invocation input for the AgentExecution row
func inputDocument(input interface{}) map[string]interface{} {
	switch v := input.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return v
	default:
		return map[string]interface{}{"value": v}
	}
}

// initialContent renders the input as the first user message: strings pass
// through, everything else is compact JSON
func initialContent(input interface{}) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
