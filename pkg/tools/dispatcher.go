// Package tools routes tool calls coming out of the LLM driver. The
// reserved mcp_call tool goes to the external tool server; everything else
// resolves against an in-process handler registry.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/batonworks/baton/pkg/toolserver"
)

// ReservedMCPCall is the tool name that proxies to the external tool server
const ReservedMCPCall = "mcp_call"

// Handler executes an in-process tool call
type Handler func(ctx context.Context, input map[string]interface{}) (interface{}, error)

// HandlerResolver maps a model-facing tool name to its handler reference,
// normally backed by the tools table
type HandlerResolver interface {
	ResolveHandler(ctx context.Context, name string) (string, error)
}

// Dispatcher resolves tool calls. The model calls tools by name; the
// in-process registry is keyed by handler reference, with the name-to-
// handler mapping supplied by the resolver. Every dispatch returns a
// model-visible payload: failures come back as stringified error objects,
// never as Go errors, so the model can observe and react to them
type Dispatcher struct {
	server   toolserver.Client
	resolver HandlerResolver

	mu       sync.RWMutex
	handlers map[string]Handler

	logger *slog.Logger
}

// NewDispatcher creates a dispatcher. The tool-server client may be nil
// when no external tools are deployed; a nil resolver keys the registry by
// tool name directly
func NewDispatcher(server toolserver.Client, resolver HandlerResolver) *Dispatcher {
	return &Dispatcher{
		server:   server,
		resolver: resolver,
		handlers: make(map[string]Handler),
		logger:   slog.Default(),
	}
}

// Register binds an in-process handler to a tool's handler reference
func (d *Dispatcher) Register(ref string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[ref] = handler
}

// Dispatch executes one tool call and returns the result payload
func (d *Dispatcher) Dispatch(ctx context.Context, name string, input map[string]interface{}) string {
	if name == ReservedMCPCall {
		return d.dispatchMCP(ctx, input)
	}

	key := d.handlerKey(ctx, name)
	d.mu.RLock()
	handler, ok := d.handlers[key]
	d.mu.RUnlock()

	if !ok {
		return stubResult(name, input)
	}

	result, err := handler(ctx, input)
	if err != nil {
		d.logger.Warn("Tool handler failed", "tool", name, "error", err)
		return errorResult(name, err)
	}
	return stringify(name, result)
}

// handlerKey resolves a tool name to its registry key. Unknown tools and
// tools without a handler reference fall back to the name itself, so
// resolution failures degrade to the stub path instead of blocking the
// conversation
func (d *Dispatcher) handlerKey(ctx context.Context, name string) string {
	if d.resolver == nil {
		return name
	}
	ref, err := d.resolver.ResolveHandler(ctx, name)
	if err != nil {
		d.logger.Warn("Tool handler resolution failed", "tool", name, "error", err)
		return name
	}
	if ref == "" {
		return name
	}
	return ref
}

// dispatchMCP unwraps the reserved mcp_call envelope and delegates to the
// tool server
func (d *Dispatcher) dispatchMCP(ctx context.Context, input map[string]interface{}) string {
	if d.server == nil {
		return errorResult(ReservedMCPCall, fmt.Errorf("no tool server configured"))
	}

	toolName, ok := input["tool_name"].(string)
	if !ok || toolName == "" {
		return errorResult(ReservedMCPCall, fmt.Errorf("mcp_call requires a tool_name string"))
	}
	arguments, ok := input["arguments"].(map[string]interface{})
	if input["arguments"] != nil && !ok {
		return errorResult(ReservedMCPCall, fmt.Errorf("mcp_call arguments must be an object"))
	}

	result, err := d.server.CallTool(ctx, toolName, arguments)
	if err != nil {
		d.logger.Warn("Tool server call failed", "tool", toolName, "error", err)
		return errorResult(toolName, err)
	}
	return result
}

// stubResult answers for tools with no registered handler, keeping the
// conversation loop functional without a real implementation
func stubResult(name string, input map[string]interface{}) string {
	payload, err := json.Marshal(map[string]interface{}{
		"message": fmt.Sprintf("no handler registered for tool %q", name),
		"input":   input,
	})
	if err != nil {
		return fmt.Sprintf(`{"message":"no handler registered for tool %q"}`, name)
	}
	return string(payload)
}

// errorResult encodes a tool failure as a model-visible payload
func errorResult(name string, callErr error) string {
	payload, err := json.Marshal(map[string]interface{}{
		"error": callErr.Error(),
		"tool":  name,
	})
	if err != nil {
		return fmt.Sprintf(`{"error":"tool %s failed"}`, name)
	}
	return string(payload)
}

// stringify renders a handler result as the tool result payload
func stringify(name string, result interface{}) string {
	if s, ok := result.(string); ok {
		return s
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return errorResult(name, fmt.Errorf("result not serializable: %v", err))
	}
	return string(payload)
}
