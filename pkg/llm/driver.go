package llm

import (
	"context"
	"log/slog"
	"sync"

	"github.com/batonworks/baton/pkg/engine"
)

// maxToolTurns caps how many tool-use rounds one invocation may take
const maxToolTurns = 10

// DispatchFunc executes one tool call and returns the payload the model
// sees. Failures are encoded into the payload, never returned
type DispatchFunc func(ctx context.Context, name string, input map[string]interface{}) string

// InvokeSpec describes one agent invocation
type InvokeSpec struct {
	Provider    string
	Model       string
	System      string
	Temperature float64
	MaxTokens   int
	Tools       []ToolDefinition
	// InitialContent is the first user message
	InitialContent string
}

// Result is the final outcome of an invocation, with token usage summed
// across all API turns
type Result struct {
	Text         string
	StopReason   string
	InputTokens  int
	OutputTokens int
}

// Driver runs the tool-use conversation loop against a provider registry
type Driver struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDriver creates a driver over the given registry
func NewDriver(registry *Registry) *Driver {
	return &Driver{
		registry: registry,
		logger:   slog.Default(),
	}
}

// Invoke runs a full conversation: send the initial user message, and while
// the model stops for tool use, dispatch every requested call and feed the
// results back. The assistant's blocks are echoed verbatim; results travel
// in a single user message tagged by tool-use id, in request order
func (d *Driver) Invoke(ctx context.Context, spec InvokeSpec, dispatch DispatchFunc) (*Result, error) {
	provider, err := d.registry.Get(spec.Provider)
	if err != nil {
		return nil, err
	}

	messages := []Message{UserText(spec.InitialContent)}
	result := &Result{}
	toolTurns := 0

	for {
		resp, err := provider.Complete(ctx, Request{
			Model:       spec.Model,
			System:      spec.System,
			Messages:    messages,
			Tools:       spec.Tools,
			Temperature: spec.Temperature,
			MaxTokens:   spec.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		result.InputTokens += resp.Usage.InputTokens
		result.OutputTokens += resp.Usage.OutputTokens

		if resp.StopReason != StopToolUse {
			result.Text = resp.Text()
			result.StopReason = resp.StopReason
			return result, nil
		}

		if toolTurns >= maxToolTurns {
			return nil, engine.NewErrorf(engine.KindMaxIterations, "exceeded %d tool-use turns", maxToolTurns)
		}
		toolTurns++

		calls := resp.ToolCalls()
		d.logger.Debug("Dispatching tool calls", "turn", toolTurns, "count", len(calls))

		messages = append(messages,
			Message{Role: RoleAssistant, Blocks: resp.Blocks},
			Message{Role: RoleUser, Blocks: d.dispatchAll(ctx, calls, dispatch)},
		)
	}
}

// dispatchAll runs the requested calls concurrently and reassembles the
// results in request order
func (d *Driver) dispatchAll(ctx context.Context, calls []ContentBlock, dispatch DispatchFunc) []ContentBlock {
	results := make([]ContentBlock, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call ContentBlock) {
			defer wg.Done()
			results[i] = ContentBlock{
				Type:      BlockToolResult,
				ToolUseID: call.ID,
				Content:   dispatch(ctx, call.Name, call.Input),
			}
		}(i, call)
	}
	wg.Wait()
	return results
}
