package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/toolserver"
)

func decodePayload(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	return decoded
}

func TestDispatch(t *testing.T) {
	t.Run("registered handler", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		d.Register("summarize", func(_ context.Context, input map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"summary": input["text"]}, nil
		})

		result := d.Dispatch(context.Background(), "summarize", map[string]interface{}{"text": "long report"})

		decoded := decodePayload(t, result)
		assert.Equal(t, "long report", decoded["summary"])
	})

	t.Run("string results pass through verbatim", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		d.Register("echo", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			return "plain text answer", nil
		})

		assert.Equal(t, "plain text answer", d.Dispatch(context.Background(), "echo", nil))
	})

	t.Run("unregistered tool returns stub", func(t *testing.T) {
		d := NewDispatcher(nil, nil)

		result := d.Dispatch(context.Background(), "crystal_ball", map[string]interface{}{"question": "why"})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["message"], "crystal_ball")
		input := decoded["input"].(map[string]interface{})
		assert.Equal(t, "why", input["question"])
	})

	t.Run("handler error becomes model-visible payload", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		d.Register("flaky", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			return nil, errors.New("backend exploded")
		})

		result := d.Dispatch(context.Background(), "flaky", nil)

		decoded := decodePayload(t, result)
		assert.Equal(t, "backend exploded", decoded["error"])
		assert.Equal(t, "flaky", decoded["tool"])
	})
}

// mapResolver resolves handler references from a fixed name-to-ref map
type mapResolver struct {
	refs map[string]string
	err  error
}

func (r *mapResolver) ResolveHandler(_ context.Context, name string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.refs[name], nil
}

func TestDispatchHandlerResolution(t *testing.T) {
	t.Run("registry is keyed by handler reference, not tool name", func(t *testing.T) {
		resolver := &mapResolver{refs: map[string]string{"order_lookup": "OrderLookupHandler"}}
		d := NewDispatcher(nil, resolver)
		d.Register("OrderLookupHandler", func(_ context.Context, input map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"order": input["id"], "status": "shipped"}, nil
		})

		result := d.Dispatch(context.Background(), "order_lookup", map[string]interface{}{"id": "42"})

		decoded := decodePayload(t, result)
		assert.Equal(t, "42", decoded["order"])
		assert.Equal(t, "shipped", decoded["status"])
	})

	t.Run("tool without a handler reference falls back to its name", func(t *testing.T) {
		resolver := &mapResolver{refs: map[string]string{}}
		d := NewDispatcher(nil, resolver)
		d.Register("echo", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			return "echoed", nil
		})

		assert.Equal(t, "echoed", d.Dispatch(context.Background(), "echo", nil))
	})

	t.Run("resolution failure degrades to the stub payload", func(t *testing.T) {
		resolver := &mapResolver{err: errors.New("database unavailable")}
		d := NewDispatcher(nil, resolver)
		d.Register("OrderLookupHandler", func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			return "should not run", nil
		})

		result := d.Dispatch(context.Background(), "order_lookup", map[string]interface{}{"id": "42"})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["message"], "order_lookup")
	})
}

func TestDispatchMCP(t *testing.T) {
	t.Run("delegates to the tool server", func(t *testing.T) {
		server := toolserver.NewScriptedClient().Script("search_kb", `{"hits": 3}`)
		d := NewDispatcher(server, nil)

		result := d.Dispatch(context.Background(), ReservedMCPCall, map[string]interface{}{
			"tool_name": "search_kb",
			"arguments": map[string]interface{}{"query": "timeout"},
		})
		assert.Equal(t, `{"hits": 3}`, result)

		calls := server.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "search_kb", calls[0].Name)
		assert.Equal(t, "timeout", calls[0].Args["query"])
	})

	t.Run("missing tool_name", func(t *testing.T) {
		d := NewDispatcher(toolserver.NewScriptedClient(), nil)

		result := d.Dispatch(context.Background(), ReservedMCPCall, map[string]interface{}{
			"arguments": map[string]interface{}{},
		})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["error"], "tool_name")
	})

	t.Run("non-object arguments", func(t *testing.T) {
		d := NewDispatcher(toolserver.NewScriptedClient(), nil)

		result := d.Dispatch(context.Background(), ReservedMCPCall, map[string]interface{}{
			"tool_name": "search_kb",
			"arguments": "not an object",
		})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["error"], "arguments")
	})

	t.Run("no tool server configured", func(t *testing.T) {
		d := NewDispatcher(nil, nil)

		result := d.Dispatch(context.Background(), ReservedMCPCall, map[string]interface{}{
			"tool_name": "search_kb",
		})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["error"], "no tool server")
	})

	t.Run("server failure becomes model-visible payload", func(t *testing.T) {
		server := toolserver.NewScriptedClient().
			ScriptError("search_kb", errors.New("connection refused"))
		d := NewDispatcher(server, nil)

		result := d.Dispatch(context.Background(), ReservedMCPCall, map[string]interface{}{
			"tool_name": "search_kb",
			"arguments": map[string]interface{}{},
		})

		decoded := decodePayload(t, result)
		assert.Contains(t, decoded["error"], "connection refused")
		assert.Equal(t, "search_kb", decoded["tool"])
	})
}
