package llm

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/engine"
)

func newScriptedDriver(provider *ScriptedProvider) *Driver {
	registry := NewRegistry()
	registry.Register(provider)
	return NewDriver(registry)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewScriptedProvider("scripted"))

	p, err := registry.Get("scripted")
	require.NoError(t, err)
	assert.Equal(t, "scripted", p.Name())

	_, err = registry.Get("unknown")
	require.Error(t, err)
	assert.True(t, engine.IsKind(err, engine.KindProviderUnsupported))
}

func TestDriverInvoke(t *testing.T) {
	t.Run("plain completion", func(t *testing.T) {
		provider := NewScriptedProvider("scripted").Respond(&Response{
			Blocks: []ContentBlock{
				{Type: BlockText, Text: "first"},
				{Type: BlockText, Text: "second"},
			},
			StopReason: StopEndTurn,
			Usage:      Usage{InputTokens: 12, OutputTokens: 7},
		})
		driver := newScriptedDriver(provider)

		result, err := driver.Invoke(context.Background(), InvokeSpec{
			Provider:       "scripted",
			Model:          "claude-sonnet-4-5",
			InitialContent: "analyze this",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, "first\nsecond", result.Text)
		assert.Equal(t, StopEndTurn, result.StopReason)
		assert.Equal(t, 12, result.InputTokens)
		assert.Equal(t, 7, result.OutputTokens)

		requests := provider.Requests()
		require.Len(t, requests, 1)
		require.Len(t, requests[0].Messages, 1)
		first := requests[0].Messages[0]
		assert.Equal(t, RoleUser, first.Role)
		assert.Equal(t, "analyze this", first.Blocks[0].Text)
	})

	t.Run("tool-use round trip", func(t *testing.T) {
		toolUse := &Response{
			Blocks: []ContentBlock{
				{Type: BlockText, Text: "let me check"},
				{Type: BlockToolUse, ID: "tu_1", Name: "lookup", Input: map[string]interface{}{"q": "a"}},
				{Type: BlockToolUse, ID: "tu_2", Name: "fetch", Input: map[string]interface{}{"q": "b"}},
			},
			StopReason: StopToolUse,
			Usage:      Usage{InputTokens: 10, OutputTokens: 5},
		}
		provider := NewScriptedProvider("scripted").
			Respond(toolUse).
			RespondText("all done", 20, 8)
		driver := newScriptedDriver(provider)

		var mu sync.Mutex
		var dispatched []string
		dispatch := func(_ context.Context, name string, input map[string]interface{}) string {
			mu.Lock()
			defer mu.Unlock()
			dispatched = append(dispatched, name)
			return fmt.Sprintf("result of %s(%v)", name, input["q"])
		}

		result, err := driver.Invoke(context.Background(), InvokeSpec{
			Provider:       "scripted",
			InitialContent: "go",
		}, dispatch)
		require.NoError(t, err)

		assert.Equal(t, "all done", result.Text)
		assert.Equal(t, 30, result.InputTokens)
		assert.Equal(t, 13, result.OutputTokens)
		assert.ElementsMatch(t, []string{"lookup", "fetch"}, dispatched)

		requests := provider.Requests()
		require.Len(t, requests, 2)
		second := requests[1].Messages
		require.Len(t, second, 3)

		// Assistant blocks echoed verbatim
		assert.Equal(t, RoleAssistant, second[1].Role)
		assert.Equal(t, toolUse.Blocks, second[1].Blocks)

		// Tool results ride back in one user message, in request order
		assert.Equal(t, RoleUser, second[2].Role)
		require.Len(t, second[2].Blocks, 2)
		assert.Equal(t, "tu_1", second[2].Blocks[0].ToolUseID)
		assert.Equal(t, "result of lookup(a)", second[2].Blocks[0].Content)
		assert.Equal(t, "tu_2", second[2].Blocks[1].ToolUseID)
		assert.Equal(t, "result of fetch(b)", second[2].Blocks[1].Content)
	})

	t.Run("results keep request order under concurrency", func(t *testing.T) {
		provider := NewScriptedProvider("scripted").
			Respond(&Response{
				Blocks: []ContentBlock{
					{Type: BlockToolUse, ID: "tu_a", Name: "slow"},
					{Type: BlockToolUse, ID: "tu_b", Name: "medium"},
					{Type: BlockToolUse, ID: "tu_c", Name: "fast"},
				},
				StopReason: StopToolUse,
			}).
			RespondText("done", 0, 0)
		driver := newScriptedDriver(provider)

		delays := map[string]time.Duration{"slow": 30 * time.Millisecond, "medium": 10 * time.Millisecond}
		dispatch := func(_ context.Context, name string, _ map[string]interface{}) string {
			time.Sleep(delays[name])
			return name
		}

		_, err := driver.Invoke(context.Background(), InvokeSpec{Provider: "scripted"}, dispatch)
		require.NoError(t, err)

		results := provider.Requests()[1].Messages[2].Blocks
		require.Len(t, results, 3)
		assert.Equal(t, "tu_a", results[0].ToolUseID)
		assert.Equal(t, "tu_b", results[1].ToolUseID)
		assert.Equal(t, "tu_c", results[2].ToolUseID)
	})

	t.Run("caps tool-use turns", func(t *testing.T) {
		provider := NewScriptedProvider("scripted").Respond(&Response{
			Blocks:     []ContentBlock{{Type: BlockToolUse, ID: "tu_1", Name: "loop"}},
			StopReason: StopToolUse,
			Usage:      Usage{InputTokens: 1, OutputTokens: 1},
		})
		driver := newScriptedDriver(provider)

		var mu sync.Mutex
		count := 0
		dispatch := func(_ context.Context, _ string, _ map[string]interface{}) string {
			mu.Lock()
			defer mu.Unlock()
			count++
			return "again"
		}

		_, err := driver.Invoke(context.Background(), InvokeSpec{Provider: "scripted"}, dispatch)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindMaxIterations))
		assert.Equal(t, maxToolTurns, count)
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		provider := NewScriptedProvider("scripted").
			RespondError(engine.NewError(engine.KindLLMFailure, "upstream 503"))
		driver := newScriptedDriver(provider)

		_, err := driver.Invoke(context.Background(), InvokeSpec{Provider: "scripted"}, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindLLMFailure))
		assert.True(t, engine.IsRetryable(err))
	})

	t.Run("unknown provider", func(t *testing.T) {
		driver := NewDriver(NewRegistry())

		_, err := driver.Invoke(context.Background(), InvokeSpec{Provider: "mystery"}, nil)
		require.Error(t, err)
		assert.True(t, engine.IsKind(err, engine.KindProviderUnsupported))
	})
}
