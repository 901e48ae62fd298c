package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/pkg/engine"
)

type stubMessagesClient struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessagesClient) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func TestAnthropicEncodesRequest(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{StopReason: sdk.StopReasonEndTurn},
	}
	provider := NewAnthropicProviderWithClient(stub)

	_, err := provider.Complete(context.Background(), Request{
		Model:       "claude-sonnet-4-5",
		System:      "You are a triage assistant",
		Temperature: 0.2,
		MaxTokens:   2048,
		Tools: []ToolDefinition{{
			Name:        "lookup",
			Description: "Look up a record",
			InputSchema: map[string]interface{}{"type": "object"},
		}},
		Messages: []Message{
			UserText("hello"),
			{Role: RoleAssistant, Blocks: []ContentBlock{
				{Type: BlockText, Text: "checking"},
				{Type: BlockToolUse, ID: "tu_1", Name: "lookup", Input: map[string]interface{}{"id": "7"}},
			}},
			{Role: RoleUser, Blocks: []ContentBlock{
				{Type: BlockToolResult, ToolUseID: "tu_1", Content: `{"found":true}`},
			}},
		},
	})
	require.NoError(t, err)

	params := stub.lastParams
	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), params.Model)
	assert.Equal(t, int64(2048), params.MaxTokens)
	require.Len(t, params.System, 1)
	assert.Equal(t, "You are a triage assistant", params.System[0].Text)
	assert.Equal(t, 0.2, params.Temperature.Value)
	require.Len(t, params.Tools, 1)
	require.NotNil(t, params.Tools[0].OfTool)
	assert.Equal(t, "lookup", params.Tools[0].OfTool.Name)
	assert.Len(t, params.Messages, 3)
}

func TestAnthropicDecodesResponse(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "let me check"},
				{Type: "tool_use", ID: "tu_9", Name: "lookup", Input: json.RawMessage(`{"q":"x"}`)},
			},
			StopReason: sdk.StopReasonToolUse,
			Usage:      sdk.Usage{InputTokens: 15, OutputTokens: 6},
		},
	}
	provider := NewAnthropicProviderWithClient(stub)

	resp, err := provider.Complete(context.Background(), Request{
		Model:     "claude-sonnet-4-5",
		MaxTokens: 1024,
		Messages:  []Message{UserText("go")},
	})
	require.NoError(t, err)

	assert.Equal(t, StopToolUse, resp.StopReason)
	assert.Equal(t, 15, resp.Usage.InputTokens)
	assert.Equal(t, 6, resp.Usage.OutputTokens)

	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, "let me check", resp.Blocks[0].Text)

	call := resp.Blocks[1]
	assert.Equal(t, BlockToolUse, call.Type)
	assert.Equal(t, "tu_9", call.ID)
	assert.Equal(t, "lookup", call.Name)
	assert.Equal(t, "x", call.Input["q"])

	calls := resp.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tu_9", calls[0].ID)
}

func TestAnthropicVersionHeader(t *testing.T) {
	const body = `{
		"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5",
		"content": [{"type": "text", "text": "ok"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`

	var gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	provider := NewAnthropicProvider("test-key", "2023-06-01", option.WithBaseURL(server.URL))

	resp, err := provider.Complete(context.Background(), Request{
		Model:     "claude-sonnet-4-5",
		MaxTokens: 16,
		Messages:  []Message{UserText("ping")},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Blocks[0].Text)
	assert.Equal(t, "2023-06-01", gotVersion)
}

func TestClassifyAnthropicError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      engine.Kind
		retryable bool
	}{
		{"unauthorized", &sdk.Error{StatusCode: 401}, engine.KindInvalidArgument, false},
		{"forbidden", &sdk.Error{StatusCode: 403}, engine.KindInvalidArgument, false},
		{"bad request", &sdk.Error{StatusCode: 400}, engine.KindInvalidArgument, false},
		{"rate limited", &sdk.Error{StatusCode: 429}, engine.KindLLMFailure, true},
		{"server error", &sdk.Error{StatusCode: 500}, engine.KindLLMFailure, true},
		{"overloaded", &sdk.Error{StatusCode: 529}, engine.KindLLMFailure, true},
		{"transport failure", errors.New("connection refused"), engine.KindLLMFailure, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyAnthropicError(tt.err)
			assert.True(t, engine.IsKind(classified, tt.kind))
			assert.Equal(t, tt.retryable, engine.IsRetryable(classified))
		})
	}
}
