package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/batonworks/baton/pkg/engine"
)

// MessagesClient captures the subset of the Anthropic SDK client used by the
// provider. It is satisfied by *sdk.MessageService so tests can substitute a
// stub
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicProvider implements Provider over the Anthropic Messages API
type AnthropicProvider struct {
	msg MessagesClient
}

// NewAnthropicProvider creates a provider using the default Anthropic HTTP
// client with the given API key. A non-empty apiVersion overrides the SDK's
// default anthropic-version header
func NewAnthropicProvider(apiKey, apiVersion string, opts ...option.RequestOption) *AnthropicProvider {
	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if apiVersion != "" {
		clientOpts = append(clientOpts, option.WithHeader("anthropic-version", apiVersion))
	}
	clientOpts = append(clientOpts, opts...)
	ac := sdk.NewClient(clientOpts...)
	return &AnthropicProvider{msg: &ac.Messages}
}

// NewAnthropicProviderWithClient creates a provider over an existing
// messages client
func NewAnthropicProviderWithClient(msg MessagesClient) *AnthropicProvider {
	return &AnthropicProvider{msg: msg}
}

// Name returns the provider tag
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Complete sends one Messages API request and decodes the reply
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	msg, err := p.msg.New(ctx, encodeRequest(req))
	if err != nil {
		return nil, classifyAnthropicError(err)
	}
	return decodeResponse(msg), nil
}

func encodeRequest(req Request) sdk.MessageNewParams {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  encodeMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		params.Tools = encodeTools(req.Tools)
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	return params
}

func encodeMessages(messages []Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.Blocks))
		for _, b := range m.Blocks {
			switch b.Type {
			case BlockText:
				blocks = append(blocks, sdk.NewTextBlock(b.Text))
			case BlockToolUse:
				blocks = append(blocks, sdk.NewToolUseBlock(b.ID, b.Input, b.Name))
			case BlockToolResult:
				blocks = append(blocks, sdk.NewToolResultBlock(b.ToolUseID, b.Content, b.IsError))
			}
		}
		if m.Role == RoleAssistant {
			out = append(out, sdk.NewAssistantMessage(blocks...))
		} else {
			out = append(out, sdk.NewUserMessage(blocks...))
		}
	}
	return out
}

func encodeTools(defs []ToolDefinition) []sdk.ToolUnionParam {
	out := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		u := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: def.InputSchema}, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, u)
	}
	return out
}

func decodeResponse(msg *sdk.Message) *Response {
	resp := &Response{
		StopReason: string(msg.StopReason),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if block.Text == "" {
				continue
			}
			resp.Blocks = append(resp.Blocks, ContentBlock{Type: BlockText, Text: block.Text})
		case "tool_use":
			var input map[string]interface{}
			if len(block.Input) > 0 {
				// Malformed input JSON leaves the map nil; the dispatcher
				// reports that back to the model as a tool failure
				_ = json.Unmarshal(block.Input, &input)
			}
			resp.Blocks = append(resp.Blocks, ContentBlock{
				Type:  BlockToolUse,
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		}
	}
	return resp
}

// classifyAnthropicError maps SDK failures onto the engine taxonomy. Auth
// and invalid-request statuses surface immediately; everything else,
// including rate limits, 5xx and transport errors, is a retryable LLM
// failure
func classifyAnthropicError(err error) error {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return engine.WrapError(engine.KindInvalidArgument, "LLM authentication failed", err)
		case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
			return engine.WrapError(engine.KindInvalidArgument, "LLM rejected the request", err)
		}
	}
	return engine.WrapError(engine.KindLLMFailure, "LLM request failed", err)
}
