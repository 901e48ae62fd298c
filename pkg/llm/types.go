// Package llm drives LLM conversations for agent invocations. A Provider
// executes one API turn; the Driver runs the tool-use loop on top, feeding
// dispatched tool results back to the model until it stops.
package llm

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block types
const (
	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"
)

// Stop reasons, normalized to the Anthropic vocabulary
const (
	StopEndTurn   = "end_turn"
	StopToolUse   = "tool_use"
	StopMaxTokens = "max_tokens"
)

// ContentBlock is one piece of a message: text, a tool call requested by the
// model, or a tool result supplied back
type ContentBlock struct {
	Type string

	// Text payload (text)
	Text string

	// Tool call fields (tool_use)
	ID    string
	Name  string
	Input map[string]interface{}

	// Tool result fields (tool_result)
	ToolUseID string
	Content   string
	IsError   bool
}

// Message is one conversation turn
type Message struct {
	Role   string
	Blocks []ContentBlock
}

// UserText builds a user message holding a single text block
func UserText(text string) Message {
	return Message{
		Role:   RoleUser,
		Blocks: []ContentBlock{{Type: BlockText, Text: text}},
	}
}

// ToolDefinition advertises a callable tool to the model
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// Request is one provider API turn
type Request struct {
	Model       string
	System      string
	Messages    []Message
	Tools       []ToolDefinition
	Temperature float64
	MaxTokens   int
}

// Usage reports token consumption for one API turn
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the model's reply for one API turn. Blocks preserves the
// model's ordering of text and tool_use content
type Response struct {
	Blocks     []ContentBlock
	StopReason string
	Usage      Usage
}

// Text concatenates the text blocks in order
func (r *Response) Text() string {
	var out string
	for _, block := range r.Blocks {
		if block.Type != BlockText {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += block.Text
	}
	return out
}

// ToolCalls returns the tool_use blocks in model order
func (r *Response) ToolCalls() []ContentBlock {
	var calls []ContentBlock
	for _, block := range r.Blocks {
		if block.Type == BlockToolUse {
			calls = append(calls, block)
		}
	}
	return calls
}
