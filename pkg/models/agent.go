package models

// CreateAgentRequest carries the administered fields of a new agent
type CreateAgentRequest struct {
	Name         string                 `json:"name"`
	Provider     string                 `json:"provider"`
	Model        string                 `json:"model"`
	SystemPrompt string                 `json:"system_prompt"`
	Temperature  *float64               `json:"temperature,omitempty"`
	MaxTokens    *int                   `json:"max_tokens,omitempty"`
	Config       map[string]interface{} `json:"config,omitempty"`
}

// UpdateAgentRequest carries a partial agent update; nil fields are left
// untouched
type UpdateAgentRequest struct {
	Name         *string                `json:"name,omitempty"`
	Provider     *string                `json:"provider,omitempty"`
	Model        *string                `json:"model,omitempty"`
	SystemPrompt *string                `json:"system_prompt,omitempty"`
	Temperature  *float64               `json:"temperature,omitempty"`
	MaxTokens    *int                   `json:"max_tokens,omitempty"`
	Config       map[string]interface{} `json:"config,omitempty"`
}

// AssignToolRequest links a tool to an agent with an optional per-agent
// config override
type AssignToolRequest struct {
	ToolID int                    `json:"tool_id"`
	Config map[string]interface{} `json:"config,omitempty"`
}
