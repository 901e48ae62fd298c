package models

// CreateToolRequest carries the administered fields of a new tool
type CreateToolRequest struct {
	Name        string                 `json:"name"`
	ToolType    string                 `json:"tool_type"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema,omitempty"`
	Handler     string                 `json:"handler"`
}

// UpdateToolRequest carries a partial tool update; nil fields are left
// untouched
type UpdateToolRequest struct {
	Name        *string                `json:"name,omitempty"`
	ToolType    *string                `json:"tool_type,omitempty"`
	Description *string                `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"input_schema,omitempty"`
	Handler     *string                `json:"handler,omitempty"`
}

// ToolFilters narrows tool listings
type ToolFilters struct {
	ToolType   string
	ActiveOnly bool
}
