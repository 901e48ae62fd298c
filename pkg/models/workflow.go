package models

// CreateWorkflowRequest carries the administered fields of a new workflow
type CreateWorkflowRequest struct {
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	TriggerType   string                 `json:"trigger_type"`
	TriggerConfig map[string]interface{} `json:"trigger_config,omitempty"`
	ExecutionMode string                 `json:"execution_mode"`
	InputSchema   map[string]interface{} `json:"input_schema,omitempty"`
	InterfaceType string                 `json:"interface_type"`
	Public        bool                   `json:"public"`
}

// UpdateWorkflowRequest carries a partial workflow update; nil fields are
// left untouched
type UpdateWorkflowRequest struct {
	Name          *string                `json:"name,omitempty"`
	Description   *string                `json:"description,omitempty"`
	TriggerType   *string                `json:"trigger_type,omitempty"`
	TriggerConfig map[string]interface{} `json:"trigger_config,omitempty"`
	ExecutionMode *string                `json:"execution_mode,omitempty"`
	InputSchema   map[string]interface{} `json:"input_schema,omitempty"`
	InterfaceType *string                `json:"interface_type,omitempty"`
	Public        *bool                  `json:"public,omitempty"`
}

// StepRequest carries one workflow step definition
type StepRequest struct {
	StepOrder           int                    `json:"step_order"`
	StepType            string                 `json:"step_type"`
	AgentID             *int                   `json:"agent_id,omitempty"`
	Name                string                 `json:"name"`
	InputMapping        map[string]interface{} `json:"input_mapping,omitempty"`
	OutputVariable      string                 `json:"output_variable"`
	ConditionExpression string                 `json:"condition_expression"`
	DependsOn           []int                  `json:"depends_on,omitempty"`
	ApprovalConfig      map[string]interface{} `json:"approval_config,omitempty"`
	RetryConfig         map[string]interface{} `json:"retry_config,omitempty"`
	TimeoutSeconds      *int                   `json:"timeout_seconds,omitempty"`
}

// UpdateStepRequest carries a partial step update; nil fields are left
// untouched
type UpdateStepRequest struct {
	StepOrder           *int                   `json:"step_order,omitempty"`
	StepType            *string                `json:"step_type,omitempty"`
	AgentID             *int                   `json:"agent_id,omitempty"`
	Name                *string                `json:"name,omitempty"`
	InputMapping        map[string]interface{} `json:"input_mapping,omitempty"`
	OutputVariable      *string                `json:"output_variable,omitempty"`
	ConditionExpression *string                `json:"condition_expression,omitempty"`
	DependsOn           []int                  `json:"depends_on,omitempty"`
	ApprovalConfig      map[string]interface{} `json:"approval_config,omitempty"`
	RetryConfig         map[string]interface{} `json:"retry_config,omitempty"`
	TimeoutSeconds      *int                   `json:"timeout_seconds,omitempty"`
}

// StepReorder assigns a new order to one step
type StepReorder struct {
	StepID    int `json:"step_id"`
	StepOrder int `json:"step_order"`
}
