package models

import "github.com/batonworks/baton/ent"

// ExecutionFilters narrows execution listings
type ExecutionFilters struct {
	WorkflowID int
	Status     string
	Limit      int
	Offset     int
}

// ExecutionListResponse is a paged execution listing
type ExecutionListResponse struct {
	Executions []*ent.WorkflowExecution `json:"executions"`
	TotalCount int                      `json:"total_count"`
	Limit      int                      `json:"limit"`
	Offset     int                      `json:"offset"`
}

// ExecuteWorkflowRequest triggers a workflow run
type ExecuteWorkflowRequest struct {
	TriggerData map[string]interface{} `json:"trigger_data,omitempty"`
}

// StartAgentExecutionRequest opens an agent execution record. ExecutionID
// and StepID stay nil for standalone invocations outside any workflow
type StartAgentExecutionRequest struct {
	AgentID     int                    `json:"agent_id"`
	ExecutionID *int                   `json:"execution_id,omitempty"`
	StepID      *int                   `json:"step_id,omitempty"`
	Input       map[string]interface{} `json:"input,omitempty"`
}
