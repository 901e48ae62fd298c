package models

// CreateScheduleRequest registers a cron-triggered workflow invocation
type CreateScheduleRequest struct {
	WorkflowID     int                    `json:"workflow_id"`
	CronExpression string                 `json:"cron_expression"`
	TriggerData    map[string]interface{} `json:"trigger_data,omitempty"`
}

// UpdateScheduleRequest carries a partial schedule update; nil fields are
// left untouched. Changing the cron expression recomputes next_run_at
type UpdateScheduleRequest struct {
	CronExpression *string                `json:"cron_expression,omitempty"`
	TriggerData    map[string]interface{} `json:"trigger_data,omitempty"`
}
