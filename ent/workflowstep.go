// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowstep"
)

// WorkflowStep is the model entity for the WorkflowStep schema.
type WorkflowStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID int `json:"workflow_id,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// StepType holds the value of the "step_type" field.
	StepType workflowstep.StepType `json:"step_type,omitempty"`
	// Required iff step_type is 'agent'
	AgentID *int `json:"agent_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Template with ${path} leaves; nil passes the whole context through
	InputMapping map[string]interface{} `json:"input_mapping,omitempty"`
	// Context key receiving the step output
	OutputVariable string `json:"output_variable,omitempty"`
	// Skip predicate: when it evaluates true the step is skipped
	ConditionExpression string `json:"condition_expression,omitempty"`
	// Step orders that must complete first; also groups parallel sub-steps
	DependsOn []int `json:"depends_on,omitempty"`
	// ApprovalConfig holds the value of the "approval_config" field.
	ApprovalConfig map[string]interface{} `json:"approval_config,omitempty"`
	// Keys: maxRetries, initialDelayMs, maxDelayMs, multiplier
	RetryConfig map[string]interface{} `json:"retry_config,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowStepQuery when eager-loading is set.
	Edges        WorkflowStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowStepEdges holds the relations/edges for other nodes in the graph.
type WorkflowStepEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// AgentExecutions holds the value of the agent_executions edge.
	AgentExecutions []*AgentExecution `json:"agent_executions,omitempty"`
	// ApprovalRequests holds the value of the approval_requests edge.
	ApprovalRequests []*ApprovalRequest `json:"approval_requests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowStepEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowStepEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// AgentExecutionsOrErr returns the AgentExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowStepEdges) AgentExecutionsOrErr() ([]*AgentExecution, error) {
	if e.loadedTypes[2] {
		return e.AgentExecutions, nil
	}
	return nil, &NotLoadedError{edge: "agent_executions"}
}

// ApprovalRequestsOrErr returns the ApprovalRequests value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowStepEdges) ApprovalRequestsOrErr() ([]*ApprovalRequest, error) {
	if e.loadedTypes[3] {
		return e.ApprovalRequests, nil
	}
	return nil, &NotLoadedError{edge: "approval_requests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldInputMapping, workflowstep.FieldDependsOn, workflowstep.FieldApprovalConfig, workflowstep.FieldRetryConfig:
			values[i] = new([]byte)
		case workflowstep.FieldID, workflowstep.FieldWorkflowID, workflowstep.FieldStepOrder, workflowstep.FieldAgentID, workflowstep.FieldTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case workflowstep.FieldStepType, workflowstep.FieldName, workflowstep.FieldOutputVariable, workflowstep.FieldConditionExpression:
			values[i] = new(sql.NullString)
		case workflowstep.FieldCreatedAt, workflowstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowStep fields.
func (_m *WorkflowStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workflowstep.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = int(value.Int64)
			}
		case workflowstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case workflowstep.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = workflowstep.StepType(value.String)
			}
		case workflowstep.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case workflowstep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflowstep.FieldInputMapping:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_mapping", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputMapping); err != nil {
					return fmt.Errorf("unmarshal field input_mapping: %w", err)
				}
			}
		case workflowstep.FieldOutputVariable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_variable", values[i])
			} else if value.Valid {
				_m.OutputVariable = value.String
			}
		case workflowstep.FieldConditionExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_expression", values[i])
			} else if value.Valid {
				_m.ConditionExpression = value.String
			}
		case workflowstep.FieldDependsOn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DependsOn); err != nil {
					return fmt.Errorf("unmarshal field depends_on: %w", err)
				}
			}
		case workflowstep.FieldApprovalConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approval_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApprovalConfig); err != nil {
					return fmt.Errorf("unmarshal field approval_config: %w", err)
				}
			}
		case workflowstep.FieldRetryConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retry_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RetryConfig); err != nil {
					return fmt.Errorf("unmarshal field retry_config: %w", err)
				}
			}
		case workflowstep.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = new(int)
				*_m.TimeoutSeconds = int(value.Int64)
			}
		case workflowstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowstep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowStep.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowStepClient(_m.config).QueryWorkflow(_m)
}

// QueryAgent queries the "agent" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryAgent() *AgentQuery {
	return NewWorkflowStepClient(_m.config).QueryAgent(_m)
}

// QueryAgentExecutions queries the "agent_executions" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryAgentExecutions() *AgentExecutionQuery {
	return NewWorkflowStepClient(_m.config).QueryAgentExecutions(_m)
}

// QueryApprovalRequests queries the "approval_requests" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryApprovalRequests() *ApprovalRequestQuery {
	return NewWorkflowStepClient(_m.config).QueryApprovalRequests(_m)
}

// Update returns a builder for updating this WorkflowStep.
// Note that you need to call WorkflowStep.Unwrap() before calling this method if this WorkflowStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowStep) Update() *WorkflowStepUpdateOne {
	return NewWorkflowStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowStep) Unwrap() *WorkflowStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowStep) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowID))
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepType))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("input_mapping=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputMapping))
	builder.WriteString(", ")
	builder.WriteString("output_variable=")
	builder.WriteString(_m.OutputVariable)
	builder.WriteString(", ")
	builder.WriteString("condition_expression=")
	builder.WriteString(_m.ConditionExpression)
	builder.WriteString(", ")
	builder.WriteString("depends_on=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOn))
	builder.WriteString(", ")
	builder.WriteString("approval_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalConfig))
	builder.WriteString(", ")
	builder.WriteString("retry_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryConfig))
	builder.WriteString(", ")
	if v := _m.TimeoutSeconds; v != nil {
		builder.WriteString("timeout_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowSteps is a parsable slice of WorkflowStep.
type WorkflowSteps []*WorkflowStep
