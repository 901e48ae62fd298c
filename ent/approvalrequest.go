// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
)

// ApprovalRequest is the model entity for the ApprovalRequest schema.
type ApprovalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID int `json:"execution_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID int `json:"step_id,omitempty"`
	// Status holds the value of the "status" field.
	Status approvalrequest.Status `json:"status,omitempty"`
	// RequiredRole holds the value of the "required_role" field.
	RequiredRole *string `json:"required_role,omitempty"`
	// Identity of the deciding human, set on approve or reject
	ApprovedBy *string `json:"approved_by,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// Comments holds the value of the "comments" field.
	Comments *string `json:"comments,omitempty"`
	// Pending past this instant is swept to timeout
	TimeoutAt *time.Time `json:"timeout_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalRequestQuery when eager-loading is set.
	Edges        ApprovalRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalRequestEdges holds the relations/edges for other nodes in the graph.
type ApprovalRequestEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// Step holds the value of the step edge.
	Step *WorkflowStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalRequestEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalRequestEdges) StepOrErr() (*WorkflowStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: workflowstep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID, approvalrequest.FieldExecutionID, approvalrequest.FieldStepID:
			values[i] = new(sql.NullInt64)
		case approvalrequest.FieldStatus, approvalrequest.FieldRequiredRole, approvalrequest.FieldApprovedBy, approvalrequest.FieldComments:
			values[i] = new(sql.NullString)
		case approvalrequest.FieldApprovedAt, approvalrequest.FieldTimeoutAt, approvalrequest.FieldCreatedAt, approvalrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRequest fields.
func (_m *ApprovalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case approvalrequest.FieldExecutionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = int(value.Int64)
			}
		case approvalrequest.FieldStepID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = int(value.Int64)
			}
		case approvalrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approvalrequest.Status(value.String)
			}
		case approvalrequest.FieldRequiredRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_role", values[i])
			} else if value.Valid {
				_m.RequiredRole = new(string)
				*_m.RequiredRole = value.String
			}
		case approvalrequest.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case approvalrequest.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case approvalrequest.FieldComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comments", values[i])
			} else if value.Valid {
				_m.Comments = new(string)
				*_m.Comments = value.String
			}
		case approvalrequest.FieldTimeoutAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_at", values[i])
			} else if value.Valid {
				_m.TimeoutAt = new(time.Time)
				*_m.TimeoutAt = value.Time
			}
		case approvalrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalrequest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryExecution() *WorkflowExecutionQuery {
	return NewApprovalRequestClient(_m.config).QueryExecution(_m)
}

// QueryStep queries the "step" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryStep() *WorkflowStepQuery {
	return NewApprovalRequestClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this ApprovalRequest.
// Note that you need to call ApprovalRequest.Unwrap() before calling this method if this ApprovalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRequest) Update() *ApprovalRequestUpdateOne {
	return NewApprovalRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRequest) Unwrap() *ApprovalRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionID))
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RequiredRole; v != nil {
		builder.WriteString("required_role=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Comments; v != nil {
		builder.WriteString("comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeoutAt; v != nil {
		builder.WriteString("timeout_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// ApprovalRequests is a parsable slice of ApprovalRequest.
type ApprovalRequests []*ApprovalRequest
