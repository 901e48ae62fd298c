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
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/tool"
)

// AgentTool is the model entity for the AgentTool schema.
type AgentTool struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// ToolID holds the value of the "tool_id" field.
	ToolID int `json:"tool_id,omitempty"`
	// Per-agent override merged over the tool's own config
	Config map[string]interface{} `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentToolQuery when eager-loading is set.
	Edges        AgentToolEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentToolEdges holds the relations/edges for other nodes in the graph.
type AgentToolEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Tool holds the value of the tool edge.
	Tool *Tool `json:"tool,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentToolEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// ToolOrErr returns the Tool value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentToolEdges) ToolOrErr() (*Tool, error) {
	if e.Tool != nil {
		return e.Tool, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: tool.Label}
	}
	return nil, &NotLoadedError{edge: "tool"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTool) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttool.FieldConfig:
			values[i] = new([]byte)
		case agenttool.FieldID, agenttool.FieldAgentID, agenttool.FieldToolID:
			values[i] = new(sql.NullInt64)
		case agenttool.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTool fields.
func (_m *AgentTool) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttool.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agenttool.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case agenttool.FieldToolID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tool_id", values[i])
			} else if value.Valid {
				_m.ToolID = int(value.Int64)
			}
		case agenttool.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case agenttool.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTool.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTool) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentTool entity.
func (_m *AgentTool) QueryAgent() *AgentQuery {
	return NewAgentToolClient(_m.config).QueryAgent(_m)
}

// QueryTool queries the "tool" edge of the AgentTool entity.
func (_m *AgentTool) QueryTool() *ToolQuery {
	return NewAgentToolClient(_m.config).QueryTool(_m)
}

// Update returns a builder for updating this AgentTool.
// Note that you need to call AgentTool.Unwrap() before calling this method if this AgentTool
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTool) Update() *AgentToolUpdateOne {
	return NewAgentToolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTool entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTool) Unwrap() *AgentTool {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTool is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTool) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTool(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("tool_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolID))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentTools is a parsable slice of AgentTool.
type AgentTools []*AgentTool
