// Code generated by ent, DO NOT EDIT.

package tool

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tool type in the database.
	Label = "tool"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldToolType holds the string denoting the tool_type field in the database.
	FieldToolType = "tool_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldInputSchema holds the string denoting the input_schema field in the database.
	FieldInputSchema = "input_schema"
	// FieldHandler holds the string denoting the handler field in the database.
	FieldHandler = "handler"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgentTools holds the string denoting the agent_tools edge name in mutations.
	EdgeAgentTools = "agent_tools"
	// Table holds the table name of the tool in the database.
	Table = "tools"
	// AgentToolsTable is the table that holds the agent_tools relation/edge.
	AgentToolsTable = "agent_tools"
	// AgentToolsInverseTable is the table name for the AgentTool entity.
	// It exists in this package in order to avoid circular dependency with the "agenttool" package.
	AgentToolsInverseTable = "agent_tools"
	// AgentToolsColumn is the table column denoting the agent_tools relation/edge.
	AgentToolsColumn = "tool_id"
)

// Columns holds all SQL columns for tool fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldToolType,
	FieldDescription,
	FieldInputSchema,
	FieldHandler,
	FieldActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ToolType defines the type for the "tool_type" enum field.
type ToolType string

// ToolTypeInProcess is the default value of the ToolType enum.
const DefaultToolType = ToolTypeInProcess

// ToolType values.
const (
	ToolTypeInProcess ToolType = "in_process"
	ToolTypeExternal  ToolType = "external"
)

func (tt ToolType) String() string {
	return string(tt)
}

// ToolTypeValidator is a validator for the "tool_type" field enum values. It is called by the builders before save.
func ToolTypeValidator(tt ToolType) error {
	switch tt {
	case ToolTypeInProcess, ToolTypeExternal:
		return nil
	default:
		return fmt.Errorf("tool: invalid enum value for tool_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the Tool queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByToolType orders the results by the tool_type field.
func ByToolType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByHandler orders the results by the handler field.
func ByHandler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandler, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentToolsCount orders the results by agent_tools count.
func ByAgentToolsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentToolsStep(), opts...)
	}
}

// ByAgentTools orders the results by agent_tools terms.
func ByAgentTools(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentToolsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentToolsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentToolsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentToolsTable, AgentToolsColumn),
	)
}
