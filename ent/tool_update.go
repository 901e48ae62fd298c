// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/tool"
)

// ToolUpdate is the builder for updating Tool entities.
type ToolUpdate struct {
	config
	hooks    []Hook
	mutation *ToolMutation
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdate) Where(ps ...predicate.Tool) *ToolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolUpdate) SetName(v string) *ToolUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableName(v *string) *ToolUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetToolType sets the "tool_type" field.
func (_u *ToolUpdate) SetToolType(v tool.ToolType) *ToolUpdate {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableToolType(v *tool.ToolType) *ToolUpdate {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolUpdate) SetDescription(v string) *ToolUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableDescription(v *string) *ToolUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolUpdate) ClearDescription() *ToolUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *ToolUpdate) SetInputSchema(v map[string]interface{}) *ToolUpdate {
	_u.mutation.SetInputSchema(v)
	return _u
}

// ClearInputSchema clears the value of the "input_schema" field.
func (_u *ToolUpdate) ClearInputSchema() *ToolUpdate {
	_u.mutation.ClearInputSchema()
	return _u
}

// SetHandler sets the "handler" field.
func (_u *ToolUpdate) SetHandler(v string) *ToolUpdate {
	_u.mutation.SetHandler(v)
	return _u
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableHandler(v *string) *ToolUpdate {
	if v != nil {
		_u.SetHandler(*v)
	}
	return _u
}

// ClearHandler clears the value of the "handler" field.
func (_u *ToolUpdate) ClearHandler() *ToolUpdate {
	_u.mutation.ClearHandler()
	return _u
}

// SetActive sets the "active" field.
func (_u *ToolUpdate) SetActive(v bool) *ToolUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableActive(v *bool) *ToolUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolUpdate) SetUpdatedAt(v time.Time) *ToolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentToolIDs adds the "agent_tools" edge to the AgentTool entity by IDs.
func (_u *ToolUpdate) AddAgentToolIDs(ids ...int) *ToolUpdate {
	_u.mutation.AddAgentToolIDs(ids...)
	return _u
}

// AddAgentTools adds the "agent_tools" edges to the AgentTool entity.
func (_u *ToolUpdate) AddAgentTools(v ...*AgentTool) *ToolUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentToolIDs(ids...)
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdate) Mutation() *ToolMutation {
	return _u.mutation
}

// ClearAgentTools clears all "agent_tools" edges to the AgentTool entity.
func (_u *ToolUpdate) ClearAgentTools() *ToolUpdate {
	_u.mutation.ClearAgentTools()
	return _u
}

// RemoveAgentToolIDs removes the "agent_tools" edge to AgentTool entities by IDs.
func (_u *ToolUpdate) RemoveAgentToolIDs(ids ...int) *ToolUpdate {
	_u.mutation.RemoveAgentToolIDs(ids...)
	return _u
}

// RemoveAgentTools removes "agent_tools" edges to AgentTool entities.
func (_u *ToolUpdate) RemoveAgentTools(v ...*AgentTool) *ToolUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentToolIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tool.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tool.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tool.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToolType(); ok {
		if err := tool.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "Tool.tool_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tool.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(tool.FieldToolType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tool.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tool.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(tool.FieldInputSchema, field.TypeJSON, value)
	}
	if _u.mutation.InputSchemaCleared() {
		_spec.ClearField(tool.FieldInputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Handler(); ok {
		_spec.SetField(tool.FieldHandler, field.TypeString, value)
	}
	if _u.mutation.HandlerCleared() {
		_spec.ClearField(tool.FieldHandler, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tool.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tool.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentToolsIDs(); len(nodes) > 0 && !_u.mutation.AgentToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentToolsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolUpdateOne is the builder for updating a single Tool entity.
type ToolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolMutation
}

// SetName sets the "name" field.
func (_u *ToolUpdateOne) SetName(v string) *ToolUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableName(v *string) *ToolUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetToolType sets the "tool_type" field.
func (_u *ToolUpdateOne) SetToolType(v tool.ToolType) *ToolUpdateOne {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableToolType(v *tool.ToolType) *ToolUpdateOne {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolUpdateOne) SetDescription(v string) *ToolUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableDescription(v *string) *ToolUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolUpdateOne) ClearDescription() *ToolUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *ToolUpdateOne) SetInputSchema(v map[string]interface{}) *ToolUpdateOne {
	_u.mutation.SetInputSchema(v)
	return _u
}

// ClearInputSchema clears the value of the "input_schema" field.
func (_u *ToolUpdateOne) ClearInputSchema() *ToolUpdateOne {
	_u.mutation.ClearInputSchema()
	return _u
}

// SetHandler sets the "handler" field.
func (_u *ToolUpdateOne) SetHandler(v string) *ToolUpdateOne {
	_u.mutation.SetHandler(v)
	return _u
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableHandler(v *string) *ToolUpdateOne {
	if v != nil {
		_u.SetHandler(*v)
	}
	return _u
}

// ClearHandler clears the value of the "handler" field.
func (_u *ToolUpdateOne) ClearHandler() *ToolUpdateOne {
	_u.mutation.ClearHandler()
	return _u
}

// SetActive sets the "active" field.
func (_u *ToolUpdateOne) SetActive(v bool) *ToolUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableActive(v *bool) *ToolUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolUpdateOne) SetUpdatedAt(v time.Time) *ToolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentToolIDs adds the "agent_tools" edge to the AgentTool entity by IDs.
func (_u *ToolUpdateOne) AddAgentToolIDs(ids ...int) *ToolUpdateOne {
	_u.mutation.AddAgentToolIDs(ids...)
	return _u
}

// AddAgentTools adds the "agent_tools" edges to the AgentTool entity.
func (_u *ToolUpdateOne) AddAgentTools(v ...*AgentTool) *ToolUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentToolIDs(ids...)
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdateOne) Mutation() *ToolMutation {
	return _u.mutation
}

// ClearAgentTools clears all "agent_tools" edges to the AgentTool entity.
func (_u *ToolUpdateOne) ClearAgentTools() *ToolUpdateOne {
	_u.mutation.ClearAgentTools()
	return _u
}

// RemoveAgentToolIDs removes the "agent_tools" edge to AgentTool entities by IDs.
func (_u *ToolUpdateOne) RemoveAgentToolIDs(ids ...int) *ToolUpdateOne {
	_u.mutation.RemoveAgentToolIDs(ids...)
	return _u
}

// RemoveAgentTools removes "agent_tools" edges to AgentTool entities.
func (_u *ToolUpdateOne) RemoveAgentTools(v ...*AgentTool) *ToolUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentToolIDs(ids...)
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdateOne) Where(ps ...predicate.Tool) *ToolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolUpdateOne) Select(field string, fields ...string) *ToolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tool entity.
func (_u *ToolUpdateOne) Save(ctx context.Context) (*Tool, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdateOne) SaveX(ctx context.Context) *Tool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tool.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tool.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tool.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToolType(); ok {
		if err := tool.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "Tool.tool_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolUpdateOne) sqlSave(ctx context.Context) (_node *Tool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tool.FieldID)
		for _, f := range fields {
			if !tool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tool.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tool.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(tool.FieldToolType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tool.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tool.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(tool.FieldInputSchema, field.TypeJSON, value)
	}
	if _u.mutation.InputSchemaCleared() {
		_spec.ClearField(tool.FieldInputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Handler(); ok {
		_spec.SetField(tool.FieldHandler, field.TypeString, value)
	}
	if _u.mutation.HandlerCleared() {
		_spec.ClearField(tool.FieldHandler, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tool.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tool.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentToolsIDs(); len(nodes) > 0 && !_u.mutation.AgentToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentToolsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tool.AgentToolsTable,
			Columns: []string{tool.AgentToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
