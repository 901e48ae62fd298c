// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/predicate"
)

// AgentToolUpdate is the builder for updating AgentTool entities.
type AgentToolUpdate struct {
	config
	hooks    []Hook
	mutation *AgentToolMutation
}

// Where appends a list predicates to the AgentToolUpdate builder.
func (_u *AgentToolUpdate) Where(ps ...predicate.AgentTool) *AgentToolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentToolUpdate) SetConfig(v map[string]interface{}) *AgentToolUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentToolUpdate) ClearConfig() *AgentToolUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the AgentToolMutation object of the builder.
func (_u *AgentToolUpdate) Mutation() *AgentToolMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentToolUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentToolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentToolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentToolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentToolUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTool.agent"`)
	}
	if _u.mutation.ToolCleared() && len(_u.mutation.ToolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTool.tool"`)
	}
	return nil
}

func (_u *AgentToolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttool.Table, agenttool.Columns, sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agenttool.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agenttool.FieldConfig, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentToolUpdateOne is the builder for updating a single AgentTool entity.
type AgentToolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentToolMutation
}

// SetConfig sets the "config" field.
func (_u *AgentToolUpdateOne) SetConfig(v map[string]interface{}) *AgentToolUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentToolUpdateOne) ClearConfig() *AgentToolUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the AgentToolMutation object of the builder.
func (_u *AgentToolUpdateOne) Mutation() *AgentToolMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentToolUpdate builder.
func (_u *AgentToolUpdateOne) Where(ps ...predicate.AgentTool) *AgentToolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentToolUpdateOne) Select(field string, fields ...string) *AgentToolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTool entity.
func (_u *AgentToolUpdateOne) Save(ctx context.Context) (*AgentTool, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentToolUpdateOne) SaveX(ctx context.Context) *AgentTool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentToolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentToolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentToolUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTool.agent"`)
	}
	if _u.mutation.ToolCleared() && len(_u.mutation.ToolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTool.tool"`)
	}
	return nil
}

func (_u *AgentToolUpdateOne) sqlSave(ctx context.Context) (_node *AgentTool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttool.Table, agenttool.Columns, sqlgraph.NewFieldSpec(agenttool.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttool.FieldID)
		for _, f := range fields {
			if !agenttool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttool.FieldID {
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
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agenttool.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agenttool.FieldConfig, field.TypeJSON)
	}
	_node = &AgentTool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
