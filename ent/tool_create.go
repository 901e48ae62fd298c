// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/tool"
)

// ToolCreate is the builder for creating a Tool entity.
type ToolCreate struct {
	config
	mutation *ToolMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ToolCreate) SetName(v string) *ToolCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetToolType sets the "tool_type" field.
func (_c *ToolCreate) SetToolType(v tool.ToolType) *ToolCreate {
	_c.mutation.SetToolType(v)
	return _c
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_c *ToolCreate) SetNillableToolType(v *tool.ToolType) *ToolCreate {
	if v != nil {
		_c.SetToolType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ToolCreate) SetDescription(v string) *ToolCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ToolCreate) SetNillableDescription(v *string) *ToolCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetInputSchema sets the "input_schema" field.
func (_c *ToolCreate) SetInputSchema(v map[string]interface{}) *ToolCreate {
	_c.mutation.SetInputSchema(v)
	return _c
}

// SetHandler sets the "handler" field.
func (_c *ToolCreate) SetHandler(v string) *ToolCreate {
	_c.mutation.SetHandler(v)
	return _c
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_c *ToolCreate) SetNillableHandler(v *string) *ToolCreate {
	if v != nil {
		_c.SetHandler(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ToolCreate) SetActive(v bool) *ToolCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ToolCreate) SetNillableActive(v *bool) *ToolCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCreate) SetCreatedAt(v time.Time) *ToolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCreate) SetNillableCreatedAt(v *time.Time) *ToolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolCreate) SetUpdatedAt(v time.Time) *ToolCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolCreate) SetNillableUpdatedAt(v *time.Time) *ToolCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAgentToolIDs adds the "agent_tools" edge to the AgentTool entity by IDs.
func (_c *ToolCreate) AddAgentToolIDs(ids ...int) *ToolCreate {
	_c.mutation.AddAgentToolIDs(ids...)
	return _c
}

// AddAgentTools adds the "agent_tools" edges to the AgentTool entity.
func (_c *ToolCreate) AddAgentTools(v ...*AgentTool) *ToolCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentToolIDs(ids...)
}

// Mutation returns the ToolMutation object of the builder.
func (_c *ToolCreate) Mutation() *ToolMutation {
	return _c.mutation
}

// Save creates the Tool in the database.
func (_c *ToolCreate) Save(ctx context.Context) (*Tool, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCreate) SaveX(ctx context.Context) *Tool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCreate) defaults() {
	if _, ok := _c.mutation.ToolType(); !ok {
		v := tool.DefaultToolType
		_c.mutation.SetToolType(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := tool.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tool.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tool.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tool.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := tool.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tool.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolType(); !ok {
		return &ValidationError{Name: "tool_type", err: errors.New(`ent: missing required field "Tool.tool_type"`)}
	}
	if v, ok := _c.mutation.ToolType(); ok {
		if err := tool.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "Tool.tool_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Tool.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tool.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tool.updated_at"`)}
	}
	return nil
}

func (_c *ToolCreate) sqlSave(ctx context.Context) (*Tool, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCreate) createSpec() (*Tool, *sqlgraph.CreateSpec) {
	var (
		_node = &Tool{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tool.Table, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tool.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ToolType(); ok {
		_spec.SetField(tool.FieldToolType, field.TypeEnum, value)
		_node.ToolType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(tool.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.InputSchema(); ok {
		_spec.SetField(tool.FieldInputSchema, field.TypeJSON, value)
		_node.InputSchema = value
	}
	if value, ok := _c.mutation.Handler(); ok {
		_spec.SetField(tool.FieldHandler, field.TypeString, value)
		_node.Handler = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(tool.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tool.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tool.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentToolsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolCreateBulk is the builder for creating many Tool entities in bulk.
type ToolCreateBulk struct {
	config
	err      error
	builders []*ToolCreate
}

// Save creates the Tool entities in the database.
func (_c *ToolCreateBulk) Save(ctx context.Context) ([]*Tool, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tool, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ToolCreateBulk) SaveX(ctx context.Context) []*Tool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
