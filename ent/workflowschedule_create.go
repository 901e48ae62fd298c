// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowschedule"
)

// WorkflowScheduleCreate is the builder for creating a WorkflowSchedule entity.
type WorkflowScheduleCreate struct {
	config
	mutation *WorkflowScheduleMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowScheduleCreate) SetWorkflowID(v int) *WorkflowScheduleCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *WorkflowScheduleCreate) SetCronExpression(v string) *WorkflowScheduleCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *WorkflowScheduleCreate) SetEnabled(v bool) *WorkflowScheduleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WorkflowScheduleCreate) SetNillableEnabled(v *bool) *WorkflowScheduleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *WorkflowScheduleCreate) SetLastRunAt(v time.Time) *WorkflowScheduleCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *WorkflowScheduleCreate) SetNillableLastRunAt(v *time.Time) *WorkflowScheduleCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *WorkflowScheduleCreate) SetNextRunAt(v time.Time) *WorkflowScheduleCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetTriggerData sets the "trigger_data" field.
func (_c *WorkflowScheduleCreate) SetTriggerData(v map[string]interface{}) *WorkflowScheduleCreate {
	_c.mutation.SetTriggerData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowScheduleCreate) SetCreatedAt(v time.Time) *WorkflowScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowScheduleCreate) SetNillableCreatedAt(v *time.Time) *WorkflowScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowScheduleCreate) SetUpdatedAt(v time.Time) *WorkflowScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowScheduleCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowScheduleCreate) SetWorkflow(v *Workflow) *WorkflowScheduleCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowScheduleMutation object of the builder.
func (_c *WorkflowScheduleCreate) Mutation() *WorkflowScheduleMutation {
	return _c.mutation
}

// Save creates the WorkflowSchedule in the database.
func (_c *WorkflowScheduleCreate) Save(ctx context.Context) (*WorkflowSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowScheduleCreate) SaveX(ctx context.Context) *WorkflowSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowScheduleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := workflowschedule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowScheduleCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowSchedule.workflow_id"`)}
	}
	if _, ok := _c.mutation.CronExpression(); !ok {
		return &ValidationError{Name: "cron_expression", err: errors.New(`ent: missing required field "WorkflowSchedule.cron_expression"`)}
	}
	if v, ok := _c.mutation.CronExpression(); ok {
		if err := workflowschedule.CronExpressionValidator(v); err != nil {
			return &ValidationError{Name: "cron_expression", err: fmt.Errorf(`ent: validator failed for field "WorkflowSchedule.cron_expression": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "WorkflowSchedule.enabled"`)}
	}
	if _, ok := _c.mutation.NextRunAt(); !ok {
		return &ValidationError{Name: "next_run_at", err: errors.New(`ent: missing required field "WorkflowSchedule.next_run_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowSchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowSchedule.updated_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowSchedule.workflow"`)}
	}
	return nil
}

func (_c *WorkflowScheduleCreate) sqlSave(ctx context.Context) (*WorkflowSchedule, error) {
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

func (_c *WorkflowScheduleCreate) createSpec() (*WorkflowSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowschedule.Table, sqlgraph.NewFieldSpec(workflowschedule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(workflowschedule.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(workflowschedule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(workflowschedule.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(workflowschedule.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = value
	}
	if value, ok := _c.mutation.TriggerData(); ok {
		_spec.SetField(workflowschedule.FieldTriggerData, field.TypeJSON, value)
		_node.TriggerData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowschedule.WorkflowTable,
			Columns: []string{workflowschedule.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowScheduleCreateBulk is the builder for creating many WorkflowSchedule entities in bulk.
type WorkflowScheduleCreateBulk struct {
	config
	err      error
	builders []*WorkflowScheduleCreate
}

// Save creates the WorkflowSchedule entities in the database.
func (_c *WorkflowScheduleCreateBulk) Save(ctx context.Context) ([]*WorkflowSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowScheduleMutation)
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
func (_c *WorkflowScheduleCreateBulk) SaveX(ctx context.Context) []*WorkflowSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
