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
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/workflowschedule"
)

// WorkflowScheduleUpdate is the builder for updating WorkflowSchedule entities.
type WorkflowScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowScheduleMutation
}

// Where appends a list predicates to the WorkflowScheduleUpdate builder.
func (_u *WorkflowScheduleUpdate) Where(ps ...predicate.WorkflowSchedule) *WorkflowScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *WorkflowScheduleUpdate) SetCronExpression(v string) *WorkflowScheduleUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *WorkflowScheduleUpdate) SetNillableCronExpression(v *string) *WorkflowScheduleUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowScheduleUpdate) SetEnabled(v bool) *WorkflowScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowScheduleUpdate) SetNillableEnabled(v *bool) *WorkflowScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *WorkflowScheduleUpdate) SetLastRunAt(v time.Time) *WorkflowScheduleUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *WorkflowScheduleUpdate) SetNillableLastRunAt(v *time.Time) *WorkflowScheduleUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *WorkflowScheduleUpdate) ClearLastRunAt() *WorkflowScheduleUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *WorkflowScheduleUpdate) SetNextRunAt(v time.Time) *WorkflowScheduleUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *WorkflowScheduleUpdate) SetNillableNextRunAt(v *time.Time) *WorkflowScheduleUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *WorkflowScheduleUpdate) SetTriggerData(v map[string]interface{}) *WorkflowScheduleUpdate {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *WorkflowScheduleUpdate) ClearTriggerData() *WorkflowScheduleUpdate {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowScheduleUpdate) SetUpdatedAt(v time.Time) *WorkflowScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowScheduleMutation object of the builder.
func (_u *WorkflowScheduleUpdate) Mutation() *WorkflowScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowScheduleUpdate) check() error {
	if v, ok := _u.mutation.CronExpression(); ok {
		if err := workflowschedule.CronExpressionValidator(v); err != nil {
			return &ValidationError{Name: "cron_expression", err: fmt.Errorf(`ent: validator failed for field "WorkflowSchedule.cron_expression": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowSchedule.workflow"`)
	}
	return nil
}

func (_u *WorkflowScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowschedule.Table, workflowschedule.Columns, sqlgraph.NewFieldSpec(workflowschedule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(workflowschedule.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(workflowschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(workflowschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(workflowschedule.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(workflowschedule.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(workflowschedule.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowScheduleUpdateOne is the builder for updating a single WorkflowSchedule entity.
type WorkflowScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowScheduleMutation
}

// SetCronExpression sets the "cron_expression" field.
func (_u *WorkflowScheduleUpdateOne) SetCronExpression(v string) *WorkflowScheduleUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *WorkflowScheduleUpdateOne) SetNillableCronExpression(v *string) *WorkflowScheduleUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowScheduleUpdateOne) SetEnabled(v bool) *WorkflowScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowScheduleUpdateOne) SetNillableEnabled(v *bool) *WorkflowScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *WorkflowScheduleUpdateOne) SetLastRunAt(v time.Time) *WorkflowScheduleUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *WorkflowScheduleUpdateOne) SetNillableLastRunAt(v *time.Time) *WorkflowScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *WorkflowScheduleUpdateOne) ClearLastRunAt() *WorkflowScheduleUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *WorkflowScheduleUpdateOne) SetNextRunAt(v time.Time) *WorkflowScheduleUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *WorkflowScheduleUpdateOne) SetNillableNextRunAt(v *time.Time) *WorkflowScheduleUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *WorkflowScheduleUpdateOne) SetTriggerData(v map[string]interface{}) *WorkflowScheduleUpdateOne {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *WorkflowScheduleUpdateOne) ClearTriggerData() *WorkflowScheduleUpdateOne {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowScheduleUpdateOne) SetUpdatedAt(v time.Time) *WorkflowScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowScheduleMutation object of the builder.
func (_u *WorkflowScheduleUpdateOne) Mutation() *WorkflowScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowScheduleUpdate builder.
func (_u *WorkflowScheduleUpdateOne) Where(ps ...predicate.WorkflowSchedule) *WorkflowScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowScheduleUpdateOne) Select(field string, fields ...string) *WorkflowScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowSchedule entity.
func (_u *WorkflowScheduleUpdateOne) Save(ctx context.Context) (*WorkflowSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowScheduleUpdateOne) SaveX(ctx context.Context) *WorkflowSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.CronExpression(); ok {
		if err := workflowschedule.CronExpressionValidator(v); err != nil {
			return &ValidationError{Name: "cron_expression", err: fmt.Errorf(`ent: validator failed for field "WorkflowSchedule.cron_expression": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowSchedule.workflow"`)
	}
	return nil
}

func (_u *WorkflowScheduleUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowschedule.Table, workflowschedule.Columns, sqlgraph.NewFieldSpec(workflowschedule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowschedule.FieldID)
		for _, f := range fields {
			if !workflowschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowschedule.FieldID {
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
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(workflowschedule.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(workflowschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(workflowschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(workflowschedule.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(workflowschedule.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(workflowschedule.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
