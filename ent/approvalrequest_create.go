// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ApprovalRequestCreate) SetExecutionID(v int) *ApprovalRequestCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ApprovalRequestCreate) SetStepID(v int) *ApprovalRequestCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRequestCreate) SetStatus(v approvalrequest.Status) *ApprovalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequiredRole sets the "required_role" field.
func (_c *ApprovalRequestCreate) SetRequiredRole(v string) *ApprovalRequestCreate {
	_c.mutation.SetRequiredRole(v)
	return _c
}

// SetNillableRequiredRole sets the "required_role" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRequiredRole(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRequiredRole(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ApprovalRequestCreate) SetApprovedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableApprovedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ApprovalRequestCreate) SetApprovedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableApprovedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetComments sets the "comments" field.
func (_c *ApprovalRequestCreate) SetComments(v string) *ApprovalRequestCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableComments(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetTimeoutAt sets the "timeout_at" field.
func (_c *ApprovalRequestCreate) SetTimeoutAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetTimeoutAt(v)
	return _c
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableTimeoutAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetTimeoutAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRequestCreate) SetCreatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalRequestCreate) SetUpdatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *ApprovalRequestCreate) SetExecution(v *WorkflowExecution) *ApprovalRequestCreate {
	return _c.SetExecutionID(v.ID)
}

// SetStep sets the "step" edge to the WorkflowStep entity.
func (_c *ApprovalRequestCreate) SetStep(v *WorkflowStep) *ApprovalRequestCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approvalrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ApprovalRequest.execution_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "ApprovalRequest.step_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApprovalRequest.updated_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ApprovalRequest.execution"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "ApprovalRequest.step"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
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

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequiredRole(); ok {
		_spec.SetField(approvalrequest.FieldRequiredRole, field.TypeString, value)
		_node.RequiredRole = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(approvalrequest.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(approvalrequest.FieldComments, field.TypeString, value)
		_node.Comments = &value
	}
	if value, ok := _c.mutation.TimeoutAt(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutAt, field.TypeTime, value)
		_node.TimeoutAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.ExecutionTable,
			Columns: []string{approvalrequest.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.StepTable,
			Columns: []string{approvalrequest.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
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
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
