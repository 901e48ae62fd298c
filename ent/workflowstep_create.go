// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowstep"
)

// WorkflowStepCreate is the builder for creating a WorkflowStep entity.
type WorkflowStepCreate struct {
	config
	mutation *WorkflowStepMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowStepCreate) SetWorkflowID(v int) *WorkflowStepCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *WorkflowStepCreate) SetStepOrder(v int) *WorkflowStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *WorkflowStepCreate) SetStepType(v workflowstep.StepType) *WorkflowStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *WorkflowStepCreate) SetAgentID(v int) *WorkflowStepCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableAgentID(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *WorkflowStepCreate) SetName(v string) *WorkflowStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetInputMapping sets the "input_mapping" field.
func (_c *WorkflowStepCreate) SetInputMapping(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetInputMapping(v)
	return _c
}

// SetOutputVariable sets the "output_variable" field.
func (_c *WorkflowStepCreate) SetOutputVariable(v string) *WorkflowStepCreate {
	_c.mutation.SetOutputVariable(v)
	return _c
}

// SetNillableOutputVariable sets the "output_variable" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableOutputVariable(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetOutputVariable(*v)
	}
	return _c
}

// SetConditionExpression sets the "condition_expression" field.
func (_c *WorkflowStepCreate) SetConditionExpression(v string) *WorkflowStepCreate {
	_c.mutation.SetConditionExpression(v)
	return _c
}

// SetNillableConditionExpression sets the "condition_expression" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableConditionExpression(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetConditionExpression(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *WorkflowStepCreate) SetDependsOn(v []int) *WorkflowStepCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetApprovalConfig sets the "approval_config" field.
func (_c *WorkflowStepCreate) SetApprovalConfig(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetApprovalConfig(v)
	return _c
}

// SetRetryConfig sets the "retry_config" field.
func (_c *WorkflowStepCreate) SetRetryConfig(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetRetryConfig(v)
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *WorkflowStepCreate) SetTimeoutSeconds(v int) *WorkflowStepCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableTimeoutSeconds(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowStepCreate) SetCreatedAt(v time.Time) *WorkflowStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableCreatedAt(v *time.Time) *WorkflowStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowStepCreate) SetUpdatedAt(v time.Time) *WorkflowStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowStepCreate) SetWorkflow(v *Workflow) *WorkflowStepCreate {
	return _c.SetWorkflowID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *WorkflowStepCreate) SetAgent(v *Agent) *WorkflowStepCreate {
	return _c.SetAgentID(v.ID)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_c *WorkflowStepCreate) AddAgentExecutionIDs(ids ...int) *WorkflowStepCreate {
	_c.mutation.AddAgentExecutionIDs(ids...)
	return _c
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_c *WorkflowStepCreate) AddAgentExecutions(v ...*AgentExecution) *WorkflowStepCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentExecutionIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_c *WorkflowStepCreate) AddApprovalRequestIDs(ids ...int) *WorkflowStepCreate {
	_c.mutation.AddApprovalRequestIDs(ids...)
	return _c
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_c *WorkflowStepCreate) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowStepCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_c *WorkflowStepCreate) Mutation() *WorkflowStepMutation {
	return _c.mutation
}

// Save creates the WorkflowStep in the database.
func (_c *WorkflowStepCreate) Save(ctx context.Context) (*WorkflowStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowStepCreate) SaveX(ctx context.Context) *WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowstep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowStepCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowStep.workflow_id"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "WorkflowStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := workflowstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "WorkflowStep.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowStep.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := workflowstep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowStep.updated_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowStep.workflow"`)}
	}
	return nil
}

func (_c *WorkflowStepCreate) sqlSave(ctx context.Context) (*WorkflowStep, error) {
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

func (_c *WorkflowStepCreate) createSpec() (*WorkflowStep, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowstep.Table, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.InputMapping(); ok {
		_spec.SetField(workflowstep.FieldInputMapping, field.TypeJSON, value)
		_node.InputMapping = value
	}
	if value, ok := _c.mutation.OutputVariable(); ok {
		_spec.SetField(workflowstep.FieldOutputVariable, field.TypeString, value)
		_node.OutputVariable = value
	}
	if value, ok := _c.mutation.ConditionExpression(); ok {
		_spec.SetField(workflowstep.FieldConditionExpression, field.TypeString, value)
		_node.ConditionExpression = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.ApprovalConfig(); ok {
		_spec.SetField(workflowstep.FieldApprovalConfig, field.TypeJSON, value)
		_node.ApprovalConfig = value
	}
	if value, ok := _c.mutation.RetryConfig(); ok {
		_spec.SetField(workflowstep.FieldRetryConfig, field.TypeJSON, value)
		_node.RetryConfig = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(workflowstep.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowstep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
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
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.AgentTable,
			Columns: []string{workflowstep.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowstep.AgentExecutionsTable,
			Columns: []string{workflowstep.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowstep.ApprovalRequestsTable,
			Columns: []string{workflowstep.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowStepCreateBulk is the builder for creating many WorkflowStep entities in bulk.
type WorkflowStepCreateBulk struct {
	config
	err      error
	builders []*WorkflowStepCreate
}

// Save creates the WorkflowStep entities in the database.
func (_c *WorkflowStepCreateBulk) Save(ctx context.Context) ([]*WorkflowStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowStepMutation)
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
func (_c *WorkflowStepCreateBulk) SaveX(ctx context.Context) []*WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
