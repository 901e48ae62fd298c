// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowStepUpdate) SetStepOrder(v int) *WorkflowStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepOrder(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowStepUpdate) AddStepOrder(v int) *WorkflowStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *WorkflowStepUpdate) SetStepType(v workflowstep.StepType) *WorkflowStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepType(v *workflowstep.StepType) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkflowStepUpdate) SetAgentID(v int) *WorkflowStepUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableAgentID(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *WorkflowStepUpdate) ClearAgentID() *WorkflowStepUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdate) SetName(v string) *WorkflowStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableName(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *WorkflowStepUpdate) SetInputMapping(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *WorkflowStepUpdate) ClearInputMapping() *WorkflowStepUpdate {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetOutputVariable sets the "output_variable" field.
func (_u *WorkflowStepUpdate) SetOutputVariable(v string) *WorkflowStepUpdate {
	_u.mutation.SetOutputVariable(v)
	return _u
}

// SetNillableOutputVariable sets the "output_variable" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableOutputVariable(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetOutputVariable(*v)
	}
	return _u
}

// ClearOutputVariable clears the value of the "output_variable" field.
func (_u *WorkflowStepUpdate) ClearOutputVariable() *WorkflowStepUpdate {
	_u.mutation.ClearOutputVariable()
	return _u
}

// SetConditionExpression sets the "condition_expression" field.
func (_u *WorkflowStepUpdate) SetConditionExpression(v string) *WorkflowStepUpdate {
	_u.mutation.SetConditionExpression(v)
	return _u
}

// SetNillableConditionExpression sets the "condition_expression" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableConditionExpression(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetConditionExpression(*v)
	}
	return _u
}

// ClearConditionExpression clears the value of the "condition_expression" field.
func (_u *WorkflowStepUpdate) ClearConditionExpression() *WorkflowStepUpdate {
	_u.mutation.ClearConditionExpression()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *WorkflowStepUpdate) SetDependsOn(v []int) *WorkflowStepUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *WorkflowStepUpdate) AppendDependsOn(v []int) *WorkflowStepUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *WorkflowStepUpdate) ClearDependsOn() *WorkflowStepUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetApprovalConfig sets the "approval_config" field.
func (_u *WorkflowStepUpdate) SetApprovalConfig(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetApprovalConfig(v)
	return _u
}

// ClearApprovalConfig clears the value of the "approval_config" field.
func (_u *WorkflowStepUpdate) ClearApprovalConfig() *WorkflowStepUpdate {
	_u.mutation.ClearApprovalConfig()
	return _u
}

// SetRetryConfig sets the "retry_config" field.
func (_u *WorkflowStepUpdate) SetRetryConfig(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetRetryConfig(v)
	return _u
}

// ClearRetryConfig clears the value of the "retry_config" field.
func (_u *WorkflowStepUpdate) ClearRetryConfig() *WorkflowStepUpdate {
	_u.mutation.ClearRetryConfig()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *WorkflowStepUpdate) SetTimeoutSeconds(v int) *WorkflowStepUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableTimeoutSeconds(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *WorkflowStepUpdate) AddTimeoutSeconds(v int) *WorkflowStepUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *WorkflowStepUpdate) ClearTimeoutSeconds() *WorkflowStepUpdate {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowStepUpdate) SetUpdatedAt(v time.Time) *WorkflowStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *WorkflowStepUpdate) SetAgent(v *Agent) *WorkflowStepUpdate {
	return _u.SetAgentID(v.ID)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *WorkflowStepUpdate) AddAgentExecutionIDs(ids ...int) *WorkflowStepUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowStepUpdate) AddAgentExecutions(v ...*AgentExecution) *WorkflowStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowStepUpdate) AddApprovalRequestIDs(ids ...int) *WorkflowStepUpdate {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowStepUpdate) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *WorkflowStepUpdate) ClearAgent() *WorkflowStepUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowStepUpdate) ClearAgentExecutions() *WorkflowStepUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *WorkflowStepUpdate) RemoveAgentExecutionIDs(ids ...int) *WorkflowStepUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *WorkflowStepUpdate) RemoveAgentExecutions(v ...*AgentExecution) *WorkflowStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowStepUpdate) ClearApprovalRequests() *WorkflowStepUpdate {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowStepUpdate) RemoveApprovalRequestIDs(ids ...int) *WorkflowStepUpdate {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowStepUpdate) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := workflowstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowstep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.name": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(workflowstep.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(workflowstep.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputVariable(); ok {
		_spec.SetField(workflowstep.FieldOutputVariable, field.TypeString, value)
	}
	if _u.mutation.OutputVariableCleared() {
		_spec.ClearField(workflowstep.FieldOutputVariable, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionExpression(); ok {
		_spec.SetField(workflowstep.FieldConditionExpression, field.TypeString, value)
	}
	if _u.mutation.ConditionExpressionCleared() {
		_spec.ClearField(workflowstep.FieldConditionExpression, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(workflowstep.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalConfig(); ok {
		_spec.SetField(workflowstep.FieldApprovalConfig, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalConfigCleared() {
		_spec.ClearField(workflowstep.FieldApprovalConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryConfig(); ok {
		_spec.SetField(workflowstep.FieldRetryConfig, field.TypeJSON, value)
	}
	if _u.mutation.RetryConfigCleared() {
		_spec.ClearField(workflowstep.FieldRetryConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(workflowstep.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(workflowstep.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(workflowstep.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalRequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalRequestsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalRequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowStepUpdateOne) SetStepOrder(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepOrder(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowStepUpdateOne) AddStepOrder(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *WorkflowStepUpdateOne) SetStepType(v workflowstep.StepType) *WorkflowStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepType(v *workflowstep.StepType) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkflowStepUpdateOne) SetAgentID(v int) *WorkflowStepUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableAgentID(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *WorkflowStepUpdateOne) ClearAgentID() *WorkflowStepUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdateOne) SetName(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableName(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *WorkflowStepUpdateOne) SetInputMapping(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *WorkflowStepUpdateOne) ClearInputMapping() *WorkflowStepUpdateOne {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetOutputVariable sets the "output_variable" field.
func (_u *WorkflowStepUpdateOne) SetOutputVariable(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetOutputVariable(v)
	return _u
}

// SetNillableOutputVariable sets the "output_variable" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableOutputVariable(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetOutputVariable(*v)
	}
	return _u
}

// ClearOutputVariable clears the value of the "output_variable" field.
func (_u *WorkflowStepUpdateOne) ClearOutputVariable() *WorkflowStepUpdateOne {
	_u.mutation.ClearOutputVariable()
	return _u
}

// SetConditionExpression sets the "condition_expression" field.
func (_u *WorkflowStepUpdateOne) SetConditionExpression(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetConditionExpression(v)
	return _u
}

// SetNillableConditionExpression sets the "condition_expression" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableConditionExpression(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetConditionExpression(*v)
	}
	return _u
}

// ClearConditionExpression clears the value of the "condition_expression" field.
func (_u *WorkflowStepUpdateOne) ClearConditionExpression() *WorkflowStepUpdateOne {
	_u.mutation.ClearConditionExpression()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *WorkflowStepUpdateOne) SetDependsOn(v []int) *WorkflowStepUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *WorkflowStepUpdateOne) AppendDependsOn(v []int) *WorkflowStepUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *WorkflowStepUpdateOne) ClearDependsOn() *WorkflowStepUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetApprovalConfig sets the "approval_config" field.
func (_u *WorkflowStepUpdateOne) SetApprovalConfig(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetApprovalConfig(v)
	return _u
}

// ClearApprovalConfig clears the value of the "approval_config" field.
func (_u *WorkflowStepUpdateOne) ClearApprovalConfig() *WorkflowStepUpdateOne {
	_u.mutation.ClearApprovalConfig()
	return _u
}

// SetRetryConfig sets the "retry_config" field.
func (_u *WorkflowStepUpdateOne) SetRetryConfig(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetRetryConfig(v)
	return _u
}

// ClearRetryConfig clears the value of the "retry_config" field.
func (_u *WorkflowStepUpdateOne) ClearRetryConfig() *WorkflowStepUpdateOne {
	_u.mutation.ClearRetryConfig()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *WorkflowStepUpdateOne) SetTimeoutSeconds(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableTimeoutSeconds(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *WorkflowStepUpdateOne) AddTimeoutSeconds(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *WorkflowStepUpdateOne) ClearTimeoutSeconds() *WorkflowStepUpdateOne {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowStepUpdateOne) SetUpdatedAt(v time.Time) *WorkflowStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *WorkflowStepUpdateOne) SetAgent(v *Agent) *WorkflowStepUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *WorkflowStepUpdateOne) AddAgentExecutionIDs(ids ...int) *WorkflowStepUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowStepUpdateOne) AddAgentExecutions(v ...*AgentExecution) *WorkflowStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowStepUpdateOne) AddApprovalRequestIDs(ids ...int) *WorkflowStepUpdateOne {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowStepUpdateOne) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *WorkflowStepUpdateOne) ClearAgent() *WorkflowStepUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowStepUpdateOne) ClearAgentExecutions() *WorkflowStepUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *WorkflowStepUpdateOne) RemoveAgentExecutionIDs(ids ...int) *WorkflowStepUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *WorkflowStepUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *WorkflowStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowStepUpdateOne) ClearApprovalRequests() *WorkflowStepUpdateOne {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowStepUpdateOne) RemoveApprovalRequestIDs(ids ...int) *WorkflowStepUpdateOne {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowStepUpdateOne) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := workflowstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowstep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.name": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
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
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(workflowstep.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(workflowstep.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputVariable(); ok {
		_spec.SetField(workflowstep.FieldOutputVariable, field.TypeString, value)
	}
	if _u.mutation.OutputVariableCleared() {
		_spec.ClearField(workflowstep.FieldOutputVariable, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionExpression(); ok {
		_spec.SetField(workflowstep.FieldConditionExpression, field.TypeString, value)
	}
	if _u.mutation.ConditionExpressionCleared() {
		_spec.ClearField(workflowstep.FieldConditionExpression, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(workflowstep.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalConfig(); ok {
		_spec.SetField(workflowstep.FieldApprovalConfig, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalConfigCleared() {
		_spec.ClearField(workflowstep.FieldApprovalConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryConfig(); ok {
		_spec.SetField(workflowstep.FieldRetryConfig, field.TypeJSON, value)
	}
	if _u.mutation.RetryConfigCleared() {
		_spec.ClearField(workflowstep.FieldRetryConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(workflowstep.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(workflowstep.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(workflowstep.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalRequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalRequestsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalRequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
