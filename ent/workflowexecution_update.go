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
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/workflowexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *WorkflowExecutionUpdate) SetTriggerData(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *WorkflowExecutionUpdate) ClearTriggerData() *WorkflowExecutionUpdate {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetContext sets the "context" field.
func (_u *WorkflowExecutionUpdate) SetContext(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *WorkflowExecutionUpdate) ClearContext() *WorkflowExecutionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCurrentStepOrder sets the "current_step_order" field.
func (_u *WorkflowExecutionUpdate) SetCurrentStepOrder(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetCurrentStepOrder()
	_u.mutation.SetCurrentStepOrder(v)
	return _u
}

// SetNillableCurrentStepOrder sets the "current_step_order" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCurrentStepOrder(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCurrentStepOrder(*v)
	}
	return _u
}

// AddCurrentStepOrder adds value to the "current_step_order" field.
func (_u *WorkflowExecutionUpdate) AddCurrentStepOrder(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddCurrentStepOrder(v)
	return _u
}

// ClearCurrentStepOrder clears the value of the "current_step_order" field.
func (_u *WorkflowExecutionUpdate) ClearCurrentStepOrder() *WorkflowExecutionUpdate {
	_u.mutation.ClearCurrentStepOrder()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdate) SetStartedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdate) ClearStartedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdate) SetCompletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdate) ClearCompletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdate) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *WorkflowExecutionUpdate) AddAgentExecutionIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowExecutionUpdate) AddAgentExecutions(v ...*AgentExecution) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowExecutionUpdate) AddApprovalRequestIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowExecutionUpdate) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowExecutionUpdate) ClearAgentExecutions() *WorkflowExecutionUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveAgentExecutionIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *WorkflowExecutionUpdate) RemoveAgentExecutions(v ...*AgentExecution) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowExecutionUpdate) ClearApprovalRequests() *WorkflowExecutionUpdate {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveApprovalRequestIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowExecutionUpdate) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.workflow"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(workflowexecution.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(workflowexecution.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(workflowexecution.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(workflowexecution.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStepOrder(); ok {
		_spec.SetField(workflowexecution.FieldCurrentStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepOrder(); ok {
		_spec.AddField(workflowexecution.FieldCurrentStepOrder, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepOrderCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentStepOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *WorkflowExecutionUpdateOne) SetTriggerData(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *WorkflowExecutionUpdateOne) ClearTriggerData() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetContext sets the "context" field.
func (_u *WorkflowExecutionUpdateOne) SetContext(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *WorkflowExecutionUpdateOne) ClearContext() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCurrentStepOrder sets the "current_step_order" field.
func (_u *WorkflowExecutionUpdateOne) SetCurrentStepOrder(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetCurrentStepOrder()
	_u.mutation.SetCurrentStepOrder(v)
	return _u
}

// SetNillableCurrentStepOrder sets the "current_step_order" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCurrentStepOrder(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentStepOrder(*v)
	}
	return _u
}

// AddCurrentStepOrder adds value to the "current_step_order" field.
func (_u *WorkflowExecutionUpdateOne) AddCurrentStepOrder(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddCurrentStepOrder(v)
	return _u
}

// ClearCurrentStepOrder clears the value of the "current_step_order" field.
func (_u *WorkflowExecutionUpdateOne) ClearCurrentStepOrder() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCurrentStepOrder()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStartedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStartedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCompletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearCompletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdateOne) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddAgentExecutionIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowExecutionUpdateOne) AddAgentExecutions(v ...*AgentExecution) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddApprovalRequestIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowExecutionUpdateOne) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *WorkflowExecutionUpdateOne) ClearAgentExecutions() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveAgentExecutionIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *WorkflowExecutionUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowExecutionUpdateOne) ClearApprovalRequests() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveApprovalRequestIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowExecutionUpdateOne) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.workflow"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(workflowexecution.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(workflowexecution.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(workflowexecution.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(workflowexecution.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStepOrder(); ok {
		_spec.SetField(workflowexecution.FieldCurrentStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepOrder(); ok {
		_spec.AddField(workflowexecution.FieldCurrentStepOrder, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepOrderCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentStepOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.AgentExecutionsTable,
			Columns: []string{workflowexecution.AgentExecutionsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
			Table:   workflowexecution.ApprovalRequestsTable,
			Columns: []string{workflowexecution.ApprovalRequestsColumn},
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
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
