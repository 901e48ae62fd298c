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
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowstep"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *AgentExecutionUpdate) SetExecutionID(v int) *AgentExecutionUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableExecutionID(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AgentExecutionUpdate) ClearExecutionID() *AgentExecutionUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AgentExecutionUpdate) SetStepID(v int) *AgentExecutionUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStepID(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *AgentExecutionUpdate) ClearStepID() *AgentExecutionUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentExecutionUpdate) SetAgentID(v int) *AgentExecutionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableAgentID(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdate) SetStatus(v agentexecution.Status) *AgentExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdate) SetInput(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentExecutionUpdate) ClearInput() *AgentExecutionUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdate) SetOutput(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdate) ClearOutput() *AgentExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentExecutionUpdate) SetInputTokens(v int) *AgentExecutionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableInputTokens(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentExecutionUpdate) AddInputTokens(v int) *AgentExecutionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentExecutionUpdate) ClearInputTokens() *AgentExecutionUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentExecutionUpdate) SetOutputTokens(v int) *AgentExecutionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableOutputTokens(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentExecutionUpdate) AddOutputTokens(v int) *AgentExecutionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentExecutionUpdate) ClearOutputTokens() *AgentExecutionUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentExecutionUpdate) SetTokensUsed(v int) *AgentExecutionUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableTokensUsed(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentExecutionUpdate) AddTokensUsed(v int) *AgentExecutionUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *AgentExecutionUpdate) ClearTokensUsed() *AgentExecutionUpdate {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdate) SetDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableDurationMs(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdate) AddDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentExecutionUpdate) ClearDurationMs() *AgentExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdate) SetErrorMessage(v string) *AgentExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableErrorMessage(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdate) ClearErrorMessage() *AgentExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdate) SetStartedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentExecutionUpdate) ClearStartedAt() *AgentExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdate) SetCompletedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdate) ClearCompletedAt() *AgentExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWorkflowExecutionID sets the "workflow_execution" edge to the WorkflowExecution entity by ID.
func (_u *AgentExecutionUpdate) SetWorkflowExecutionID(id int) *AgentExecutionUpdate {
	_u.mutation.SetWorkflowExecutionID(id)
	return _u
}

// SetNillableWorkflowExecutionID sets the "workflow_execution" edge to the WorkflowExecution entity by ID if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableWorkflowExecutionID(id *int) *AgentExecutionUpdate {
	if id != nil {
		_u = _u.SetWorkflowExecutionID(*id)
	}
	return _u
}

// SetWorkflowExecution sets the "workflow_execution" edge to the WorkflowExecution entity.
func (_u *AgentExecutionUpdate) SetWorkflowExecution(v *WorkflowExecution) *AgentExecutionUpdate {
	return _u.SetWorkflowExecutionID(v.ID)
}

// SetStep sets the "step" edge to the WorkflowStep entity.
func (_u *AgentExecutionUpdate) SetStep(v *WorkflowStep) *AgentExecutionUpdate {
	return _u.SetStepID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentExecutionUpdate) SetAgent(v *Agent) *AgentExecutionUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearWorkflowExecution clears the "workflow_execution" edge to the WorkflowExecution entity.
func (_u *AgentExecutionUpdate) ClearWorkflowExecution() *AgentExecutionUpdate {
	_u.mutation.ClearWorkflowExecution()
	return _u
}

// ClearStep clears the "step" edge to the WorkflowStep entity.
func (_u *AgentExecutionUpdate) ClearStep() *AgentExecutionUpdate {
	_u.mutation.ClearStep()
	return _u
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentExecutionUpdate) ClearAgent() *AgentExecutionUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.agent"`)
	}
	return nil
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentexecution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentexecution.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentexecution.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentexecution.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(agentexecution.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.WorkflowExecutionTable,
			Columns: []string{agentexecution.WorkflowExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.WorkflowExecutionTable,
			Columns: []string{agentexecution.WorkflowExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.StepTable,
			Columns: []string{agentexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.StepTable,
			Columns: []string{agentexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.AgentTable,
			Columns: []string{agentexecution.AgentColumn},
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
			Table:   agentexecution.AgentTable,
			Columns: []string{agentexecution.AgentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *AgentExecutionUpdateOne) SetExecutionID(v int) *AgentExecutionUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableExecutionID(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AgentExecutionUpdateOne) ClearExecutionID() *AgentExecutionUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AgentExecutionUpdateOne) SetStepID(v int) *AgentExecutionUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStepID(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *AgentExecutionUpdateOne) ClearStepID() *AgentExecutionUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentExecutionUpdateOne) SetAgentID(v int) *AgentExecutionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableAgentID(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdateOne) SetStatus(v agentexecution.Status) *AgentExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdateOne) SetInput(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentExecutionUpdateOne) ClearInput() *AgentExecutionUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdateOne) SetOutput(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdateOne) ClearOutput() *AgentExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentExecutionUpdateOne) SetInputTokens(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableInputTokens(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentExecutionUpdateOne) AddInputTokens(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentExecutionUpdateOne) ClearInputTokens() *AgentExecutionUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentExecutionUpdateOne) SetOutputTokens(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableOutputTokens(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentExecutionUpdateOne) AddOutputTokens(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentExecutionUpdateOne) ClearOutputTokens() *AgentExecutionUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentExecutionUpdateOne) SetTokensUsed(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableTokensUsed(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentExecutionUpdateOne) AddTokensUsed(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *AgentExecutionUpdateOne) ClearTokensUsed() *AgentExecutionUpdateOne {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) SetDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableDurationMs(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) AddDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) ClearDurationMs() *AgentExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdateOne) SetErrorMessage(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableErrorMessage(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdateOne) ClearErrorMessage() *AgentExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdateOne) SetStartedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentExecutionUpdateOne) ClearStartedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdateOne) SetCompletedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdateOne) ClearCompletedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWorkflowExecutionID sets the "workflow_execution" edge to the WorkflowExecution entity by ID.
func (_u *AgentExecutionUpdateOne) SetWorkflowExecutionID(id int) *AgentExecutionUpdateOne {
	_u.mutation.SetWorkflowExecutionID(id)
	return _u
}

// SetNillableWorkflowExecutionID sets the "workflow_execution" edge to the WorkflowExecution entity by ID if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableWorkflowExecutionID(id *int) *AgentExecutionUpdateOne {
	if id != nil {
		_u = _u.SetWorkflowExecutionID(*id)
	}
	return _u
}

// SetWorkflowExecution sets the "workflow_execution" edge to the WorkflowExecution entity.
func (_u *AgentExecutionUpdateOne) SetWorkflowExecution(v *WorkflowExecution) *AgentExecutionUpdateOne {
	return _u.SetWorkflowExecutionID(v.ID)
}

// SetStep sets the "step" edge to the WorkflowStep entity.
func (_u *AgentExecutionUpdateOne) SetStep(v *WorkflowStep) *AgentExecutionUpdateOne {
	return _u.SetStepID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentExecutionUpdateOne) SetAgent(v *Agent) *AgentExecutionUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearWorkflowExecution clears the "workflow_execution" edge to the WorkflowExecution entity.
func (_u *AgentExecutionUpdateOne) ClearWorkflowExecution() *AgentExecutionUpdateOne {
	_u.mutation.ClearWorkflowExecution()
	return _u
}

// ClearStep clears the "step" edge to the WorkflowStep entity.
func (_u *AgentExecutionUpdateOne) ClearStep() *AgentExecutionUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentExecutionUpdateOne) ClearAgent() *AgentExecutionUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.agent"`)
	}
	return nil
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
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
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentexecution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentexecution.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentexecution.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentexecution.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentexecution.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(agentexecution.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.WorkflowExecutionTable,
			Columns: []string{agentexecution.WorkflowExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.WorkflowExecutionTable,
			Columns: []string{agentexecution.WorkflowExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.StepTable,
			Columns: []string{agentexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.StepTable,
			Columns: []string{agentexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.AgentTable,
			Columns: []string{agentexecution.AgentColumn},
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
			Table:   agentexecution.AgentTable,
			Columns: []string{agentexecution.AgentColumn},
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
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
