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
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/predicate"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdate) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequiredRole sets the "required_role" field.
func (_u *ApprovalRequestUpdate) SetRequiredRole(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRequiredRole(v)
	return _u
}

// SetNillableRequiredRole sets the "required_role" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRequiredRole(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRequiredRole(*v)
	}
	return _u
}

// ClearRequiredRole clears the value of the "required_role" field.
func (_u *ApprovalRequestUpdate) ClearRequiredRole() *ApprovalRequestUpdate {
	_u.mutation.ClearRequiredRole()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ApprovalRequestUpdate) SetApprovedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableApprovedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ApprovalRequestUpdate) ClearApprovedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ApprovalRequestUpdate) SetApprovedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableApprovedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ApprovalRequestUpdate) ClearApprovedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetComments sets the "comments" field.
func (_u *ApprovalRequestUpdate) SetComments(v string) *ApprovalRequestUpdate {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableComments(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *ApprovalRequestUpdate) ClearComments() *ApprovalRequestUpdate {
	_u.mutation.ClearComments()
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *ApprovalRequestUpdate) SetTimeoutAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableTimeoutAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (_u *ApprovalRequestUpdate) ClearTimeoutAt() *ApprovalRequestUpdate {
	_u.mutation.ClearTimeoutAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRequestUpdate) SetUpdatedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.execution"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.step"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredRole(); ok {
		_spec.SetField(approvalrequest.FieldRequiredRole, field.TypeString, value)
	}
	if _u.mutation.RequiredRoleCleared() {
		_spec.ClearField(approvalrequest.FieldRequiredRole, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(approvalrequest.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(approvalrequest.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(approvalrequest.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutAt, field.TypeTime, value)
	}
	if _u.mutation.TimeoutAtCleared() {
		_spec.ClearField(approvalrequest.FieldTimeoutAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdateOne) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequiredRole sets the "required_role" field.
func (_u *ApprovalRequestUpdateOne) SetRequiredRole(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRequiredRole(v)
	return _u
}

// SetNillableRequiredRole sets the "required_role" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRequiredRole(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRequiredRole(*v)
	}
	return _u
}

// ClearRequiredRole clears the value of the "required_role" field.
func (_u *ApprovalRequestUpdateOne) ClearRequiredRole() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRequiredRole()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ApprovalRequestUpdateOne) SetApprovedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableApprovedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ApprovalRequestUpdateOne) ClearApprovedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ApprovalRequestUpdateOne) SetApprovedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableApprovedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ApprovalRequestUpdateOne) ClearApprovedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetComments sets the "comments" field.
func (_u *ApprovalRequestUpdateOne) SetComments(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableComments(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *ApprovalRequestUpdateOne) ClearComments() *ApprovalRequestUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *ApprovalRequestUpdateOne) SetTimeoutAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableTimeoutAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (_u *ApprovalRequestUpdateOne) ClearTimeoutAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearTimeoutAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRequestUpdateOne) SetUpdatedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.execution"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.step"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
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
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredRole(); ok {
		_spec.SetField(approvalrequest.FieldRequiredRole, field.TypeString, value)
	}
	if _u.mutation.RequiredRoleCleared() {
		_spec.ClearField(approvalrequest.FieldRequiredRole, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(approvalrequest.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(approvalrequest.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(approvalrequest.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutAt, field.TypeTime, value)
	}
	if _u.mutation.TimeoutAtCleared() {
		_spec.ClearField(approvalrequest.FieldTimeoutAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
