// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/batonworks/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExecutionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStepID, v))
}

// RequiredRole applies equality check predicate on the "required_role" field. It's identical to RequiredRoleEQ.
func RequiredRole(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequiredRole, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedAt, v))
}

// Comments applies equality check predicate on the "comments" field. It's identical to CommentsEQ.
func Comments(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldComments, v))
}

// TimeoutAt applies equality check predicate on the "timeout_at" field. It's identical to TimeoutAtEQ.
func TimeoutAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTimeoutAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldExecutionID, vs...))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStepID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// RequiredRoleEQ applies the EQ predicate on the "required_role" field.
func RequiredRoleEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequiredRole, v))
}

// RequiredRoleNEQ applies the NEQ predicate on the "required_role" field.
func RequiredRoleNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRequiredRole, v))
}

// RequiredRoleIn applies the In predicate on the "required_role" field.
func RequiredRoleIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRequiredRole, vs...))
}

// RequiredRoleNotIn applies the NotIn predicate on the "required_role" field.
func RequiredRoleNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRequiredRole, vs...))
}

// RequiredRoleGT applies the GT predicate on the "required_role" field.
func RequiredRoleGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRequiredRole, v))
}

// RequiredRoleGTE applies the GTE predicate on the "required_role" field.
func RequiredRoleGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRequiredRole, v))
}

// RequiredRoleLT applies the LT predicate on the "required_role" field.
func RequiredRoleLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRequiredRole, v))
}

// RequiredRoleLTE applies the LTE predicate on the "required_role" field.
func RequiredRoleLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRequiredRole, v))
}

// RequiredRoleContains applies the Contains predicate on the "required_role" field.
func RequiredRoleContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRequiredRole, v))
}

// RequiredRoleHasPrefix applies the HasPrefix predicate on the "required_role" field.
func RequiredRoleHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRequiredRole, v))
}

// RequiredRoleHasSuffix applies the HasSuffix predicate on the "required_role" field.
func RequiredRoleHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRequiredRole, v))
}

// RequiredRoleIsNil applies the IsNil predicate on the "required_role" field.
func RequiredRoleIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldRequiredRole))
}

// RequiredRoleNotNil applies the NotNil predicate on the "required_role" field.
func RequiredRoleNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldRequiredRole))
}

// RequiredRoleEqualFold applies the EqualFold predicate on the "required_role" field.
func RequiredRoleEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRequiredRole, v))
}

// RequiredRoleContainsFold applies the ContainsFold predicate on the "required_role" field.
func RequiredRoleContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRequiredRole, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldApprovedBy, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldApprovedAt))
}

// CommentsEQ applies the EQ predicate on the "comments" field.
func CommentsEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldComments, v))
}

// CommentsNEQ applies the NEQ predicate on the "comments" field.
func CommentsNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldComments, v))
}

// CommentsIn applies the In predicate on the "comments" field.
func CommentsIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldComments, vs...))
}

// CommentsNotIn applies the NotIn predicate on the "comments" field.
func CommentsNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldComments, vs...))
}

// CommentsGT applies the GT predicate on the "comments" field.
func CommentsGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldComments, v))
}

// CommentsGTE applies the GTE predicate on the "comments" field.
func CommentsGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldComments, v))
}

// CommentsLT applies the LT predicate on the "comments" field.
func CommentsLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldComments, v))
}

// CommentsLTE applies the LTE predicate on the "comments" field.
func CommentsLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldComments, v))
}

// CommentsContains applies the Contains predicate on the "comments" field.
func CommentsContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldComments, v))
}

// CommentsHasPrefix applies the HasPrefix predicate on the "comments" field.
func CommentsHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldComments, v))
}

// CommentsHasSuffix applies the HasSuffix predicate on the "comments" field.
func CommentsHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldComments, v))
}

// CommentsIsNil applies the IsNil predicate on the "comments" field.
func CommentsIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldComments))
}

// CommentsNotNil applies the NotNil predicate on the "comments" field.
func CommentsNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldComments))
}

// CommentsEqualFold applies the EqualFold predicate on the "comments" field.
func CommentsEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldComments, v))
}

// CommentsContainsFold applies the ContainsFold predicate on the "comments" field.
func CommentsContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldComments, v))
}

// TimeoutAtEQ applies the EQ predicate on the "timeout_at" field.
func TimeoutAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTimeoutAt, v))
}

// TimeoutAtNEQ applies the NEQ predicate on the "timeout_at" field.
func TimeoutAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldTimeoutAt, v))
}

// TimeoutAtIn applies the In predicate on the "timeout_at" field.
func TimeoutAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldTimeoutAt, vs...))
}

// TimeoutAtNotIn applies the NotIn predicate on the "timeout_at" field.
func TimeoutAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldTimeoutAt, vs...))
}

// TimeoutAtGT applies the GT predicate on the "timeout_at" field.
func TimeoutAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldTimeoutAt, v))
}

// TimeoutAtGTE applies the GTE predicate on the "timeout_at" field.
func TimeoutAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldTimeoutAt, v))
}

// TimeoutAtLT applies the LT predicate on the "timeout_at" field.
func TimeoutAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldTimeoutAt, v))
}

// TimeoutAtLTE applies the LTE predicate on the "timeout_at" field.
func TimeoutAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldTimeoutAt, v))
}

// TimeoutAtIsNil applies the IsNil predicate on the "timeout_at" field.
func TimeoutAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldTimeoutAt))
}

// TimeoutAtNotNil applies the NotNil predicate on the "timeout_at" field.
func TimeoutAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldTimeoutAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.WorkflowStep) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.NotPredicates(p))
}
