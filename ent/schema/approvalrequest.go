package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest holds the schema definition for the ApprovalRequest
// entity, a durable pause token awaiting a human decision.
//
// At most one pending request may exist per (execution, step); the partial
// unique index enforcing this cannot be expressed in Ent and is created via
// raw SQL in pkg/database/migrations.go.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Int("execution_id").
			Immutable(),
		field.Int("step_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "timeout").
			Default("pending"),
		field.String("required_role").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional().
			Nillable().
			Comment("Identity of the deciding human, set on approve or reject"),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Text("comments").
			Optional().
			Nillable(),
		field.Time("timeout_at").
			Optional().
			Nillable().
			Comment("Pending past this instant is swept to timeout"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("approval_requests").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", WorkflowStep.Type).
			Ref("approval_requests").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "timeout_at"),
		index.Fields("execution_id", "status"),
	}
}
