package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowExecution holds the schema definition for the WorkflowExecution
// entity, one durable run of a workflow.
//
// Status transitions: pending -> running -> completed | failed | cancelled,
// with running <-> paused around approval steps. pending also serves as the
// run-queue state: queue workers claim pending rows, and a paused execution
// whose approval was granted is requeued as pending with the resume cursor
// set.
type WorkflowExecution struct {
	ent.Schema
}

// Fields of the WorkflowExecution.
func (WorkflowExecution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workflow_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("trigger_data", map[string]interface{}{}).
			Optional(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Accumulated step outputs keyed by output variable, plus the initial trigger"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("current_step_order").
			Optional().
			Nillable().
			Comment("Resume cursor: snapshot of the next step to run"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkflowExecution.
func (WorkflowExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("executions").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approval_requests", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowExecution.
func (WorkflowExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_id", "status"),
		index.Fields("status", "created_at"),
	}
}
