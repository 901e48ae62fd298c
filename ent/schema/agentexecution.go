package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity,
// one LLM-agent invocation with its tokens, timings and outcome. Standalone
// invocations (outside any workflow) leave the execution and step refs nil.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("execution_id").
			Optional().
			Nillable(),
		field.Int("step_id").
			Optional().
			Nillable(),
		field.Int("agent_id"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("{text, stop_reason} on success"),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Optional().
			Nillable().
			Comment("input_tokens + output_tokens, kept for cheap aggregation"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow_execution", WorkflowExecution.Type).
			Ref("agent_executions").
			Field("execution_id").
			Unique(),
		edge.From("step", WorkflowStep.Type).
			Ref("agent_executions").
			Field("step_id").
			Unique(),
		edge.From("agent", Agent.Type).
			Ref("executions").
			Field("agent_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id"),
		index.Fields("agent_id", "status"),
		index.Fields("status"),
	}
}
