package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An agent is a named, model-bound prompt-and-tool bundle invoked as one
// LLM interaction.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("provider").
			NotEmpty().
			Comment("Model provider tag, resolved against the driver registry (e.g. 'anthropic')"),
		field.String("model").
			NotEmpty(),
		field.Text("system_prompt").
			Optional(),
		field.Float("temperature").
			Default(0.7).
			Min(0).
			Max(1),
		field.Int("max_tokens").
			Default(4096).
			Positive(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Opaque provider-specific settings"),
		field.Bool("active").
			Default(true).
			Comment("Inactive agents reject execution"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agent_tools", AgentTool.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// No cascade: deleting an agent still referenced by a step must fail.
		edge.To("steps", WorkflowStep.Type),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
