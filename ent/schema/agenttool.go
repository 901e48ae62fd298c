package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentTool holds the schema definition for the AgentTool entity, the
// assignment of a tool to an agent with an optional per-agent override.
type AgentTool struct {
	ent.Schema
}

// Fields of the AgentTool.
func (AgentTool) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Immutable(),
		field.Int("tool_id").
			Immutable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Per-agent override merged over the tool's own config"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentTool.
func (AgentTool) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("agent_tools").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("tool", Tool.Type).
			Ref("agent_tools").
			Field("tool_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentTool.
func (AgentTool) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "tool_id").
			Unique(),
	}
}
