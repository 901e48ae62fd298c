package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tool holds the schema definition for the Tool entity.
// A tool is a named, schema-described capability the model can invoke
// during an agent interaction.
type Tool struct {
	ent.Schema
}

// Fields of the Tool.
func (Tool) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
		field.Enum("tool_type").
			Values("in_process", "external").
			Default("in_process"),
		field.Text("description").
			Optional().
			Comment("Shown to the model in the tool catalog"),
		field.JSON("input_schema", map[string]interface{}{}).
			Optional().
			Comment("JSON Schema for the tool's input"),
		field.String("handler").
			Optional().
			Comment("Registry key for in-process handlers, remote tool name for external ones"),
		field.Bool("active").
			Default(true).
			Comment("Inactive tools are omitted from agent catalogs"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tool.
func (Tool) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agent_tools", AgentTool.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tool.
func (Tool) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tool_type"),
		index.Fields("active"),
	}
}
