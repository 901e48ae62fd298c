package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity, an ordered
// graph of steps executed over a shared context document.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Enum("trigger_type").
			Values("manual", "scheduled", "event").
			Default("manual"),
		field.JSON("trigger_config", map[string]interface{}{}).
			Optional(),
		field.Enum("execution_mode").
			Values("sync", "async").
			Default("sync").
			Comment("sync runs inline and returns the outcome; async enqueues"),
		field.Bool("active").
			Default(true).
			Comment("Inactive workflows reject new executions"),
		field.JSON("input_schema", map[string]interface{}{}).
			Optional(),
		field.String("interface_type").
			Optional(),
		field.Bool("public").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", WorkflowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", WorkflowExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("schedules", WorkflowSchedule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_type"),
		index.Fields("active"),
	}
}
