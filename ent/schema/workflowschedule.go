package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowSchedule holds the schema definition for the WorkflowSchedule
// entity, a cron-triggered workflow invocation with stored trigger data.
type WorkflowSchedule struct {
	ent.Schema
}

// Fields of the WorkflowSchedule.
func (WorkflowSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workflow_id").
			Immutable(),
		field.String("cron_expression").
			NotEmpty().
			Comment("Standard cron, optional leading seconds field"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("next_run_at").
			Comment("Cron-computed instant following the later of creation or last run"),
		field.JSON("trigger_data", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkflowSchedule.
func (WorkflowSchedule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("schedules").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowSchedule.
func (WorkflowSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run_at"),
	}
}
