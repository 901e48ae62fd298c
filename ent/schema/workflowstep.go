package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStep holds the schema definition for the WorkflowStep entity.
// Steps belong to exactly one workflow; step_order defines execution order.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workflow_id").
			Immutable(),
		field.Int("step_order").
			NonNegative(),
		field.Enum("step_type").
			Values("agent", "condition", "approval", "parallel"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Required iff step_type is 'agent'"),
		field.String("name").
			NotEmpty(),
		field.JSON("input_mapping", map[string]interface{}{}).
			Optional().
			Comment("Template with ${path} leaves; nil passes the whole context through"),
		field.String("output_variable").
			Optional().
			Comment("Context key receiving the step output"),
		field.String("condition_expression").
			Optional().
			Comment("Skip predicate: when it evaluates true the step is skipped"),
		field.JSON("depends_on", []int{}).
			Optional().
			Comment("Step orders that must complete first; also groups parallel sub-steps"),
		field.JSON("approval_config", map[string]interface{}{}).
			Optional(),
		field.JSON("retry_config", map[string]interface{}{}).
			Optional().
			Comment("Keys: maxRetries, initialDelayMs, maxDelayMs, multiplier"),
		field.Int("timeout_seconds").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("steps").
			Field("agent_id").
			Unique(),
		// Historical rows outlive step edits.
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("approval_requests", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_order").
			Unique(),
		index.Fields("step_type"),
	}
}
