package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeEntry holds the schema definition for the KnowledgeEntry entity.
// A passive reference table: admin-managed content that tool handlers may
// consult. The engine itself never reads it.
type KnowledgeEntry struct {
	ent.Schema
}

// Fields of the KnowledgeEntry.
func (KnowledgeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("content"),
		field.String("category").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the KnowledgeEntry.
func (KnowledgeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
