package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds the schema definition for a runtime configuration override
// stored in the database, taking precedence over environment defaults
// (e.g. the LLM-enabled toggle, housekeeping retention days).
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(100).
			Unique().
			Immutable(),
		field.Text("value").
			Comment("JSON-encoded value; arbitrary shape (bool, number, string, object)"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
