package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemEvent holds the schema definition for an Item audit-trail event
// (read/star/archive/priority-change/manual-review actions).
type ItemEvent struct {
	ent.Schema
}

// Fields of the ItemEvent.
func (ItemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("item_id"),
		field.String("event_type").
			MaxLen(50),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("ip_address").
			MaxLen(45).
			Optional().
			Nillable(),
		field.String("session_id").
			MaxLen(100).
			Optional().
			Nillable(),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the ItemEvent.
func (ItemEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("events").
			Unique().
			Required().
			Field("item_id"),
	}
}

// Indexes of the ItemEvent.
func (ItemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("event_type"),
		index.Fields("timestamp"),
	}
}
