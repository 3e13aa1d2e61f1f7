package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity.
//
// A Source is an organization or entity we track (e.g. a ministry, a party
// chapter). A Source owns one or more Channels.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.String("name").
			MaxLen(255),
		field.Text("description").
			Optional().
			Nillable(),
		field.Bool("is_stakeholder").
			Default(false).
			Comment("Stakeholder sources are never filtered out regardless of priority"),
		field.Bool("enabled").
			Default(true).
			Comment("Master toggle for all channels of this source"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("channels", Channel.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
	}
}
