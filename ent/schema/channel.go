package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for the Channel entity.
//
// A Channel is one concrete feed belonging to a Source (an RSS URL, a social
// handle, a scrape target) with its own fetch interval and connector config.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("source_id"),
		field.String("name").
			Optional().
			Nillable().
			Comment("Display label, e.g. \"Aktuell\", \"Politik\""),
		field.Enum("connector_type").
			Values(
				"web-feed",
				"html-scrape",
				"document-page",
				"social-a",
				"social-b",
				"messaging-channel",
				"professional-network",
				"photo-network",
				"web-feed-variant",
			).
			Comment("Closed set of connector implementations registered at startup"),
		field.JSON("config", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			Comment("Connector-specific configuration (URL, handle, credentials ref, ...)"),
		field.String("source_identifier").
			MaxLen(500).
			Optional().
			Nillable().
			Comment("Normalized identifier extracted from config, used for the uniqueness constraint"),
		field.Bool("enabled").
			Default(true),
		field.Int("fetch_interval_minutes").
			Default(30),
		field.Time("last_fetch_at").
			Optional().
			Nillable(),
		field.Text("last_error").
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

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("channels").
			Unique().
			Required().
			Field("source_id"),
		edge.To("items", Item.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id"),
		index.Fields("connector_type"),
		index.Fields("source_id", "connector_type", "source_identifier").
			Unique(),
	}
}
