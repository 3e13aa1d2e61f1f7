package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item holds the schema definition for the Item entity — a single fetched
// news item, carrying its classification/analysis metadata and the forest
// pointer used for duplicate grouping.
type Item struct {
	ent.Schema
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("channel_id"),
		field.String("external_id").
			MaxLen(255),
		field.String("title").
			MaxLen(500),
		field.Text("content"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Text("detailed_analysis").
			Optional().
			Nillable(),
		field.String("url").
			MaxLen(2000),
		field.String("author").
			MaxLen(255).
			Optional().
			Nillable(),
		field.Time("published_at"),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
		field.String("content_hash").
			MaxLen(64).
			Comment("SHA-256 of normalized title+content, used for exact-duplicate detection"),
		field.Enum("priority").
			Values("high", "medium", "low", "none").
			Default("low"),
		field.Int("priority_score").
			Default(50),
		field.Bool("is_read").
			Default(false),
		field.Bool("is_starred").
			Default(false),
		field.Bool("is_archived").
			Default(false),
		field.JSON("assigned_aks", []string{}).
			Default([]string{}).
			Comment("Assigned AK/working-group codes"),
		field.Bool("is_manually_reviewed").
			Default(false),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.Text("notes").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}).
			Comment("Namespaced processing metadata: pre_filter, retry_priority, vectordb_indexed, duplicate_*, llm_analysis"),
		field.Bool("needs_llm_processing").
			Default(false),
		field.Int("similar_to_id").
			Optional().
			Nillable().
			Comment("Forest pointer to the oldest (smallest id) item this duplicates"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention housekeeping"),
	}
}

// Edges of the Item.
func (Item) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("channel", Channel.Type).
			Ref("items").
			Unique().
			Required().
			Field("channel_id"),
		edge.To("duplicates", Item.Type),
		edge.From("similar_to", Item.Type).
			Ref("duplicates").
			Unique().
			Field("similar_to_id"),
		edge.To("rule_matches", ItemRuleMatch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", ItemEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("processing_logs", ItemProcessingLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Item.
func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
		index.Fields("external_id"),
		index.Fields("content_hash"),
		index.Fields("published_at"),
		index.Fields("priority"),
		index.Fields("is_read"),
		index.Fields("needs_llm_processing"),
		index.Fields("similar_to_id"),
	}
}
