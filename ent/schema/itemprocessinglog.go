package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemProcessingLog holds the schema definition for a single processing-step
// record, chained by processing_run_id (a correlation id threading fetch ->
// pre-filter -> duplicate-check -> rule-match -> llm-analysis).
type ItemProcessingLog struct {
	ent.Schema
}

// Fields of the ItemProcessingLog.
func (ItemProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("item_id").
			Optional().
			Nillable().
			Comment("Nil when the run was abandoned before the item was persisted"),
		field.String("processing_run_id").
			MaxLen(36).
			Comment("UUID correlating every step of one processing run"),
		field.Enum("step_type").
			Values("fetch", "pre_filter", "duplicate_check", "rule_match", "classifier_override", "llm_analysis", "reprocess"),
		field.Int("step_order"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("model_name").
			MaxLen(100).
			Optional().
			Nillable(),
		field.String("model_version").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("model_provider").
			MaxLen(50).
			Optional().
			Nillable(),
		field.Float("confidence_score").
			Optional().
			Nillable(),
		field.String("priority_input").
			MaxLen(20).
			Optional().
			Nillable(),
		field.String("priority_output").
			MaxLen(20).
			Optional().
			Nillable(),
		field.Bool("priority_changed").
			Default(false),
		field.JSON("ak_suggestions", []string{}).
			Optional(),
		field.String("ak_primary").
			MaxLen(10).
			Optional().
			Nillable(),
		field.Float("ak_confidence").
			Optional().
			Nillable(),
		field.Bool("relevant").
			Optional().
			Nillable(),
		field.Float("relevance_score").
			Optional().
			Nillable(),
		field.Bool("success").
			Default(true),
		field.Bool("skipped").
			Default(false),
		field.String("skip_reason").
			MaxLen(100).
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Full step payload for debugging/training-data export"),
	}
}

// Edges of the ItemProcessingLog.
func (ItemProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("processing_logs").
			Unique().
			Field("item_id"),
	}
}

// Indexes of the ItemProcessingLog.
func (ItemProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("processing_run_id"),
		index.Fields("step_type"),
	}
}
