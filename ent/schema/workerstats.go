package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WorkerStats holds the schema definition for periodically-synced worker
// statistics (fresh/backlog processed counts, errors), surfaced to the
// admin-facing status endpoint this repository does not itself implement.
type WorkerStats struct {
	ent.Schema
}

// Fields of the WorkerStats.
func (WorkerStats) Fields() []ent.Field {
	return []ent.Field{
		field.String("worker_name").
			MaxLen(50).
			Unique().
			Immutable(),
		field.Int("fresh_processed").
			Default(0),
		field.Int("backlog_processed").
			Default(0),
		field.Int("errors").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("last_processed_at").
			Optional().
			Nillable(),
		field.Int64("total_processing_ms").
			Default(0),
		field.Int("items_timed").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
