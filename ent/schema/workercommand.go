package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkerCommand holds the schema definition for a control-channel command
// addressed to a named worker, polled by the leader.
type WorkerCommand struct {
	ent.Schema
}

// Fields of the WorkerCommand.
func (WorkerCommand) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Enum("worker_name").
			Values("classifier", "llm", "scheduler"),
		field.Enum("command").
			Values("pause", "resume", "stop", "fetch_now"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WorkerCommand.
func (WorkerCommand) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("worker_name", "processed_at"),
	}
}
