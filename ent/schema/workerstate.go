package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WorkerState holds the schema definition for the latest known run-state of
// a named worker, written by the leader pod on every command-channel cycle.
type WorkerState struct {
	ent.Schema
}

// Fields of the WorkerState.
func (WorkerState) Fields() []ent.Field {
	return []ent.Field{
		field.String("worker_name").
			MaxLen(50).
			Unique().
			Immutable(),
		field.Enum("status").
			Values("running", "paused", "stopped").
			Default("stopped"),
		field.Bool("stopped_due_to_errors").
			Default(false),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Identity of the pod currently holding the leader lock"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
