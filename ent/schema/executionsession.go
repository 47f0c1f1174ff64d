package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionSession holds the schema definition for the ExecutionSession
// entity: one agent invocation. A ticket accumulates sessions across
// retries; at most one may be running per ticket (partial unique index,
// see pkg/database/migrations).
type ExecutionSession struct {
	ent.Schema
}

// Fields of the ExecutionSession.
func (ExecutionSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int("ticket_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "stuck", "stopped", "skipped").
			Default("running"),
		field.Int64("input_tokens").
			Default(0),
		field.Int64("output_tokens").
			Default(0),
		field.Int64("cache_read_tokens").
			Default(0),
		field.Int64("cache_creation_tokens").
			Default(0),
		field.Int("api_calls").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("last_output_at").
			Optional().
			Nillable().
			Comment("Updated on every agent stdout event; drives orphan and stuck scans"),
	}
}

// Edges of the ExecutionSession.
func (ExecutionSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("sessions").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionSession.
func (ExecutionSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "started_at"),
		index.Fields("status"),
	}
}
