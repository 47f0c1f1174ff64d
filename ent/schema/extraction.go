package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Extraction holds the schema definition for the Extraction entity: a
// structured compression of a contiguous message range [from_message_id,
// to_message_id]. Extractions are additive: covered messages are flagged
// is_summarized, never deleted.
type Extraction struct {
	ent.Schema
}

// Fields of the Extraction.
func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ticket_id").
			Immutable(),
		field.Int("from_message_id").
			Immutable(),
		field.Int("to_message_id").
			Immutable(),
		field.Text("decisions").
			Optional(),
		field.Text("problems_solved").
			Optional(),
		field.Text("files_modified").
			Optional(),
		field.Text("tests_status").
			Optional(),
		field.Text("error_patterns").
			Optional(),
		field.Text("important_notes").
			Optional(),
		field.Int("tokens_before").
			Default(0),
		field.Int("tokens_after").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Extraction.
func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("extractions").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Extraction.
func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "from_message_id"),
	}
}
