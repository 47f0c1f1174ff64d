package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity, one entry in a
// ticket's conversation. Insert-only; the auto-increment id is the canonical
// conversation order.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ticket_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system", "tool_use", "tool_result").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("tool_name").
			Optional().
			Nillable().
			Immutable().
			Comment("For tool_use/tool_result rows"),
		field.Text("tool_input").
			Optional().
			Nillable().
			Immutable().
			Comment("JSON-encoded tool input for tool_use rows"),
		field.Int("token_count").
			Default(0).
			Immutable(),
		field.Bool("is_summarized").
			Default(false).
			Comment("Set when an Extraction covers this row; content is never deleted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("messages").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "id"),
		index.Fields("ticket_id", "is_summarized"),
	}
}
