package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovedPermission holds the schema definition for the ApprovedPermission
// entity: a (ticket, tool, pattern) record the semi-autonomous permission
// filter consults to auto-allow otherwise-askable operations.
type ApprovedPermission struct {
	ent.Schema
}

// Fields of the ApprovedPermission.
func (ApprovedPermission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ticket_id").
			Immutable(),
		field.String("tool").
			NotEmpty().
			Immutable(),
		field.String("pattern").
			NotEmpty().
			Immutable().
			Comment(`Glob-ish pattern, e.g. "npm *" derived from "npm install left-pad"`),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApprovedPermission.
func (ApprovedPermission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("permissions").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovedPermission.
func (ApprovedPermission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "tool", "pattern").
			Unique(),
	}
}
