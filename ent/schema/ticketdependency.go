package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketDependency is a directed edge ticket → depends_on_ticket.
// Self-loops and cycles are rejected by TicketService.AddDependency.
type TicketDependency struct {
	ent.Schema
}

// Fields of the TicketDependency.
func (TicketDependency) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ticket_id").
			Immutable(),
		field.Int("depends_on_ticket_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketDependency.
func (TicketDependency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("dependencies").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.From("depends_on", Ticket.Type).
			Ref("dependents").
			Field("depends_on_ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketDependency.
func (TicketDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "depends_on_ticket_id").
			Unique(),
		index.Fields("depends_on_ticket_id"),
	}
}
