package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// DaemonStatus holds the schema definition for the DaemonStatus entity, a
// singleton liveness record (id = 1) updated by the heartbeat loop.
type DaemonStatus struct {
	ent.Schema
}

// Annotations of the DaemonStatus.
func (DaemonStatus) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "daemon_status"},
	}
}

// Fields of the DaemonStatus.
func (DaemonStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Comment("Always 1; upserted by the heartbeat loop"),
		field.Enum("status").
			Values("starting", "running", "stopping").
			Default("starting"),
		field.Int("active_tickets").
			Default(0),
		field.JSON("current_tickets", []string{}).
			Optional().
			Comment("Ticket numbers currently in flight"),
		field.Time("last_heartbeat_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Default(time.Now),
		field.Int("pid").
			Default(0),
		field.String("version").
			Optional(),
	}
}
