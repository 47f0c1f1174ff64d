package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity, the atomic
// scheduling unit. Status transitions are validated in pkg/services, never
// written directly by callers.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Immutable(),
		field.String("ticket_number").
			Unique().
			Immutable().
			Comment("{PROJECT_CODE}-NNNN, monotonic per project"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Enum("ticket_type").
			Values("feature", "bug", "debug", "rnd", "task", "improvement", "docs").
			Default("task"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Int("sequence_order").
			Optional().
			Nillable().
			Comment("Explicit queue position; NULL sorts after every integer"),
		field.Int("parent_ticket_id").
			Optional().
			Nillable(),
		field.Bool("is_forced").
			Default(false).
			Comment("Skip-the-queue flag"),
		field.Enum("execution_mode").
			Values("autonomous", "semi_autonomous", "supervised").
			Optional().
			Nillable().
			Comment("NULL inherits the project default"),
		field.Bool("deps_include_awaiting").
			Default(false).
			Comment("Relaxed dependency satisfaction: awaiting_input counts as done"),
		field.Enum("model_tier").
			Values("fast", "smart").
			Optional().
			Nillable(),
		field.Int("max_retries").
			Default(3).
			NonNegative(),
		field.Int("retry_count").
			Default(0).
			NonNegative(),
		field.Time("retry_after").
			Optional().
			Nillable().
			Comment("Cooldown gate; the scheduler skips the ticket until this passes"),
		field.Time("review_scheduled_at").
			Optional().
			Nillable(),
		field.Int("review_attempts").
			Default(0),
		field.Enum("awaiting_reason").
			Values("completed", "question", "error", "stopped", "permission", "stuck", "deps_ready").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("open", "in_progress", "awaiting_input", "done", "failed", "stuck", "skipped").
			Default("open"),
		field.String("result_summary").
			Optional().
			Nillable().
			MaxLen(2000).
			Comment("Filled once on close for tickets with children"),
		field.Int("unsummarized_tokens").
			Default(0).
			Comment("Aggregate token count of messages with is_summarized = false"),
		field.Int64("total_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tickets").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("children", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)).
			From("parent").
			Field("parent_ticket_id").
			Unique(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("extractions", Extraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", ExecutionSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("permissions", ApprovedPermission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dependencies", TicketDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dependents", TicketDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("status", "retry_after"),
		index.Fields("status", "review_scheduled_at"),
		index.Fields("parent_ticket_id"),
	}
}
