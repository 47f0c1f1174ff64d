package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project is a user codebase the agent operates on; tickets attach to it 1→N.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable uppercase short tag, e.g. SHOP"),
		field.String("name").
			NotEmpty(),
		field.String("web_path").
			Optional().
			Nillable().
			Comment("Preferred agent working directory"),
		field.String("app_path").
			Optional().
			Nillable().
			Comment("Fallback agent working directory"),
		field.Enum("default_execution_mode").
			Values("autonomous", "semi_autonomous", "supervised").
			Default("autonomous"),
		field.Enum("model_tier").
			Values("fast", "smart").
			Default("smart"),
		field.Bool("git_enabled").
			Default(true),
		field.Bool("archived").
			Default(false),
		field.Text("knowledge").
			Optional().
			Comment("Accumulated decisions, gotchas, conventions (grown by summarization)"),
		field.Text("map_content").
			Optional().
			Comment("Project structure summary injected into prompts"),
		field.Time("map_generated_at").
			Optional().
			Nillable(),
		field.Int("next_ticket_seq").
			Default(1).
			Comment("Monotonic counter for {CODE}-NNNN ticket numbers"),
		field.Int64("total_input_tokens").
			Default(0),
		field.Int64("total_output_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("archived"),
	}
}
