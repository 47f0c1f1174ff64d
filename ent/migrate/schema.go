// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovedPermissionsColumns holds the columns for the "approved_permissions" table.
	ApprovedPermissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeInt},
	}
	// ApprovedPermissionsTable holds the schema information for the "approved_permissions" table.
	ApprovedPermissionsTable = &schema.Table{
		Name:       "approved_permissions",
		Columns:    ApprovedPermissionsColumns,
		PrimaryKey: []*schema.Column{ApprovedPermissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approved_permissions_tickets_permissions",
				Columns:    []*schema.Column{ApprovedPermissionsColumns[4]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvedpermission_ticket_id_tool_pattern",
				Unique:  true,
				Columns: []*schema.Column{ApprovedPermissionsColumns[4], ApprovedPermissionsColumns[1], ApprovedPermissionsColumns[2]},
			},
		},
	}
	// DaemonStatusColumns holds the columns for the "daemon_status" table.
	DaemonStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"starting", "running", "stopping"}, Default: "starting"},
		{Name: "active_tickets", Type: field.TypeInt, Default: 0},
		{Name: "current_tickets", Type: field.TypeJSON, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "pid", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeString, Nullable: true},
	}
	// DaemonStatusTable holds the schema information for the "daemon_status" table.
	DaemonStatusTable = &schema.Table{
		Name:       "daemon_status",
		Columns:    DaemonStatusColumns,
		PrimaryKey: []*schema.Column{DaemonStatusColumns[0]},
	}
	// ExecutionSessionsColumns holds the columns for the "execution_sessions" table.
	ExecutionSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "stuck", "stopped", "skipped"}, Default: "running"},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "cache_read_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "cache_creation_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "api_calls", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_output_at", Type: field.TypeTime, Nullable: true},
		{Name: "ticket_id", Type: field.TypeInt},
	}
	// ExecutionSessionsTable holds the schema information for the "execution_sessions" table.
	ExecutionSessionsTable = &schema.Table{
		Name:       "execution_sessions",
		Columns:    ExecutionSessionsColumns,
		PrimaryKey: []*schema.Column{ExecutionSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_sessions_tickets_sessions",
				Columns:    []*schema.Column{ExecutionSessionsColumns[11]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionsession_ticket_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionSessionsColumns[11], ExecutionSessionsColumns[8]},
			},
			{
				Name:    "executionsession_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionSessionsColumns[1]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_message_id", Type: field.TypeInt},
		{Name: "to_message_id", Type: field.TypeInt},
		{Name: "decisions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "problems_solved", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "files_modified", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tests_status", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_patterns", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "important_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_before", Type: field.TypeInt, Default: 0},
		{Name: "tokens_after", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeInt},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_tickets_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[12]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_ticket_id_from_message_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[12], ExtractionsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system", "tool_use", "tool_result"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "is_summarized", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeInt},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_tickets_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_ticket_id_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[0]},
			},
			{
				Name:    "message_ticket_id_is_summarized",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[6]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "web_path", Type: field.TypeString, Nullable: true},
		{Name: "app_path", Type: field.TypeString, Nullable: true},
		{Name: "default_execution_mode", Type: field.TypeEnum, Enums: []string{"autonomous", "semi_autonomous", "supervised"}, Default: "autonomous"},
		{Name: "model_tier", Type: field.TypeEnum, Enums: []string{"fast", "smart"}, Default: "smart"},
		{Name: "git_enabled", Type: field.TypeBool, Default: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "knowledge", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "map_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "map_generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_ticket_seq", Type: field.TypeInt, Default: 1},
		{Name: "total_input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_archived",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ticket_number", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ticket_type", Type: field.TypeEnum, Enums: []string{"feature", "bug", "debug", "rnd", "task", "improvement", "docs"}, Default: "task"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "sequence_order", Type: field.TypeInt, Nullable: true},
		{Name: "is_forced", Type: field.TypeBool, Default: false},
		{Name: "execution_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"autonomous", "semi_autonomous", "supervised"}},
		{Name: "deps_include_awaiting", Type: field.TypeBool, Default: false},
		{Name: "model_tier", Type: field.TypeEnum, Nullable: true, Enums: []string{"fast", "smart"}},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_after", Type: field.TypeTime, Nullable: true},
		{Name: "review_scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_attempts", Type: field.TypeInt, Default: 0},
		{Name: "awaiting_reason", Type: field.TypeEnum, Nullable: true, Enums: []string{"completed", "question", "error", "stopped", "permission", "stuck", "deps_ready"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "awaiting_input", "done", "failed", "stuck", "skipped"}, Default: "open"},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "unsummarized_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "parent_ticket_id", Type: field.TypeInt, Nullable: true},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_projects_tickets",
				Columns:    []*schema.Column{TicketsColumns[23]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tickets_tickets_children",
				Columns:    []*schema.Column{TicketsColumns[24]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[23], TicketsColumns[17]},
			},
			{
				Name:    "ticket_status_retry_after",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[17], TicketsColumns[13]},
			},
			{
				Name:    "ticket_status_review_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[17], TicketsColumns[14]},
			},
			{
				Name:    "ticket_parent_ticket_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[24]},
			},
		},
	}
	// TicketDependenciesColumns holds the columns for the "ticket_dependencies" table.
	TicketDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeInt},
		{Name: "depends_on_ticket_id", Type: field.TypeInt},
	}
	// TicketDependenciesTable holds the schema information for the "ticket_dependencies" table.
	TicketDependenciesTable = &schema.Table{
		Name:       "ticket_dependencies",
		Columns:    TicketDependenciesColumns,
		PrimaryKey: []*schema.Column{TicketDependenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ticket_dependencies_tickets_dependencies",
				Columns:    []*schema.Column{TicketDependenciesColumns[2]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "ticket_dependencies_tickets_dependents",
				Columns:    []*schema.Column{TicketDependenciesColumns[3]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticketdependency_ticket_id_depends_on_ticket_id",
				Unique:  true,
				Columns: []*schema.Column{TicketDependenciesColumns[2], TicketDependenciesColumns[3]},
			},
			{
				Name:    "ticketdependency_depends_on_ticket_id",
				Unique:  false,
				Columns: []*schema.Column{TicketDependenciesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovedPermissionsTable,
		DaemonStatusTable,
		ExecutionSessionsTable,
		ExtractionsTable,
		MessagesTable,
		ProjectsTable,
		TicketsTable,
		TicketDependenciesTable,
	}
)

func init() {
	ApprovedPermissionsTable.ForeignKeys[0].RefTable = TicketsTable
	DaemonStatusTable.Annotation = &entsql.Annotation{
		Table: "daemon_status",
	}
	ExecutionSessionsTable.ForeignKeys[0].RefTable = TicketsTable
	ExtractionsTable.ForeignKeys[0].RefTable = TicketsTable
	MessagesTable.ForeignKeys[0].RefTable = TicketsTable
	TicketsTable.ForeignKeys[0].RefTable = ProjectsTable
	TicketsTable.ForeignKeys[1].RefTable = TicketsTable
	TicketDependenciesTable.ForeignKeys[0].RefTable = TicketsTable
	TicketDependenciesTable.ForeignKeys[1].RefTable = TicketsTable
}
