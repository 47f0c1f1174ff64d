package models

import (
	"github.com/fleetworks/conductor/ent"
)

// CreateTicketRequest contains fields for filing a new ticket. Enum fields
// are free-form strings validated by the service layer against the schema.
type CreateTicketRequest struct {
	ProjectID           int    `json:"project_id" binding:"required"`
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description,omitempty"`
	Type                string `json:"type,omitempty"`
	Priority            string `json:"priority,omitempty"`
	SequenceOrder       *int   `json:"sequence_order,omitempty"`
	ParentTicketID      *int   `json:"parent_ticket_id,omitempty"`
	IsForced            bool   `json:"is_forced,omitempty"`
	ExecutionMode       string `json:"execution_mode,omitempty"`
	DepsIncludeAwaiting bool   `json:"deps_include_awaiting,omitempty"`
	ModelTier           string `json:"model_tier,omitempty"`
	MaxRetries          *int   `json:"max_retries,omitempty"`
	DependsOn           []int  `json:"depends_on,omitempty"`
}

// TicketFilters contains filtering options for listing tickets.
type TicketFilters struct {
	ProjectID *int     `json:"project_id,omitempty"`
	Statuses  []string `json:"statuses,omitempty"`
	Limit     int      `json:"limit,omitempty"`
	Offset    int      `json:"offset,omitempty"`
}

// PostMessageRequest appends a user message to a ticket's conversation. When
// the ticket is running, the content is injected into the live agent turn
// instead.
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// StopTicketRequest optionally carries an operator-visible reason.
type StopTicketRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AddDependencyRequest links a ticket to one it depends on.
type AddDependencyRequest struct {
	DependsOnTicketID int `json:"depends_on_ticket_id" binding:"required"`
}

// TicketResponse wraps a Ticket with optional loaded edges.
type TicketResponse struct {
	*ent.Ticket
}

// TicketListResponse contains a paginated ticket list.
type TicketListResponse struct {
	Tickets []*ent.Ticket `json:"tickets"`
	Total   int           `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
}

// TicketDetailResponse is the single-ticket view with its relations loaded.
type TicketDetailResponse struct {
	*ent.Ticket
	Dependencies  []*ent.Ticket         `json:"dependencies"`
	LatestSession *ent.ExecutionSession `json:"latest_session,omitempty"`
}

// MessageListResponse contains a ticket's conversation page.
type MessageListResponse struct {
	Messages []*ent.Message `json:"messages"`
	Total    int            `json:"total"`
}
