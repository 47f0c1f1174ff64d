package scheduler

import (
	"context"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/services"
)

// serviceStore adapts the concrete services to the Store interface.
type serviceStore struct {
	projects    *services.ProjectService
	tickets     *services.TicketService
	sessions    *services.SessionService
	messages    *services.MessageService
	permissions *services.PermissionService
}

// NewStore wires the scheduler's persistence surface from the shared
// services.
func NewStore(
	projects *services.ProjectService,
	tickets *services.TicketService,
	sessions *services.SessionService,
	messages *services.MessageService,
	permissions *services.PermissionService,
) Store {
	return &serviceStore{
		projects:    projects,
		tickets:     tickets,
		sessions:    sessions,
		messages:    messages,
		permissions: permissions,
	}
}

func (s *serviceStore) ActiveProjects(ctx context.Context) ([]*ent.Project, error) {
	return s.projects.Active(ctx)
}

func (s *serviceStore) Project(ctx context.Context, id int) (*ent.Project, error) {
	return s.projects.Get(ctx, id)
}

func (s *serviceStore) SelectNext(ctx context.Context, projectID int) (*ent.Ticket, error) {
	return s.tickets.SelectNext(ctx, projectID)
}

func (s *serviceStore) Claim(ctx context.Context, ticketID int) (*ent.ExecutionSession, error) {
	return s.tickets.Claim(ctx, ticketID)
}

func (s *serviceStore) CountsByStatus(ctx context.Context) (map[ticket.Status]int, error) {
	return s.tickets.CountsByStatus(ctx)
}

func (s *serviceStore) RecoverOrphans(ctx context.Context) (int, error) {
	return s.sessions.RecoverOrphans(ctx)
}

func (s *serviceStore) MarkAwaiting(ctx context.Context, ticketID int, reason *ticket.AwaitingReason, reviewAt *time.Time) error {
	return s.tickets.MarkAwaiting(ctx, ticketID, reason, reviewAt)
}

func (s *serviceStore) RecordFailure(ctx context.Context, ticketID int, cooldown time.Duration) (*ent.Ticket, error) {
	return s.tickets.RecordFailure(ctx, ticketID, cooldown)
}

func (s *serviceStore) RecordRateLimit(ctx context.Context, ticketID int, cooldown time.Duration) error {
	return s.tickets.RecordRateLimit(ctx, ticketID, cooldown)
}

func (s *serviceStore) CancelReview(ctx context.Context, ticketID int) error {
	return s.tickets.CancelReview(ctx, ticketID)
}

func (s *serviceStore) AppendMessage(ctx context.Context, m services.AppendMessage) (*ent.Message, error) {
	return s.messages.Append(ctx, m)
}

func (s *serviceStore) FinishSession(ctx context.Context, id string, status executionsession.Status, errMsg *string) error {
	return s.sessions.Finish(ctx, id, status, errMsg)
}

func (s *serviceStore) RecordUsage(ctx context.Context, sessionID string, usage services.TokenUsage) error {
	return s.sessions.RecordUsage(ctx, sessionID, usage)
}

func (s *serviceStore) TouchSession(ctx context.Context, sessionID string) error {
	return s.sessions.TouchOutput(ctx, sessionID)
}

func (s *serviceStore) ApprovedPatterns(ctx context.Context, ticketID int) ([]agent.ApprovedPattern, error) {
	rows, err := s.permissions.Approved(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	patterns := make([]agent.ApprovedPattern, len(rows))
	for i, row := range rows {
		patterns[i] = agent.ApprovedPattern{Tool: row.Tool, Pattern: row.Pattern}
	}
	return patterns, nil
}
