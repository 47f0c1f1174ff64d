package services

import (
	"context"
	"testing"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/stretchr/testify/require"
)

// createTestProject registers a project with defaults suitable for tests.
func createTestProject(t *testing.T, client *ent.Client, code string) *ent.Project {
	t.Helper()
	p, err := NewProjectService(client).Create(context.Background(), models.CreateProjectRequest{
		Code: code,
		Name: code + " test project",
	})
	require.NoError(t, err)
	return p
}

// createTestTicket files a ticket, applying any request mutations first.
func createTestTicket(t *testing.T, client *ent.Client, projectID int, title string, mutate ...func(*models.CreateTicketRequest)) *ent.Ticket {
	t.Helper()
	req := models.CreateTicketRequest{ProjectID: projectID, Title: title}
	for _, m := range mutate {
		m(&req)
	}
	tk, err := NewTicketService(client).Create(context.Background(), req)
	require.NoError(t, err)
	return tk
}

// claimTestTicket drives a ticket to in_progress and returns its session.
func claimTestTicket(t *testing.T, client *ent.Client, ticketID int) *ent.ExecutionSession {
	t.Helper()
	sess, err := NewTicketService(client).Claim(context.Background(), ticketID)
	require.NoError(t, err)
	return sess
}

// parkTestTicket drives a ticket open -> in_progress -> awaiting_input.
func parkTestTicket(t *testing.T, client *ent.Client, ticketID int, reason ticket.AwaitingReason) {
	t.Helper()
	claimTestTicket(t, client, ticketID)
	err := NewTicketService(client).MarkAwaiting(context.Background(), ticketID, &reason, nil)
	require.NoError(t, err)
}

// finishTestTicket drives a ticket all the way to done.
func finishTestTicket(t *testing.T, client *ent.Client, ticketID int) {
	t.Helper()
	parkTestTicket(t, client, ticketID, ticket.AwaitingReasonCompleted)
	_, err := NewTicketService(client).Close(context.Background(), ticketID)
	require.NoError(t, err)
}

// requireStatus reloads a ticket and asserts its status.
func requireStatus(t *testing.T, client *ent.Client, ticketID int, want ticket.Status) *ent.Ticket {
	t.Helper()
	tk, err := client.Ticket.Get(context.Background(), ticketID)
	require.NoError(t, err)
	require.Equal(t, want, tk.Status)
	return tk
}

// aboutNow asserts a timestamp lands within the given window around now.
func aboutNow(t *testing.T, ts time.Time, window time.Duration) {
	t.Helper()
	require.WithinDuration(t, time.Now().UTC(), ts, window)
}
