package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/services"
)

// parkTicket claims a ticket and parks it awaiting input, the state an agent
// run leaves behind when it asks a question.
func (e *apiEnv) parkTicket(t *testing.T, id int) {
	t.Helper()
	ctx := context.Background()
	_, err := e.tickets.Claim(ctx, id)
	require.NoError(t, err)
	reason := ticket.AwaitingReasonQuestion
	due := time.Now().Add(30 * time.Minute)
	require.NoError(t, e.tickets.MarkAwaiting(ctx, id, &reason, &due))
}

func TestTickets_Create(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "TCK")

	w := env.request(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{
		ProjectID: p.ID,
		Title:     "Wire up the importer",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[*ent.Ticket](t, w)
	assert.Equal(t, "TCK-0001", created.TicketNumber)
	assert.Equal(t, ticket.StatusOpen, created.Status)
}

func TestTickets_CreateValidation(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodPost, "/api/v1/tickets", map[string]string{
		"title": "no project",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTickets_CreateUnknownProject(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{
		ProjectID: 424242,
		Title:     "orphan",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTickets_DetailBundlesConversation(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "DTL")
	tk := env.createTicket(t, p.ID, "Investigate slow query")

	ctx := context.Background()
	for _, content := range []string{"Looking at the query plan.", "Seq scan on orders, adding an index."} {
		_, err := env.messages.Append(ctx, services.AppendMessage{
			TicketID: tk.ID,
			Role:     message.RoleAssistant,
			Content:  content,
		})
		require.NoError(t, err)
	}
	env.sched.setRunning(tk.ID, true)

	w := env.request(t, http.MethodGet, "/api/v1/tickets/"+itoa(tk.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[TicketDetailResponse](t, w)
	assert.Equal(t, tk.TicketNumber, resp.TicketNumber)
	assert.Len(t, resp.Messages, 2)
	assert.Equal(t, 2, resp.MessageTotal)
	assert.True(t, resp.Running)
}

func TestTickets_DetailUnknown(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/api/v1/tickets/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTickets_PostMessageInjectsIntoLiveRun(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "INJ")
	tk := env.createTicket(t, p.ID, "Refactor auth middleware")
	_, err := env.tickets.Claim(context.Background(), tk.ID)
	require.NoError(t, err)
	env.sched.setRunning(tk.ID, true)

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/messages",
		models.PostMessageRequest{Content: "Keep the old cookie name."})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[PostMessageResponse](t, w)
	assert.Equal(t, "injected", resp.Delivery)
	require.NotNil(t, resp.Message)

	env.sched.mu.Lock()
	injected := env.sched.injected[tk.ID]
	env.sched.mu.Unlock()
	require.Len(t, injected, 1)
	assert.Equal(t, "Keep the old cookie name.", injected[0])

	// Ticket stays in progress; the live run owns the state.
	got, err := env.tickets.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, got.Status)
}

func TestTickets_PostMessageReopensParkedTicket(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "RPN")
	tk := env.createTicket(t, p.ID, "Pick a palette")
	env.parkTicket(t, tk.ID)

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/messages",
		models.PostMessageRequest{Content: "Go with the blue one."})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[PostMessageResponse](t, w)
	assert.Equal(t, "reopened", resp.Delivery)

	got, err := env.tickets.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusOpen, got.Status)
	assert.Nil(t, got.ReviewScheduledAt)

	// The answer is in the transcript for the next dispatch.
	msgs, _, err := env.messages.Conversation(context.Background(), tk.ID, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	assert.Equal(t, message.RoleUser, last.Role)
	assert.Contains(t, last.Content, "blue one")
}

func TestTickets_PostMessageRecordedOnOpenTicket(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "RCD")
	tk := env.createTicket(t, p.ID, "Document the CLI")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/messages",
		models.PostMessageRequest{Content: "Mention the env vars too."})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[PostMessageResponse](t, w)
	assert.Equal(t, "recorded", resp.Delivery)

	got, err := env.tickets.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusOpen, got.Status)
}

func TestTickets_StopKillSwitch(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "STP")
	tk := env.createTicket(t, p.ID, "Long migration")
	env.sched.setRunning(tk.ID, true)

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/stop",
		models.StopTicketRequest{Reason: "wrong branch"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[StopResponse](t, w)
	assert.True(t, resp.Stopped)

	env.sched.mu.Lock()
	reason := env.sched.stopped[tk.ID]
	env.sched.mu.Unlock()
	assert.Equal(t, "wrong branch", reason)
}

func TestTickets_StopWithoutLiveAgent(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "NOP")
	tk := env.createTicket(t, p.ID, "Nothing running")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/stop", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "ticket has no live agent", resp.Error)
}

func TestTickets_CloseParkedTicket(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "CLS")
	tk := env.createTicket(t, p.ID, "Awaiting signoff")
	env.parkTicket(t, tk.ID)

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/close", nil)

	require.Equal(t, http.StatusOK, w.Code)
	closed := decodeBody[*ent.Ticket](t, w)
	assert.Equal(t, ticket.StatusDone, closed.Status)
}

func TestTickets_CloseOpenTicketConflicts(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "CNF")
	tk := env.createTicket(t, p.ID, "Untouched work")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/close", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "invalid status transition", resp.Error)
}

func TestTickets_Skip(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "SKP")
	tk := env.createTicket(t, p.ID, "Obsolete request")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/skip", nil)

	require.Equal(t, http.StatusOK, w.Code)
	skipped := decodeBody[*ent.Ticket](t, w)
	assert.Equal(t, ticket.StatusSkipped, skipped.Status)
}

func TestTickets_ApprovePermission(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "PRM")
	tk := env.createTicket(t, p.ID, "Deploy the docs site")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/permissions",
		models.ApprovePermissionRequest{Tool: "shell", Input: "git push origin main"})

	require.Equal(t, http.StatusCreated, w.Code)
	perm := decodeBody[*ent.ApprovedPermission](t, w)
	assert.Equal(t, "shell", perm.Tool)
	assert.Equal(t, "git *", perm.Pattern)
}

func TestTickets_ApprovePermissionRequiresTool(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "PRV")
	tk := env.createTicket(t, p.ID, "Missing tool field")

	w := env.request(t, http.MethodPost, "/api/v1/tickets/"+itoa(tk.ID)+"/permissions",
		map[string]string{"input": "rm -rf build"})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
