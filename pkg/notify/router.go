package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/services"
)

// ticketRef matches ticket numbers like CND-0042 anywhere in a message.
var ticketRef = regexp.MustCompile(`\b[A-Z][A-Z0-9]{1,9}-\d{4,}\b`)

const (
	queryWindow     = 12
	queryMaxChars   = 1500
	answerMaxTokens = 500
)

const querySystem = `You answer an operator's question about a work ticket handled by an autonomous coding agent. You are given the ticket's current state, recent conversation, and the question. Answer in a few short sentences of plain text. Do not invent progress that is not in the conversation.`

// Injector pushes a message into a live agent run. Implemented by the
// scheduler; nil disables live injection and parked-ticket semantics apply
// to everything.
type Injector interface {
	InjectMessage(ticketID int, content string) error
}

// Router turns inbound chat messages into ticket actions. A message whose
// text carries a ticket number either queries it (leading "?", read-only) or
// is recorded as an operator reply that revives the ticket.
type Router struct {
	tickets  *services.TicketService
	messages *services.MessageService
	model    llm.Client
	injector Injector
	logger   *slog.Logger
}

// NewRouter builds the inbound router. injector may be nil.
func NewRouter(tickets *services.TicketService, messages *services.MessageService, model llm.Client, injector Injector, logger *slog.Logger) *Router {
	return &Router{
		tickets:  tickets,
		messages: messages,
		model:    model,
		injector: injector,
		logger:   logger.With("component", "notify-router"),
	}
}

// SetInjector wires the live-run injector after construction. The scheduler
// is built after the notifier it reports through, so the daemon sets this
// once both exist, before any listener starts.
func (r *Router) SetInjector(inj Injector) {
	r.injector = inj
}

// Handle implements Handler. Messages without a ticket reference are channel
// chatter and ignored silently.
func (r *Router) Handle(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	ref := ticketRef.FindString(text)
	if ref == "" {
		return ""
	}

	t, err := r.tickets.GetByNumber(ctx, ref)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Sprintf("Ticket %s not found.", ref)
		}
		r.logger.Error("Failed to resolve ticket reference", "ref", ref, "error", err)
		return ""
	}

	if strings.HasPrefix(text, "?") {
		question := strings.TrimSpace(strings.TrimPrefix(text, "?"))
		return r.answer(ctx, t, question)
	}
	return r.record(ctx, t, text)
}

// answer serves a read-only status query against the cheap model. No ticket
// state changes.
func (r *Router) answer(ctx context.Context, t *ent.Ticket, question string) string {
	recent, err := r.messages.Recent(ctx, t.ID, queryWindow)
	if err != nil {
		r.logger.Error("Failed to load conversation for query",
			"ticket", t.TicketNumber, "error", err)
		return fmt.Sprintf("Couldn't read %s right now.", t.TicketNumber)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ticket %s: %s\nStatus: %s", t.TicketNumber, t.Title, t.Status)
	if t.AwaitingReason != nil {
		fmt.Fprintf(&b, " (%s)", *t.AwaitingReason)
	}
	b.WriteString("\n\nRecent conversation:\n")
	for _, m := range recent {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(m.Role)), clipText(m.Content, queryMaxChars))
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	resp, err := r.model.Complete(ctx, llm.Request{
		Tier:      llm.TierFast,
		System:    querySystem,
		Prompt:    b.String(),
		MaxTokens: answerMaxTokens,
	})
	if err != nil {
		r.logger.Warn("Query answer failed", "ticket", t.TicketNumber, "error", err)
		return fmt.Sprintf("Couldn't answer about %s right now, try again later.", t.TicketNumber)
	}
	return strings.TrimSpace(resp)
}

// record persists the reply as a user message and revives the ticket: a live
// run gets it injected, a parked one is reopened for the next dispatch.
func (r *Router) record(ctx context.Context, t *ent.Ticket, text string) string {
	if _, err := r.messages.Append(ctx, services.AppendMessage{
		TicketID: t.ID,
		Role:     message.RoleUser,
		Content:  text,
	}); err != nil {
		r.logger.Error("Failed to record operator reply",
			"ticket", t.TicketNumber, "error", err)
		return fmt.Sprintf("Couldn't record that on %s, try again.", t.TicketNumber)
	}

	if r.injector != nil {
		if err := r.injector.InjectMessage(t.ID, text); err == nil {
			r.logger.Info("Operator reply injected into live run", "ticket", t.TicketNumber)
			return fmt.Sprintf("Passed to the live run on %s.", t.TicketNumber)
		}
	}

	if err := r.tickets.CancelReview(ctx, t.ID); err != nil {
		r.logger.Error("Failed to cancel pending review",
			"ticket", t.TicketNumber, "error", err)
	}
	if _, err := r.tickets.Reopen(ctx, t.ID); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) {
			r.logger.Error("Failed to reopen ticket",
				"ticket", t.TicketNumber, "error", err)
		}
		// Already open, running, or terminal; the reply is in the
		// transcript either way.
		return fmt.Sprintf("Noted on %s.", t.TicketNumber)
	}
	r.logger.Info("Ticket reopened from operator reply", "ticket", t.TicketNumber)
	return fmt.Sprintf("Reopened %s.", t.TicketNumber)
}

func clipText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
