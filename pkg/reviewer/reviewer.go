// Package reviewer decides what happens to tickets parked in awaiting_input
// after a completed agent turn. A delay gives the user a window to intervene;
// after it the reviewer classifies the final exchange and either closes the
// ticket, labels it a question, or surfaces an error.
package reviewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/services"
)

const (
	// sweepBatch bounds how many due tickets one sweep processes.
	sweepBatch = 20

	// reviewWindow is how many trailing messages the classifier sees.
	reviewWindow = 12

	// maxMessageChars truncates individual messages in the classifier
	// prompt; verdicts hinge on the shape of the exchange, not full logs.
	maxMessageChars = 2000
)

// Verdict is the classifier's reading of a finished agent turn.
type Verdict string

const (
	VerdictCompleted Verdict = "COMPLETED"
	VerdictQuestion  Verdict = "QUESTION"
	VerdictError     Verdict = "ERROR"
)

const classifierSystem = `You review the final exchange of an autonomous coding agent's work on a ticket.
Decide how the turn ended:
- COMPLETED: the agent finished the requested work.
- QUESTION: the agent is asking the user something and cannot proceed without an answer.
- ERROR: the agent hit a problem it could not solve and gave up.
Respond with JSON only: {"verdict": "COMPLETED" | "QUESTION" | "ERROR", "reason": "<one sentence>"}`

type verdictResponse struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
}

// Service runs the periodic review sweep.
type Service struct {
	cfg      config.ReviewConfig
	tickets  *services.TicketService
	messages *services.MessageService
	model    llm.Client
	events   *bus.Bus
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a reviewer. events may be nil.
func NewService(
	cfg config.ReviewConfig,
	tickets *services.TicketService,
	messages *services.MessageService,
	model llm.Client,
	events *bus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		tickets:  tickets,
		messages: messages,
		model:    model,
		events:   events,
		logger:   logger.With("component", "reviewer"),
	}
}

// Start launches the sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Reviewer started",
		"sweep_interval", s.cfg.SweepInterval, "auto_review_delay", s.cfg.AutoReviewDelay)
}

// Stop signals the loop to exit and waits for it.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Reviewer stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep processes every due review once. Each ticket is handled
// independently; one failure never blocks the rest.
func (s *Service) sweep(ctx context.Context) {
	due, err := s.tickets.DueForReview(ctx, time.Now().UTC(), sweepBatch)
	if err != nil {
		s.logger.Error("Loading due reviews failed", "error", err)
		return
	}
	for _, t := range due {
		s.review(ctx, t)
	}
}

// review applies the decision ladder to one due ticket: user interventions
// cancel, strict tickets only get labelled, relaxed tickets are classified
// and possibly auto-closed.
func (s *Service) review(ctx context.Context, t *ent.Ticket) {
	logger := s.logger.With("ticket_id", t.ID, "ticket", t.TicketNumber)

	recent, err := s.messages.Recent(ctx, t.ID, reviewWindow)
	if err != nil {
		logger.Error("Loading conversation failed", "error", err)
		return
	}
	if len(recent) == 0 || recent[len(recent)-1].Role != message.RoleAssistant {
		// The user (or the daemon) spoke after the agent; their move.
		if err := s.tickets.CancelReview(ctx, t.ID); err != nil {
			logger.Warn("Clearing review failed", "error", err)
		}
		logger.Debug("Review cancelled, conversation moved on")
		return
	}

	if !t.DepsIncludeAwaiting {
		// Strict ticket: record that the agent believes it is done, but
		// leave the close to the human.
		s.setReason(ctx, logger, t, ticket.AwaitingReasonCompleted)
		return
	}

	verdict, reason, err := s.classify(ctx, recent)
	if err != nil {
		s.recordAttempt(ctx, logger, t, err)
		return
	}
	logger.Info("Review classified", "verdict", verdict, "reason", reason)

	switch verdict {
	case VerdictCompleted:
		if _, err := s.tickets.Close(ctx, t.ID); err != nil {
			if errors.Is(err, services.ErrInvalidTransition) {
				logger.Debug("Ticket moved on before auto-close")
				return
			}
			logger.Error("Auto-close failed", "error", err)
			return
		}
		s.systemMessage(ctx, t.ID, "Auto-review: closed as completed. "+reason)
		s.publish(t.ID, map[string]any{"status": string(ticket.StatusDone), "detail": "auto_reviewed"})
	case VerdictQuestion:
		s.setReason(ctx, logger, t, ticket.AwaitingReasonQuestion)
	case VerdictError:
		s.setReason(ctx, logger, t, ticket.AwaitingReasonError)
	}
}

// recordAttempt books a failed classification and either reschedules or, at
// the attempt cap, falls back to the conservative completed label.
func (s *Service) recordAttempt(ctx context.Context, logger *slog.Logger, t *ent.Ticket, cause error) {
	if t.ReviewAttempts+1 >= s.cfg.MaxAttempts {
		logger.Warn("Review classification giving up", "attempts", t.ReviewAttempts+1, "error", cause)
		if err := s.tickets.RecordReviewAttempt(ctx, t.ID, nil); err != nil {
			s.tolerate(logger, err, "recording final attempt")
		}
		s.setReason(ctx, logger, t, ticket.AwaitingReasonCompleted)
		return
	}

	next := time.Now().UTC().Add(s.cfg.AutoReviewDelay)
	logger.Warn("Review classification failed, rescheduling",
		"attempt", t.ReviewAttempts+1, "next", next, "error", cause)
	if err := s.tickets.RecordReviewAttempt(ctx, t.ID, &next); err != nil {
		s.tolerate(logger, err, "recording attempt")
	}
}

func (s *Service) setReason(ctx context.Context, logger *slog.Logger, t *ent.Ticket, reason ticket.AwaitingReason) {
	if err := s.tickets.SetAwaitingReason(ctx, t.ID, reason); err != nil {
		s.tolerate(logger, err, "setting awaiting reason")
		return
	}
	s.publish(t.ID, map[string]any{"status": string(ticket.StatusAwaitingInput), "reason": string(reason)})
}

// tolerate downgrades lost transition races to debug; the other writer
// already decided the ticket's fate.
func (s *Service) tolerate(logger *slog.Logger, err error, op string) {
	if errors.Is(err, services.ErrInvalidTransition) {
		logger.Debug("Ticket moved on", "op", op)
		return
	}
	logger.Error("Review bookkeeping failed", "op", op, "error", err)
}

// classify asks the cheap model for a verdict on the trailing exchange.
func (s *Service) classify(ctx context.Context, recent []*ent.Message) (Verdict, string, error) {
	raw, err := s.model.Complete(ctx, llm.Request{
		Tier:   llm.TierFast,
		System: classifierSystem,
		Prompt: renderExchange(recent),
	})
	if err != nil {
		return "", "", err
	}

	var resp verdictResponse
	if err := json.Unmarshal([]byte(llm.ExtractJSONObject(raw)), &resp); err != nil {
		return "", "", fmt.Errorf("parsing verdict: %w", err)
	}
	switch v := Verdict(strings.ToUpper(strings.TrimSpace(resp.Verdict))); v {
	case VerdictCompleted, VerdictQuestion, VerdictError:
		return v, resp.Reason, nil
	default:
		return "", "", fmt.Errorf("unknown verdict %q", resp.Verdict)
	}
}

// renderExchange formats the trailing conversation from the last user turn
// onward; everything before it is context the classifier does not need.
func renderExchange(recent []*ent.Message) string {
	start := 0
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Role == message.RoleUser {
			start = i
			break
		}
	}

	var b strings.Builder
	for _, m := range recent[start:] {
		content := m.Content
		if m.Role == message.RoleToolUse && m.ToolName != nil {
			content = "[" + *m.ToolName + "]"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", strings.ToUpper(string(m.Role)), clip(content, maxMessageChars))
	}
	return b.String()
}

// clip bounds a string, cutting at a rune boundary.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func (s *Service) systemMessage(ctx context.Context, ticketID int, content string) {
	_, err := s.messages.Append(ctx, services.AppendMessage{
		TicketID: ticketID,
		Role:     message.RoleSystem,
		Content:  content,
	})
	if err != nil {
		s.logger.Warn("Appending review note failed", "ticket_id", ticketID, "error", err)
	}
}

func (s *Service) publish(ticketID int, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.PublishTicket(ticketID, bus.TypeTicketStatus, payload)
}
