// Package watchdog detects agents that are busy but going nowhere. The
// runner's no-output ceiling catches hangs; this loop catches the subtler
// failure where output keeps flowing but the work loops: repeated failing
// commands, circular edits, no observable progress.
package watchdog

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
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/services"
)

// maxMessageChars truncates individual messages in the classifier prompt.
const maxMessageChars = 1500

const classifierSystem = `You monitor an autonomous coding agent working on a ticket.
Given the trailing conversation, decide whether the agent is stuck: repeating the same failing
actions, editing in circles, or making no observable progress toward the ticket's goal.
Normal long-running work (many different steps, advancing output) is NOT stuck.
Respond with JSON only: {"stuck": true | false, "reason": "<one sentence>"}`

type stuckResponse struct {
	Stuck  bool   `json:"stuck"`
	Reason string `json:"reason"`
}

// Stopper kills a ticket's live agent run. The scheduler's registry
// satisfies it.
type Stopper interface {
	StopTicket(ticketID int, reason string) bool
}

// Notifier mirrors stuck detections to external chat channels.
type Notifier interface {
	TicketStuck(ctx context.Context, t *ent.Ticket, reason string)
}

// Service runs the periodic stuck sweep.
type Service struct {
	cfg      config.WatchdogConfig
	tickets  *services.TicketService
	sessions *services.SessionService
	messages *services.MessageService
	model    llm.Client
	stopper  Stopper
	events   *bus.Bus
	notifier Notifier
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a watchdog. stopper, events, and notifier may be nil.
func NewService(
	cfg config.WatchdogConfig,
	tickets *services.TicketService,
	sessions *services.SessionService,
	messages *services.MessageService,
	model llm.Client,
	stopper Stopper,
	events *bus.Bus,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		tickets:  tickets,
		sessions: sessions,
		messages: messages,
		model:    model,
		stopper:  stopper,
		events:   events,
		notifier: notifier,
		logger:   logger.With("component", "watchdog"),
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

	s.logger.Info("Watchdog started",
		"interval", s.cfg.Interval,
		"min_messages", s.cfg.MinMessages,
		"stuck_to_awaiting", s.cfg.StuckToAwaiting)
}

// Stop signals the loop to exit and waits for it.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Watchdog stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
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

// sweep examines every running ticket with enough conversation to judge.
func (s *Service) sweep(ctx context.Context) {
	running, err := s.tickets.InProgress(ctx)
	if err != nil {
		s.logger.Error("Loading running tickets failed", "error", err)
		return
	}
	for _, t := range running {
		s.examine(ctx, t)
	}
}

// examine classifies one running ticket and intervenes on a positive.
func (s *Service) examine(ctx context.Context, t *ent.Ticket) {
	logger := s.logger.With("ticket_id", t.ID, "ticket", t.TicketNumber)

	count, err := s.messages.Count(ctx, t.ID)
	if err != nil {
		logger.Error("Counting messages failed", "error", err)
		return
	}
	if count < s.cfg.MinMessages {
		return
	}

	window, err := s.messages.Recent(ctx, t.ID, s.cfg.WindowMessages)
	if err != nil {
		logger.Error("Loading conversation window failed", "error", err)
		return
	}

	stuck, reason, err := s.classify(ctx, t, window)
	if err != nil {
		// Transient; the ticket gets another look next interval.
		logger.Warn("Stuck classification failed", "error", err)
		return
	}
	if !stuck {
		logger.Debug("Ticket progressing", "messages", count)
		return
	}

	logger.Warn("Stuck ticket detected", "reason", reason)
	s.intervene(ctx, t, reason)
}

// intervene books the stuck outcome and then kills the run. Database first:
// by the time the worker observes the dying process, the session and ticket
// already record why, and the worker's own terminal bookkeeping no-ops.
func (s *Service) intervene(ctx context.Context, t *ent.Ticket, reason string) {
	logger := s.logger.With("ticket_id", t.ID, "ticket", t.TicketNumber)
	detail := "watchdog: " + reason

	if sess, err := s.sessions.LatestByTicket(ctx, t.ID); err != nil {
		logger.Warn("Loading session failed", "error", err)
	} else if err := s.sessions.Finish(ctx, sess.ID, executionsession.StatusStuck, &detail); err != nil {
		s.tolerate(logger, err, "finishing session")
	}

	status := ticket.StatusStuck
	if s.cfg.StuckToAwaiting {
		status = ticket.StatusAwaitingInput
		r := ticket.AwaitingReasonStuck
		if err := s.tickets.MarkAwaiting(ctx, t.ID, &r, nil); err != nil {
			s.tolerate(logger, err, "parking ticket")
		}
	} else {
		if err := s.tickets.MarkStuck(ctx, t.ID); err != nil {
			s.tolerate(logger, err, "marking ticket stuck")
		}
	}

	if s.stopper != nil && s.stopper.StopTicket(t.ID, detail) {
		logger.Info("Killed live agent run")
	}

	_, err := s.messages.Append(ctx, services.AppendMessage{
		TicketID: t.ID,
		Role:     message.RoleSystem,
		Content:  "Watchdog stopped this run: " + reason,
	})
	if err != nil {
		logger.Warn("Appending watchdog note failed", "error", err)
	}

	if s.events != nil {
		s.events.PublishTicket(t.ID, bus.TypeWatchdogAlert, map[string]any{
			"ticket_number": t.TicketNumber,
			"status":        string(status),
			"reason":        reason,
		})
	}
	if s.notifier != nil {
		s.notifier.TicketStuck(ctx, t, reason)
	}
}

func (s *Service) tolerate(logger *slog.Logger, err error, op string) {
	if errors.Is(err, services.ErrInvalidTransition) {
		logger.Debug("State moved on", "op", op)
		return
	}
	logger.Error("Watchdog bookkeeping failed", "op", op, "error", err)
}

// classify asks the cheap model whether the trailing window shows progress.
func (s *Service) classify(ctx context.Context, t *ent.Ticket, window []*ent.Message) (bool, string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket: %s\n\n", t.Title)
	for _, m := range window {
		content := m.Content
		if m.Role == message.RoleToolUse {
			name := "tool"
			if m.ToolName != nil && *m.ToolName != "" {
				name = *m.ToolName
			}
			input := ""
			if m.ToolInput != nil {
				input = *m.ToolInput
			}
			content = name + " " + input
		}
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(m.Role)), clip(content, maxMessageChars))
	}

	raw, err := s.model.Complete(ctx, llm.Request{
		Tier:   llm.TierFast,
		System: classifierSystem,
		Prompt: b.String(),
	})
	if err != nil {
		return false, "", err
	}

	var resp stuckResponse
	if err := json.Unmarshal([]byte(llm.ExtractJSONObject(raw)), &resp); err != nil {
		return false, "", fmt.Errorf("parsing stuck verdict: %w", err)
	}
	return resp.Stuck, resp.Reason, nil
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
