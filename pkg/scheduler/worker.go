package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/prompt"
	"github.com/fleetworks/conductor/pkg/services"
)

// touchInterval throttles session liveness writes; the agent can emit many
// events per second.
const touchInterval = 5 * time.Second

// worker drives one claimed ticket through a full agent run: envelope,
// spawn, event persistence, and terminal bookkeeping.
type worker struct {
	store    Store
	builder  EnvelopeBuilder
	runner   Runner
	bus      *bus.Bus
	notifier Notifier
	logger   *slog.Logger

	models            ModelNames
	retryCooldown     time.Duration
	rateLimitCooldown time.Duration
	reviewDelay       time.Duration

	project *ent.Project
	ticket  *ent.Ticket
	session *ent.ExecutionSession

	// done releases the scheduler slot and registry entries.
	done func()

	mu         sync.Mutex
	ex         Execution
	stopReason string
	pending    []string
	lastTouch  time.Time
}

func (w *worker) run(ctx context.Context) {
	defer w.done()
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Worker panicked", "panic", r, "stack", string(debug.Stack()))
			w.fail(context.Background(), fmt.Sprintf("internal error: %v", r))
		}
	}()

	envelope, err := w.builder.BuildEnvelope(ctx, w.ticket)
	if err != nil {
		w.fail(ctx, fmt.Sprintf("building prompt: %v", err))
		return
	}

	workdir := prompt.Workdir(w.project)
	spec := agent.RunSpec{
		TicketID: w.ticket.ID,
		Prompt:   envelope.Prompt,
		Workdir:  workdir,
		Mode:     resolveMode(w.ticket, w.project),
		Model:    w.resolveModel(),
		Env: map[string]string{
			"CONDUCTOR_TICKET_ID":     strconv.Itoa(w.ticket.ID),
			"CONDUCTOR_TICKET_NUMBER": w.ticket.TicketNumber,
			"CONDUCTOR_PROJECT_PATH":  workdir,
		},
		Handler: w.handleEvent,
	}

	ex, err := w.runner.Start(ctx, spec)
	if err != nil {
		w.fail(ctx, fmt.Sprintf("spawning agent: %v", err))
		return
	}
	w.attach(ex)

	w.settle(ex.Wait())
}

// attach publishes the live execution and applies anything requested while
// the process was still starting.
func (w *worker) attach(ex Execution) {
	w.mu.Lock()
	w.ex = ex
	stop := w.stopReason
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if stop != "" {
		ex.Stop(stop)
		return
	}
	for _, msg := range pending {
		if err := ex.Inject(msg); err != nil {
			w.logger.Warn("Dropping queued injection", "error", err)
			return
		}
	}
}

// requestStop terminates the run, or records the request when the process
// has not spawned yet.
func (w *worker) requestStop(reason string) {
	w.mu.Lock()
	if w.ex == nil {
		w.stopReason = reason
		w.mu.Unlock()
		return
	}
	ex := w.ex
	w.mu.Unlock()
	ex.Stop(reason)
}

// inject relays a user message to the live agent, queueing it when the
// process is still starting.
func (w *worker) inject(msg string) error {
	w.mu.Lock()
	if w.ex == nil {
		w.pending = append(w.pending, msg)
		w.mu.Unlock()
		return nil
	}
	ex := w.ex
	w.mu.Unlock()
	return ex.Inject(msg)
}

// settle maps the run outcome onto session status, ticket transition, and
// cooldown bookkeeping. Uses a background context: the run context is
// already cancelled during shutdown, and these writes must land.
func (w *worker) settle(outcome *agent.Outcome) {
	ctx := context.Background()

	switch outcome.Result {
	case agent.ResultCompleted:
		w.finishSession(ctx, executionsession.StatusCompleted, nil)
		reviewAt := time.Now().UTC().Add(w.reviewDelay)
		if w.markAwaiting(ctx, nil, &reviewAt) {
			w.publishStatus(string(ticket.StatusAwaitingInput), "")
			w.notifyAwaiting(ctx, "completed")
		}

	case agent.ResultStopped:
		w.finishSession(ctx, executionsession.StatusStopped, nil)
		reason := ticket.AwaitingReasonStopped
		if w.markAwaiting(ctx, &reason, nil) {
			w.publishStatus(string(ticket.StatusAwaitingInput), string(reason))
		}
		if err := w.store.CancelReview(ctx, w.ticket.ID); err != nil {
			w.logger.Warn("Cancelling review failed", "error", err)
		}
		w.systemMessage(ctx, "Run stopped: "+outcome.StopReason)

	case agent.ResultStuck:
		detail := outcome.StopReason
		w.finishSession(ctx, executionsession.StatusStuck, &detail)
		reason := ticket.AwaitingReasonStuck
		if w.markAwaiting(ctx, &reason, nil) {
			w.publishStatus(string(ticket.StatusAwaitingInput), string(reason))
		}
		w.systemMessage(ctx, "Run aborted: "+detail)
		w.notifyStuck(ctx, detail)

	case agent.ResultRateLimited:
		detail := outcome.Detail
		w.finishSession(ctx, executionsession.StatusFailed, &detail)
		if err := w.store.RecordRateLimit(ctx, w.ticket.ID, w.rateLimitCooldown); err != nil {
			w.transitionFailed(err, "recording rate limit")
		} else {
			w.publishStatus(string(ticket.StatusOpen), "rate_limited")
		}
		w.systemMessage(ctx, fmt.Sprintf("Hit an upstream rate limit; retrying in %s.", w.rateLimitCooldown))

	default:
		detail := outcome.Detail
		if detail == "" {
			detail = fmt.Sprintf("agent exited with code %d", outcome.ExitCode)
		}
		w.fail(ctx, detail)
	}

	w.logger.Info("Worker finished", "result", outcome.Result)
}

// fail applies the generic failure path: close the session, spend a retry,
// and mirror the error into the conversation.
func (w *worker) fail(ctx context.Context, detail string) {
	w.finishSession(ctx, executionsession.StatusFailed, &detail)

	updated, err := w.store.RecordFailure(ctx, w.ticket.ID, w.retryCooldown)
	if err != nil {
		w.transitionFailed(err, "recording failure")
	}
	w.systemMessage(ctx, "Agent run failed: "+detail)
	if updated != nil {
		w.publishStatus(string(updated.Status), "failure")
		if updated.Status == ticket.StatusFailed {
			w.notifyFailed(ctx, detail)
		}
	}
}

// handleEvent persists and broadcasts one agent stdout event. Runs on the
// runner's read goroutine; it must never panic.
func (w *worker) handleEvent(ctx context.Context, evt *agent.Event) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Event handler panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	w.touchSession(ctx)

	switch evt.Type {
	case agent.KindAssistantMessage:
		w.appendMessage(ctx, services.AppendMessage{
			TicketID: w.ticket.ID,
			Role:     message.RoleAssistant,
			Content:  evt.Content,
		})
		w.publish(bus.TypeMessage, map[string]any{"role": "assistant", "content": evt.Content})

	case agent.KindToolUse:
		name := evt.Name
		if name == "" {
			name = evt.Tool
		}
		input := evt.InputString()
		w.appendMessage(ctx, services.AppendMessage{
			TicketID:  w.ticket.ID,
			Role:      message.RoleToolUse,
			Content:   "",
			ToolName:  &name,
			ToolInput: &input,
		})
		w.publish(bus.TypeTool, map[string]any{"phase": "use", "tool": name, "input": input})

	case agent.KindToolResult:
		w.appendMessage(ctx, services.AppendMessage{
			TicketID: w.ticket.ID,
			Role:     message.RoleToolResult,
			Content:  evt.Content,
		})
		w.publish(bus.TypeTool, map[string]any{"phase": "result", "content": evt.Content, "is_error": evt.IsError})

	case agent.KindUsage:
		usage := services.TokenUsage{
			InputTokens:         evt.InputTokens,
			OutputTokens:        evt.OutputTokens,
			CacheReadTokens:     evt.CacheReadTokens,
			CacheCreationTokens: evt.CacheCreationTokens,
		}
		if err := w.store.RecordUsage(ctx, w.session.ID, usage); err != nil {
			w.logger.Warn("Recording usage failed", "error", err)
		}
		w.publish(bus.TypeUsage, map[string]any{
			"input_tokens":  evt.InputTokens,
			"output_tokens": evt.OutputTokens,
		})

	case agent.KindPermissionRequest:
		w.handlePermission(ctx, evt)

	case agent.KindExit:
		// Outcome classification happens in settle.
	}
}

// handlePermission resolves a permission request against the ticket's
// approved patterns. A saved approval answers the agent directly; anything
// else parks the ticket for the human. The process stays alive waiting on
// stdin either way.
func (w *worker) handlePermission(ctx context.Context, evt *agent.Event) {
	input := evt.InputString()

	patterns, err := w.store.ApprovedPatterns(ctx, w.ticket.ID)
	if err != nil {
		w.logger.Warn("Loading approved permissions failed", "error", err)
	}
	if resp := agent.Decide(evt.Tool, input, prompt.Workdir(w.project), patterns); resp.Decision == agent.DecisionAllow {
		w.systemMessage(ctx, fmt.Sprintf("Auto-approved %s (%s)", evt.Tool, resp.Reason))
		if err := w.inject("Permission granted: " + evt.Tool); err != nil {
			w.logger.Warn("Injecting auto-approval failed", "error", err)
		}
		return
	}

	w.systemMessage(ctx, fmt.Sprintf("Agent requested permission to use %s: %s", evt.Tool, input))
	reason := ticket.AwaitingReasonPermission
	if w.markAwaiting(ctx, &reason, nil) {
		w.publishStatus(string(ticket.StatusAwaitingInput), string(reason))
	}
	w.publish(bus.TypePermission, map[string]any{"tool": evt.Tool, "input": input})
	w.notifyAwaiting(ctx, "permission requested: "+evt.Tool)
}

// markAwaiting parks the ticket, tolerating a transition that already
// happened (permission request, watchdog, or a racing stop won).
func (w *worker) markAwaiting(ctx context.Context, reason *ticket.AwaitingReason, reviewAt *time.Time) bool {
	err := w.store.MarkAwaiting(ctx, w.ticket.ID, reason, reviewAt)
	if err == nil {
		return true
	}
	w.transitionFailed(err, "marking awaiting")
	return false
}

// transitionFailed logs a terminal-bookkeeping error. Invalid transitions
// are expected when another writer got there first and stay at debug level.
func (w *worker) transitionFailed(err error, op string) {
	if errors.Is(err, services.ErrInvalidTransition) {
		w.logger.Debug("Ticket already transitioned", "op", op)
		return
	}
	w.logger.Error("Ticket transition failed", "op", op, "error", err)
}

func (w *worker) finishSession(ctx context.Context, status executionsession.Status, errMsg *string) {
	err := w.store.FinishSession(ctx, w.session.ID, status, errMsg)
	if err == nil || errors.Is(err, services.ErrInvalidTransition) {
		return
	}
	w.logger.Error("Finishing session failed", "status", status, "error", err)
}

func (w *worker) appendMessage(ctx context.Context, m services.AppendMessage) {
	if _, err := w.store.AppendMessage(ctx, m); err != nil {
		w.logger.Warn("Appending message failed", "role", m.Role, "error", err)
	}
}

// systemMessage mirrors an operational outcome into the conversation so the
// UI always explains what happened.
func (w *worker) systemMessage(ctx context.Context, content string) {
	w.appendMessage(ctx, services.AppendMessage{
		TicketID: w.ticket.ID,
		Role:     message.RoleSystem,
		Content:  content,
	})
	w.publish(bus.TypeMessage, map[string]any{"role": "system", "content": content})
}

func (w *worker) touchSession(ctx context.Context) {
	w.mu.Lock()
	if time.Since(w.lastTouch) < touchInterval {
		w.mu.Unlock()
		return
	}
	w.lastTouch = time.Now()
	w.mu.Unlock()

	if err := w.store.TouchSession(ctx, w.session.ID); err != nil {
		w.logger.Debug("Touching session failed", "error", err)
	}
}

func (w *worker) publish(typ bus.Type, payload map[string]any) {
	if w.bus == nil {
		return
	}
	w.bus.PublishTicket(w.ticket.ID, typ, payload)
}

func (w *worker) publishStatus(status, detail string) {
	payload := map[string]any{"status": status}
	if detail != "" {
		payload["detail"] = detail
	}
	w.publish(bus.TypeTicketStatus, payload)
}

func (w *worker) notifyAwaiting(ctx context.Context, reason string) {
	if w.notifier != nil {
		w.notifier.TicketAwaiting(ctx, w.ticket, reason)
	}
}

func (w *worker) notifyFailed(ctx context.Context, detail string) {
	if w.notifier != nil {
		w.notifier.TicketFailed(ctx, w.ticket, detail)
	}
}

func (w *worker) notifyStuck(ctx context.Context, reason string) {
	if w.notifier != nil {
		w.notifier.TicketStuck(ctx, w.ticket, reason)
	}
}

// resolveMode returns the ticket's execution mode, falling back to the
// project default.
func resolveMode(t *ent.Ticket, p *ent.Project) string {
	if t.ExecutionMode != nil {
		return string(*t.ExecutionMode)
	}
	return string(p.DefaultExecutionMode)
}

// resolveModel maps the effective model tier to a concrete model name.
func (w *worker) resolveModel() string {
	tier := string(w.project.ModelTier)
	if w.ticket.ModelTier != nil {
		tier = string(*w.ticket.ModelTier)
	}
	if tier == "fast" && w.models.Fast != "" {
		return w.models.Fast
	}
	return w.models.Smart
}
