// Package notify fans ticket lifecycle events out to chat channels and
// routes operator replies from those channels back onto tickets.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/masking"
)

// Sink delivers one outbound notification line to a chat surface.
type Sink interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Handler consumes one inbound operator message and returns the reply to
// post back, or "" when no reply is warranted.
type Handler func(ctx context.Context, text string) string

// Listener is a Sink that can also receive operator replies. Listen blocks
// until ctx is cancelled, invoking handle for every inbound message.
type Listener interface {
	Listen(ctx context.Context, handle Handler)
}

// Service aggregates the configured sinks behind the notifier interfaces the
// scheduler and watchdog consume. Nil-safe: all methods are no-ops when the
// service is nil, so callers never need to guard.
type Service struct {
	cfg    config.NotifyConfig
	sinks  []Sink
	router *Router
	masker *masking.Service
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService wires the sinks and the inbound router together. Returns nil
// when no sinks are configured. The router may be nil for outbound-only use.
func NewService(cfg config.NotifyConfig, sinks []Sink, router *Router, masker *masking.Service, logger *slog.Logger) *Service {
	if len(sinks) == 0 {
		return nil
	}
	return &Service{
		cfg:    cfg,
		sinks:  sinks,
		router: router,
		masker: masker,
		logger: logger.With("component", "notify"),
	}
}

// BuildSinks constructs the adapters enabled in cfg, reading tokens from the
// environment. Misconfigured adapters are skipped with a log line rather
// than failing startup.
func BuildSinks(cfg config.NotifyConfig, logger *slog.Logger) []Sink {
	var sinks []Sink

	if sc := cfg.Slack; sc != nil && sc.Enabled {
		token := os.Getenv(sc.TokenEnv)
		switch {
		case token == "" || sc.Channel == "":
			logger.Warn("Slack notifications enabled but token or channel missing, skipping",
				"token_env", sc.TokenEnv)
		default:
			sinks = append(sinks, NewSlackSink(token, os.Getenv(sc.AppTokenEnv), sc.Channel, logger))
		}
	}

	if tc := cfg.Telegram; tc != nil && tc.Enabled {
		token := os.Getenv(tc.TokenEnv)
		switch {
		case token == "" || tc.ChatID == 0:
			logger.Warn("Telegram notifications enabled but token or chat_id missing, skipping",
				"token_env", tc.TokenEnv)
		default:
			sink, err := NewTelegramSink(token, tc.ChatID, logger)
			if err != nil {
				logger.Error("Failed to initialize Telegram sink, skipping", "error", err)
				break
			}
			sinks = append(sinks, sink)
		}
	}

	return sinks
}

// Start launches an inbound listener goroutine per sink that supports one.
func (s *Service) Start(ctx context.Context) {
	if s == nil || s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	if s.router == nil {
		return
	}
	listeners := 0
	for _, sink := range s.sinks {
		l, ok := sink.(Listener)
		if !ok {
			continue
		}
		listeners++
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			l.Listen(ctx, s.router.Handle)
		}()
	}
	if listeners > 0 {
		s.logger.Info("Notification listeners started", "listeners", listeners)
	}
}

// Stop cancels the listeners and waits for them to exit.
func (s *Service) Stop() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.logger.Info("Notification listeners stopped")
}

// TicketAwaiting announces that a ticket parked and needs an operator.
func (s *Service) TicketAwaiting(ctx context.Context, t *ent.Ticket, reason string) {
	if s == nil || !s.cfg.OnAwaitingInput {
		return
	}
	s.send(ctx, fmt.Sprintf("%s needs input (%s): %s", t.TicketNumber, reason, t.Title))
}

// TicketFailed announces that a ticket exhausted its retries.
func (s *Service) TicketFailed(ctx context.Context, t *ent.Ticket, detail string) {
	if s == nil || !s.cfg.OnFailed {
		return
	}
	s.send(ctx, fmt.Sprintf("%s failed: %s", t.TicketNumber, detail))
}

// TicketStuck announces a watchdog intervention.
func (s *Service) TicketStuck(ctx context.Context, t *ent.Ticket, reason string) {
	if s == nil || !s.cfg.OnStuck {
		return
	}
	s.send(ctx, fmt.Sprintf("%s looks stuck: %s", t.TicketNumber, reason))
}

// send masks and fans the text out to every sink. Delivery is fail-open: a
// broken sink is logged and the rest still receive the event.
func (s *Service) send(ctx context.Context, text string) {
	text = s.masker.Mask(text)
	for _, sink := range s.sinks {
		if err := sink.Send(ctx, text); err != nil {
			s.logger.Error("Failed to deliver notification",
				"sink", sink.Name(),
				"error", err)
		}
	}
}
