package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

const slackSendTimeout = 5 * time.Second

// SlackSink posts notifications to one Slack channel and, when an app-level
// token is configured, listens for replies in that channel over Socket Mode.
type SlackSink struct {
	api     *goslack.Client
	socket  *socketmode.Client
	channel string
	logger  *slog.Logger
}

// NewSlackSink creates the Slack adapter. An empty appToken makes the sink
// outbound-only.
func NewSlackSink(token, appToken, channel string, logger *slog.Logger) *SlackSink {
	var opts []goslack.Option
	if appToken != "" {
		opts = append(opts, goslack.OptionAppLevelToken(appToken))
	}
	api := goslack.New(token, opts...)

	s := &SlackSink{
		api:     api,
		channel: channel,
		logger:  logger.With("component", "slack-sink"),
	}
	if appToken != "" {
		s.socket = socketmode.New(api)
	}
	return s
}

// NewSlackSinkWithAPIURL targets a custom API URL. Useful for testing with a
// mock server.
func NewSlackSinkWithAPIURL(token, channel, apiURL string, logger *slog.Logger) *SlackSink {
	return &SlackSink{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channel: channel,
		logger:  logger.With("component", "slack-sink"),
	}
}

func (s *SlackSink) Name() string { return "slack" }

// Send posts plain text to the configured channel.
func (s *SlackSink) Send(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, slackSendTimeout)
	defer cancel()

	_, _, err := s.api.PostMessageContext(ctx, s.channel, goslack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// Listen runs the Socket Mode loop until ctx is cancelled. Messages from
// other channels, bots, and edits are dropped before they reach handle.
func (s *SlackSink) Listen(ctx context.Context, handle Handler) {
	if s.socket == nil {
		return
	}

	go func() {
		if err := s.socket.RunContext(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("Socket Mode connection ended", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-s.socket.Events:
			if !ok {
				return
			}
			s.handleEvent(ctx, evt, handle)
		}
	}
}

func (s *SlackSink) handleEvent(ctx context.Context, evt socketmode.Event, handle Handler) {
	if evt.Type != socketmode.EventTypeEventsAPI {
		return
	}
	apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
	if !ok {
		return
	}
	// Ack before processing; Slack retries unacked envelopes.
	if evt.Request != nil {
		s.socket.Ack(*evt.Request)
	}
	if apiEvent.Type != slackevents.CallbackEvent {
		return
	}

	msg, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}
	if msg.Channel != s.channel || msg.BotID != "" || msg.SubType != "" || msg.Text == "" {
		return
	}

	if reply := handle(ctx, msg.Text); reply != "" {
		if err := s.Send(ctx, reply); err != nil {
			s.logger.Error("Failed to post reply", "error", err)
		}
	}
}
