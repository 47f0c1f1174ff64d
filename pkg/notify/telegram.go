package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// TelegramSink posts notifications to one chat via the Bot API and listens
// for replies with long polling.
type TelegramSink struct {
	bot    *telego.Bot
	chatID int64
	logger *slog.Logger
}

// NewTelegramSink creates the Telegram adapter.
func NewTelegramSink(token string, chatID int64, logger *slog.Logger) (*TelegramSink, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSink{
		bot:    bot,
		chatID: chatID,
		logger: logger.With("component", "telegram-sink"),
	}, nil
}

func (t *TelegramSink) Name() string { return "telegram" }

// Send posts plain text to the configured chat.
func (t *TelegramSink) Send(ctx context.Context, text string) error {
	if _, err := t.bot.SendMessage(ctx, tu.Message(tu.ID(t.chatID), text)); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}

// Listen long-polls for updates until ctx is cancelled. Only plain text
// messages from the configured chat reach handle; other chats and bot
// messages are dropped.
func (t *TelegramSink) Listen(ctx context.Context, handle Handler) {
	updates, err := t.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        30,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		t.logger.Error("Failed to start Telegram long polling", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			msg := update.Message
			if msg == nil || msg.Text == "" {
				continue
			}
			if msg.Chat.ID != t.chatID {
				continue
			}
			if msg.From != nil && msg.From.IsBot {
				continue
			}
			if reply := handle(ctx, msg.Text); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					t.logger.Error("Failed to post reply", "error", err)
				}
			}
		}
	}
}
