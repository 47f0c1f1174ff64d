// Package llm provides the utility-model client used by the summarizer,
// reviewer, watchdog, and inbound query answering. It is independent of the
// agent subprocess, which carries its own credentials.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fleetworks/conductor/pkg/config"
)

// Tier selects which configured model serves a request.
type Tier string

const (
	// TierFast is the cheap model for classification and summarization.
	TierFast Tier = "fast"
	// TierSmart is the stronger model for quality-sensitive work.
	TierSmart Tier = "smart"
)

// ErrRateLimited marks upstream throttling (429) or overload (529). Callers
// back off without consuming retry budget.
var ErrRateLimited = errors.New("rate limited by model provider")

// Request is a single utility completion.
type Request struct {
	Tier   Tier
	System string
	Prompt string

	// MaxTokens overrides the configured cap when positive.
	MaxTokens int
}

// Client is the completion interface consumers depend on.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// MessagesClient is the slice of the Anthropic SDK the client calls through,
// extracted so tests can stub the transport.
type MessagesClient interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client over the Anthropic Messages API.
type AnthropicClient struct {
	messages MessagesClient
	cfg      config.LLMConfig
	logger   *slog.Logger
}

// NewClient builds a client from configuration. The API key is read from the
// environment variable named by cfg.APIKeyEnv and never stored in config.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) (*AnthropicClient, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("environment variable %s is not set", cfg.APIKeyEnv)
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := sdk.NewClient(option.WithAPIKey(key))
	return &AnthropicClient{
		messages: &client.Messages,
		cfg:      cfg,
		logger:   logger.With("component", "llm"),
	}, nil
}

// Complete performs one blocking completion and returns the concatenated text
// content. Rate-limit and overload responses are classified as ErrRateLimited.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	model := c.cfg.FastModel
	if req.Tier == TierSmart {
		model = c.cfg.SmartModel
	}
	maxTokens := c.cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt))},
		// Utility calls are classification and compression; keep them
		// deterministic.
		Temperature: sdk.Float(0),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	msg, err := c.messages.New(ctx, params)
	if err != nil {
		if isRateLimited(err) {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return "", fmt.Errorf("completion with %s failed: %w", model, err)
	}

	text := extractText(msg)
	if text == "" {
		return "", fmt.Errorf("completion with %s returned no text content (stop_reason=%s)", model, msg.StopReason)
	}

	c.logger.Debug("Utility completion finished",
		"model", model,
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens,
		"duration_ms", time.Since(start).Milliseconds())
	return text, nil
}

func isRateLimited(err error) bool {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode == 529
	}
	return false
}

func extractText(msg *sdk.Message) string {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
