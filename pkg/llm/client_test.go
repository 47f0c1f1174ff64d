package llm

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubMessages struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessages) New(_ context.Context, params sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = params
	return s.resp, s.err
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		APIKeyEnv:      "ANTHROPIC_API_KEY",
		FastModel:      "claude-3-5-haiku-latest",
		SmartModel:     "claude-sonnet-4-5",
		MaxTokens:      1024,
		RequestTimeout: 5 * time.Second,
	}
}

func textMessage(parts ...string) *sdk.Message {
	blocks := make([]sdk.ContentBlockUnion, 0, len(parts))
	for _, p := range parts {
		blocks = append(blocks, sdk.ContentBlockUnion{Type: "text", Text: p})
	}
	return &sdk.Message{Content: blocks}
}

func TestCompleteReturnsTextContent(t *testing.T) {
	stub := &stubMessages{resp: textMessage("first", " second")}
	client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

	got, err := client.Complete(context.Background(), Request{
		Tier:   TierFast,
		System: "you are a classifier",
		Prompt: "classify this",
	})
	require.NoError(t, err)
	assert.Equal(t, "first second", got)

	assert.Equal(t, sdk.Model("claude-3-5-haiku-latest"), stub.lastParams.Model)
	assert.Equal(t, int64(1024), stub.lastParams.MaxTokens)
	require.Len(t, stub.lastParams.System, 1)
	assert.Equal(t, "you are a classifier", stub.lastParams.System[0].Text)
	require.Len(t, stub.lastParams.Messages, 1)
}

func TestCompleteSmartTierSelectsSmartModel(t *testing.T) {
	stub := &stubMessages{resp: textMessage("ok")}
	client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

	_, err := client.Complete(context.Background(), Request{Tier: TierSmart, Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), stub.lastParams.Model)
}

func TestCompleteMaxTokensOverride(t *testing.T) {
	stub := &stubMessages{resp: textMessage("ok")}
	client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

	_, err := client.Complete(context.Background(), Request{Prompt: "p", MaxTokens: 64})
	require.NoError(t, err)
	assert.Equal(t, int64(64), stub.lastParams.MaxTokens)
}

func TestCompleteClassifiesRateLimit(t *testing.T) {
	httpReq, err := http.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil)
	require.NoError(t, err)

	for _, status := range []int{http.StatusTooManyRequests, 529} {
		stub := &stubMessages{err: &sdk.Error{
			StatusCode: status,
			Request:    httpReq,
			Response:   &http.Response{StatusCode: status},
		}}
		client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

		_, err := client.Complete(context.Background(), Request{Prompt: "p"})
		assert.ErrorIs(t, err, ErrRateLimited, "status %d", status)
	}
}

func TestCompleteOtherAPIErrorsNotRateLimited(t *testing.T) {
	httpReq, err := http.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil)
	require.NoError(t, err)

	stub := &stubMessages{err: &sdk.Error{
		StatusCode: http.StatusBadRequest,
		Request:    httpReq,
		Response:   &http.Response{StatusCode: http.StatusBadRequest},
	}}
	client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

	_, err = client.Complete(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestCompleteRejectsEmptyResponse(t *testing.T) {
	stub := &stubMessages{resp: &sdk.Message{}}
	client := &AnthropicClient{messages: stub, cfg: testConfig(), logger: testLogger()}

	_, err := client.Complete(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"verdict":"COMPLETED"}`,
			want:  `{"verdict":"COMPLETED"}`,
		},
		{
			name:  "fenced object",
			input: "```json\n{\"verdict\":\"QUESTION\"}\n```",
			want:  `{"verdict":"QUESTION"}`,
		},
		{
			name:  "prose around object",
			input: "Here is the result:\n{\"stuck\": true, \"reason\": \"loop\"}\nHope that helps.",
			want:  `{"stuck": true, "reason": "loop"}`,
		},
		{
			name:  "no object",
			input: "  COMPLETED  ",
			want:  "COMPLETED",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.input))
		})
	}
}
