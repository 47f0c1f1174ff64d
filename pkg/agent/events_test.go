package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, evt *Event)
	}{
		{
			name: "assistant message",
			line: `{"type":"assistant_message","content":"done, tests pass"}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindAssistantMessage, evt.Type)
				assert.Equal(t, "done, tests pass", evt.Content)
				assert.True(t, evt.Known())
			},
		},
		{
			name: "tool use",
			line: `{"type":"tool_use","name":"bash","input":{"command":"go test ./..."}}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindToolUse, evt.Type)
				assert.Equal(t, "bash", evt.Name)
				assert.JSONEq(t, `{"command":"go test ./..."}`, evt.InputString())
			},
		},
		{
			name: "tool result with error flag",
			line: `{"type":"tool_result","content":"exit status 1","is_error":true}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindToolResult, evt.Type)
				assert.Equal(t, "exit status 1", evt.Content)
				assert.True(t, evt.IsError)
			},
		},
		{
			name: "usage with cache tokens",
			line: `{"type":"usage","input_tokens":1200,"output_tokens":340,"cache_read_tokens":900,"cache_creation_tokens":50}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindUsage, evt.Type)
				assert.Equal(t, int64(1200), evt.InputTokens)
				assert.Equal(t, int64(340), evt.OutputTokens)
				assert.Equal(t, int64(900), evt.CacheReadTokens)
				assert.Equal(t, int64(50), evt.CacheCreationTokens)
			},
		},
		{
			name: "permission request",
			line: `{"type":"permission_request","tool":"bash","input":{"command":"rm -rf build"}}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindPermissionRequest, evt.Type)
				assert.Equal(t, "bash", evt.Tool)
				assert.Contains(t, evt.InputString(), "rm -rf build")
			},
		},
		{
			name: "exit",
			line: `{"type":"exit","code":2}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, KindExit, evt.Type)
				assert.Equal(t, 2, evt.Code)
			},
		},
		{
			name: "unknown kind decodes but is not known",
			line: `{"type":"telemetry","span":"abc"}`,
			check: func(t *testing.T, evt *Event) {
				assert.Equal(t, "telemetry", evt.Type)
				assert.False(t, evt.Known())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := ParseEvent([]byte(tt.line))
			require.NoError(t, err)
			tt.check(t, evt)
		})
	}
}

func TestParseEvent_Rejects(t *testing.T) {
	for name, line := range map[string]string{
		"not json":     "plain progress output",
		"missing type": `{"content":"hello"}`,
		"json array":   `[1,2,3]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEvent([]byte(line))
			assert.Error(t, err)
		})
	}
}

func TestEncodeInjection(t *testing.T) {
	frame, err := encodeInjection("please also update the docs")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"user_message","content":"please also update the docs"}`+"\n", string(frame))
}
