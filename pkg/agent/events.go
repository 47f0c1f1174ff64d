// Package agent supervises the external agent CLI: it spawns the process,
// decodes its NDJSON stdout stream, relays injected user messages to stdin,
// and enforces the kill switch and the no-output stuck ceiling.
package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Event kinds emitted by the agent process on stdout, one JSON object per
// line. Kinds outside this set are logged and dropped.
const (
	KindAssistantMessage  = "assistant_message"
	KindToolUse           = "tool_use"
	KindToolResult        = "tool_result"
	KindUsage             = "usage"
	KindPermissionRequest = "permission_request"
	KindExit              = "exit"
)

// Event is one decoded stdout line. Only the fields matching Type carry
// meaning; the rest stay at their zero value.
type Event struct {
	Type string `json:"type"`

	// assistant_message, tool_result
	Content string `json:"content,omitempty"`

	// tool_use
	Name string `json:"name,omitempty"`

	// permission_request
	Tool string `json:"tool,omitempty"`

	// tool_use, permission_request
	Input json.RawMessage `json:"input,omitempty"`

	// tool_result
	IsError bool `json:"is_error,omitempty"`

	// usage
	InputTokens         int64 `json:"input_tokens,omitempty"`
	OutputTokens        int64 `json:"output_tokens,omitempty"`
	CacheReadTokens     int64 `json:"cache_read_tokens,omitempty"`
	CacheCreationTokens int64 `json:"cache_creation_tokens,omitempty"`

	// exit
	Code int `json:"code,omitempty"`
}

// Known reports whether the event kind is part of the recognized contract.
func (e *Event) Known() bool {
	switch e.Type {
	case KindAssistantMessage, KindToolUse, KindToolResult, KindUsage, KindPermissionRequest, KindExit:
		return true
	}
	return false
}

// InputString renders the raw tool input for persistence. Compacted JSON
// when possible, the raw bytes otherwise.
func (e *Event) InputString() string {
	if len(e.Input) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, e.Input); err != nil {
		return string(e.Input)
	}
	return buf.String()
}

// ParseEvent decodes one stdout line. Lines that are not JSON objects or
// that lack a type tag are rejected; the caller logs and skips them.
func ParseEvent(line []byte) (*Event, error) {
	var evt Event
	if err := json.Unmarshal(line, &evt); err != nil {
		return nil, fmt.Errorf("decoding agent event: %w", err)
	}
	if evt.Type == "" {
		return nil, fmt.Errorf("agent event missing type tag")
	}
	return &evt, nil
}

// injectionFrame is the stdin wire format for relayed user messages.
type injectionFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func encodeInjection(content string) ([]byte, error) {
	data, err := json.Marshal(injectionFrame{Type: "user_message", Content: content})
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
