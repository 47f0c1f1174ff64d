package agent

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type eventCollector struct {
	mu   sync.Mutex
	evts []*Event
}

func (c *eventCollector) handle(_ context.Context, evt *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evts = append(c.evts, evt)
}

func (c *eventCollector) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.evts))
	for i, e := range c.evts {
		out[i] = e.Type
	}
	return out
}

func (c *eventCollector) contents() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, e := range c.evts {
		if e.Type == KindAssistantMessage {
			out = append(out, e.Content)
		}
	}
	return out
}

func (c *eventCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.evts)
}

// shRunner builds a Runner whose "agent" is /bin/sh executing the given
// script. The composed prompt arrives as $1 and mode flags as $0, both
// ignored unless the script uses them.
func shRunner(t *testing.T, script string, mutate ...func(*config.AgentConfig)) *Runner {
	t.Helper()
	cfg := config.AgentConfig{
		Binary:         "/bin/sh",
		BaseArgs:       []string{"-c", script},
		KillGrace:      200 * time.Millisecond,
		StuckTimeout:   time.Minute,
		EnvPassthrough: []string{"PATH"},
		HookDir:        ".conductor",
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewRunner(cfg, "http://127.0.0.1:8090", testLogger())
}

func baseSpec(t *testing.T, collector *eventCollector) RunSpec {
	t.Helper()
	return RunSpec{
		TicketID: 42,
		Prompt:   "do the thing",
		Workdir:  t.TempDir(),
		Mode:     ModeSupervised,
		Handler:  collector.handle,
	}
}

func TestRunner_CompletedRun(t *testing.T) {
	script := `
echo '{"type":"assistant_message","content":"starting"}'
echo '{"type":"tool_use","name":"bash","input":{"command":"go test ./..."}}'
echo '{"type":"tool_result","content":"ok  3 packages"}'
echo '{"type":"usage","input_tokens":100,"output_tokens":20}'
echo '{"type":"assistant_message","content":"all done"}'
echo '{"type":"exit","code":0}'
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultCompleted, outcome.Result)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Equal(t, []string{
		KindAssistantMessage, KindToolUse, KindToolResult,
		KindUsage, KindAssistantMessage, KindExit,
	}, collector.types())
}

func TestRunner_UnknownAndMalformedLinesIgnored(t *testing.T) {
	script := `
echo 'installing dependencies...'
echo '{"type":"telemetry","span":"xyz"}'
echo '{"type":"exit","code":0}'
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultCompleted, outcome.Result)
	assert.Equal(t, []string{KindExit}, collector.types())
}

func TestRunner_ExitEventOverridesProcessCode(t *testing.T) {
	script := `
echo '{"type":"exit","code":4}'
exit 0
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultFailed, outcome.Result)
	assert.Equal(t, 4, outcome.ExitCode)
}

func TestRunner_FailureCapturesStderr(t *testing.T) {
	script := `
echo 'panic: connection refused' >&2
exit 3
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultFailed, outcome.Result)
	assert.Equal(t, 3, outcome.ExitCode)
	assert.Contains(t, outcome.Detail, "connection refused")
}

func TestRunner_RateLimitSniffing(t *testing.T) {
	script := `
echo 'Error: 429 Too Many Requests, retry later' >&2
exit 1
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultRateLimited, outcome.Result)
	assert.Equal(t, 1, outcome.ExitCode)
}

func TestRunner_StopEscalation(t *testing.T) {
	script := `
echo '{"type":"assistant_message","content":"working"}'
sleep 30
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	ex, err := r.Start(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return collector.count() >= 1 }, 5*time.Second, 10*time.Millisecond)

	start := time.Now()
	ex.Stop("operator request")
	outcome := ex.Wait()

	assert.Equal(t, ResultStopped, outcome.Result)
	assert.Equal(t, "operator request", outcome.StopReason)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_StuckSelfKill(t *testing.T) {
	script := `
echo '{"type":"assistant_message","content":"hello"}'
sleep 30
`
	collector := &eventCollector{}
	r := shRunner(t, script, func(cfg *config.AgentConfig) {
		cfg.StuckTimeout = 300 * time.Millisecond
		cfg.KillGrace = 100 * time.Millisecond
	})

	outcome, err := r.Run(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	assert.Equal(t, ResultStuck, outcome.Result)
	assert.Contains(t, outcome.StopReason, "no output")
}

func TestRunner_ContextCancelStops(t *testing.T) {
	script := `
echo '{"type":"assistant_message","content":"working"}'
sleep 30
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	ctx, cancel := context.WithCancel(context.Background())
	ex, err := r.Start(ctx, baseSpec(t, collector))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return collector.count() >= 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()

	outcome := ex.Wait()
	assert.Equal(t, ResultStopped, outcome.Result)
	assert.Equal(t, "shutting down", outcome.StopReason)
}

func TestRunner_InjectWhileIdle(t *testing.T) {
	script := `
echo '{"type":"assistant_message","content":"ready"}'
read -r line
echo '{"type":"assistant_message","content":"ack"}'
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	ex, err := r.Start(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)

	// After the first assistant turn the runner is idle and writes the
	// injection straight through.
	require.Eventually(t, func() bool { return collector.count() >= 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, ex.Inject("go ahead"))

	outcome := ex.Wait()
	assert.Equal(t, ResultCompleted, outcome.Result)
	assert.Equal(t, []string{"ready", "ack"}, collector.contents())
}

func TestRunner_InjectCoalescedMidTurn(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "received.txt")
	script := `
sleep 1
echo '{"type":"assistant_message","content":"turn-done"}'
read -r line
printf '%s' "$line" > "$CAPTURE"
echo '{"type":"exit","code":0}'
`
	collector := &eventCollector{}
	r := shRunner(t, script)

	spec := baseSpec(t, collector)
	spec.Env = map[string]string{"CAPTURE": capture}

	ex, err := r.Start(context.Background(), spec)
	require.NoError(t, err)

	// Both land during the initial turn and must arrive as one frame.
	require.NoError(t, ex.Inject("first note"))
	require.NoError(t, ex.Inject("second note"))

	outcome := ex.Wait()
	require.Equal(t, ResultCompleted, outcome.Result)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)

	var frame injectionFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "user_message", frame.Type)
	assert.Equal(t, "first note\n\nsecond note", frame.Content)
}

func TestRunner_InjectAfterExit(t *testing.T) {
	script := `echo '{"type":"exit","code":0}'`
	collector := &eventCollector{}
	r := shRunner(t, script)

	ex, err := r.Start(context.Background(), baseSpec(t, collector))
	require.NoError(t, err)
	ex.Wait()

	err = ex.Inject("too late")
	assert.ErrorIs(t, err, ErrRunnerExited)
}

func TestRunner_PromptViaStdin(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "prompt.txt")
	script := `
read -r first
printf '%s' "$first" > "$CAPTURE"
echo '{"type":"exit","code":0}'
`
	collector := &eventCollector{}
	r := shRunner(t, script, func(cfg *config.AgentConfig) {
		cfg.PromptViaStdin = true
	})

	spec := baseSpec(t, collector)
	spec.Env = map[string]string{"CAPTURE": capture}

	outcome, err := r.Run(context.Background(), spec)
	require.NoError(t, err)
	require.Equal(t, ResultCompleted, outcome.Result)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)

	var frame injectionFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "user_message", frame.Type)
	assert.Equal(t, "do the thing", frame.Content)
}

func TestRunner_AutonomousModePassesSkipFlag(t *testing.T) {
	// With sh -c, extra args land in $0, $1, ... — the skip flag becomes $0.
	script := `printf '{"type":"assistant_message","content":"%s"}\n' "$0"`
	collector := &eventCollector{}
	r := shRunner(t, script, func(cfg *config.AgentConfig) {
		cfg.SkipPermissionsFlag = "--skip-permissions"
	})

	spec := baseSpec(t, collector)
	spec.Mode = ModeAutonomous

	outcome, err := r.Run(context.Background(), spec)
	require.NoError(t, err)
	require.Equal(t, ResultCompleted, outcome.Result)
	assert.Equal(t, []string{"--skip-permissions"}, collector.contents())
}

func TestRunner_SemiAutonomousWritesHookConfig(t *testing.T) {
	script := `echo '{"type":"exit","code":0}'`
	collector := &eventCollector{}
	r := shRunner(t, script)

	spec := baseSpec(t, collector)
	spec.Mode = ModeSemiAutonomous

	outcome, err := r.Run(context.Background(), spec)
	require.NoError(t, err)
	require.Equal(t, ResultCompleted, outcome.Result)

	data, err := os.ReadFile(filepath.Join(spec.Workdir, ".conductor", "hooks.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "conductor hook --ticket 42 --endpoint http://127.0.0.1:8090")
}

func TestRunner_EnvAllowlist(t *testing.T) {
	t.Setenv("CONDUCTOR_TEST_SECRET", "leak-me")

	script := `printf '{"type":"assistant_message","content":"%s %s"}\n' "$CONDUCTOR_TICKET" "${CONDUCTOR_TEST_SECRET:-absent}"`
	collector := &eventCollector{}
	r := shRunner(t, script)

	spec := baseSpec(t, collector)
	spec.Env = map[string]string{"CONDUCTOR_TICKET": "42"}

	outcome, err := r.Run(context.Background(), spec)
	require.NoError(t, err)
	require.Equal(t, ResultCompleted, outcome.Result)
	assert.Equal(t, []string{"42 absent"}, collector.contents())
}

func TestRunner_SpawnFailure(t *testing.T) {
	collector := &eventCollector{}
	r := shRunner(t, "", func(cfg *config.AgentConfig) {
		cfg.Binary = "/nonexistent/agent-binary"
	})

	_, err := r.Run(context.Background(), baseSpec(t, collector))
	require.Error(t, err)
}

func TestRunner_RejectsBadSpec(t *testing.T) {
	collector := &eventCollector{}
	r := shRunner(t, "true")

	t.Run("missing workdir", func(t *testing.T) {
		spec := baseSpec(t, collector)
		spec.Workdir = ""
		_, err := r.Start(context.Background(), spec)
		assert.ErrorContains(t, err, "working directory")
	})

	t.Run("missing prompt", func(t *testing.T) {
		spec := baseSpec(t, collector)
		spec.Prompt = ""
		_, err := r.Start(context.Background(), spec)
		assert.ErrorContains(t, err, "empty prompt")
	})

	t.Run("unknown mode", func(t *testing.T) {
		spec := baseSpec(t, collector)
		spec.Mode = "freestyle"
		_, err := r.Start(context.Background(), spec)
		assert.ErrorContains(t, err, "unknown execution mode")
	})
}
