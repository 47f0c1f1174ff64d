package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fleetworks/conductor/pkg/config"
)

// ErrRunnerExited is returned by Inject after the agent process has exited.
// The caller reopens the ticket so a fresh session picks the message up.
var ErrRunnerExited = errors.New("agent process has exited")

// Result is the terminal classification of one agent run.
type Result string

const (
	ResultCompleted   Result = "completed"
	ResultFailed      Result = "failed"
	ResultStopped     Result = "stopped"
	ResultStuck       Result = "stuck"
	ResultRateLimited Result = "rate_limited"
)

// Execution modes, mirroring the project/ticket enum values.
const (
	ModeAutonomous     = "autonomous"
	ModeSemiAutonomous = "semi_autonomous"
	ModeSupervised     = "supervised"
)

// Outcome describes how a run ended.
type Outcome struct {
	Result   Result
	ExitCode int

	// StopReason is set for ResultStopped and ResultStuck.
	StopReason string

	// Detail carries the stderr tail or exit diagnostics for failed runs.
	Detail string
}

// EventHandler receives every recognized stdout event in stream order.
// Handlers run on the read goroutine: they must not block for long.
type EventHandler func(ctx context.Context, evt *Event)

// RunSpec describes one agent invocation.
type RunSpec struct {
	TicketID int
	Prompt   string
	Workdir  string
	Mode     string
	Model    string

	// Env is appended to the allowlisted daemon environment. Carries the
	// ticket id and project path the agent needs.
	Env map[string]string

	Handler EventHandler
}

// Runner spawns and supervises agent processes.
type Runner struct {
	cfg          config.AgentConfig
	hookEndpoint string
	logger       *slog.Logger
}

// NewRunner creates a process supervisor. hookEndpoint is the daemon base
// URL the semi-autonomous hook config points at.
func NewRunner(cfg config.AgentConfig, hookEndpoint string, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:          cfg,
		hookEndpoint: hookEndpoint,
		logger:       logger.With("component", "agent"),
	}
}

// Run is Start followed by Wait, for callers that don't need the handle.
func (r *Runner) Run(ctx context.Context, spec RunSpec) (*Outcome, error) {
	ex, err := r.Start(ctx, spec)
	if err != nil {
		return nil, err
	}
	return ex.Wait(), nil
}

// Start spawns the agent process and begins streaming. The returned
// Execution must be Waited on exactly once.
func (r *Runner) Start(ctx context.Context, spec RunSpec) (*Execution, error) {
	if spec.Workdir == "" {
		return nil, fmt.Errorf("ticket %d: project has no working directory", spec.TicketID)
	}
	if spec.Prompt == "" {
		return nil, fmt.Errorf("ticket %d: empty prompt", spec.TicketID)
	}

	args := make([]string, 0, len(r.cfg.BaseArgs)+4)
	args = append(args, r.cfg.BaseArgs...)
	if spec.Model != "" {
		args = append(args, "--model", spec.Model)
	}
	switch spec.Mode {
	case ModeAutonomous:
		if r.cfg.SkipPermissionsFlag != "" {
			args = append(args, r.cfg.SkipPermissionsFlag)
		}
	case ModeSemiAutonomous:
		if _, err := WriteHookConfig(spec.Workdir, r.cfg.HookDir, spec.TicketID, r.hookEndpoint); err != nil {
			return nil, fmt.Errorf("writing hook config: %w", err)
		}
	case ModeSupervised:
		// The agent prompts for every privileged tool call itself.
	default:
		return nil, fmt.Errorf("ticket %d: unknown execution mode %q", spec.TicketID, spec.Mode)
	}
	if !r.cfg.PromptViaStdin {
		args = append(args, spec.Prompt)
	}

	cmd := exec.Command(r.cfg.Binary, args...)
	cmd.Dir = spec.Workdir
	cmd.Env = r.buildEnv(spec.Env)
	// Own process group so stop signals reach the agent's children too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", r.cfg.Binary, err)
	}

	ex := &Execution{
		cmd:       cmd,
		spec:      spec,
		killGrace: r.cfg.KillGrace,
		logger:    r.logger.With("ticket_id", spec.TicketID, "pid", cmd.Process.Pid),
		stdin:     stdin,
		done:      make(chan struct{}),
		// The agent is busy working on the initial prompt until its first
		// assistant turn completes.
		injectBusy: true,
	}
	ex.touch()

	r.logger.Info("Agent process started",
		"ticket_id", spec.TicketID, "pid", cmd.Process.Pid, "mode", spec.Mode, "workdir", spec.Workdir)

	if r.cfg.PromptViaStdin {
		frame, err := encodeInjection(spec.Prompt)
		if err == nil {
			_, err = stdin.Write(frame)
		}
		if err != nil {
			ex.signal(syscall.SIGKILL)
			_ = cmd.Wait()
			return nil, fmt.Errorf("writing prompt to stdin: %w", err)
		}
	}

	ex.wg.Add(2)
	go ex.readStdout(ctx, stdout)
	go ex.readStderr(stderr)
	go ex.watchStuck(r.cfg.StuckTimeout)
	go ex.watchContext(ctx)
	go ex.reap()

	return ex, nil
}

// buildEnv assembles the child environment: allowlisted daemon variables
// plus the per-run entries. Daemon secrets outside the allowlist never
// reach the agent.
func (r *Runner) buildEnv(extra map[string]string) []string {
	env := make([]string, 0, len(r.cfg.EnvPassthrough)+len(extra))
	for _, key := range r.cfg.EnvPassthrough {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	for key, val := range extra {
		env = append(env, key+"="+val)
	}
	return env
}

type stopCause int

const (
	causeNone stopCause = iota
	causeStop
	causeStuck
)

// Execution is one live agent process.
type Execution struct {
	cmd       *exec.Cmd
	spec      RunSpec
	killGrace time.Duration
	logger    *slog.Logger

	lastOutput atomic.Int64

	mu         sync.Mutex
	stdin      io.WriteCloser
	exited     bool
	pending    []string
	injectBusy bool
	cause      stopCause
	stopReason string
	exitEvent  *int

	stderrMu   sync.Mutex
	stderrTail []byte

	lastAssistant atomic.Value

	wg      sync.WaitGroup
	done    chan struct{}
	outcome Outcome
}

// Inject queues a user message for the agent's stdin. Messages arriving
// mid-turn are coalesced and delivered at the next assistant boundary.
func (e *Execution) Inject(msg string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.exited {
		return ErrRunnerExited
	}
	if e.injectBusy {
		e.pending = append(e.pending, msg)
		return nil
	}
	return e.writeInjectionLocked(msg)
}

func (e *Execution) writeInjectionLocked(msg string) error {
	frame, err := encodeInjection(msg)
	if err != nil {
		return err
	}
	if _, err := e.stdin.Write(frame); err != nil {
		return fmt.Errorf("%w: %v", ErrRunnerExited, err)
	}
	return nil
}

// flushPending delivers coalesced injections after an assistant turn.
func (e *Execution) flushPending() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.injectBusy = false
	if len(e.pending) == 0 || e.exited {
		return
	}
	combined := strings.Join(e.pending, "\n\n")
	e.pending = nil
	if err := e.writeInjectionLocked(combined); err != nil {
		e.logger.Warn("Dropping queued injection, stdin write failed", "error", err)
		return
	}
	e.injectBusy = true
}

// Stop terminates the run: SIGTERM to the process group, SIGKILL after the
// grace period. Safe to call any number of times; only the first reason
// sticks.
func (e *Execution) Stop(reason string) {
	e.stop(causeStop, reason)
}

func (e *Execution) stop(cause stopCause, reason string) {
	e.mu.Lock()
	if e.exited || e.cause != causeNone {
		e.mu.Unlock()
		return
	}
	e.cause = cause
	e.stopReason = reason
	e.mu.Unlock()

	e.logger.Info("Terminating agent process", "reason", reason)
	e.signal(syscall.SIGTERM)
	select {
	case <-e.done:
	case <-time.After(e.killGrace):
		e.logger.Warn("Agent ignored SIGTERM, escalating", "grace", e.killGrace)
		e.signal(syscall.SIGKILL)
	}
}

// signal targets the whole process group, falling back to the direct child
// when the group is already gone.
func (e *Execution) signal(sig syscall.Signal) {
	pid := e.cmd.Process.Pid
	if err := syscall.Kill(-pid, sig); err != nil {
		_ = e.cmd.Process.Signal(sig)
	}
}

// Wait blocks until the process has exited and all pipes are drained, then
// classifies the outcome. Must be called exactly once.
func (e *Execution) Wait() *Outcome {
	<-e.done
	return &e.outcome
}

// Done closes when the run has fully finished.
func (e *Execution) Done() <-chan struct{} { return e.done }

// LastOutputAt reports when the agent last wrote to stdout.
func (e *Execution) LastOutputAt() time.Time {
	return time.Unix(0, e.lastOutput.Load())
}

func (e *Execution) touch() {
	e.lastOutput.Store(time.Now().UnixNano())
}

// reap drains both pipes, collects the process, and settles the outcome.
// Readers finish first: calling Wait while reads are in flight can drop the
// stream tail.
func (e *Execution) reap() {
	e.wg.Wait()
	waitErr := e.cmd.Wait()

	e.mu.Lock()
	e.exited = true
	_ = e.stdin.Close()
	cause := e.cause
	reason := e.stopReason
	exitEvent := e.exitEvent
	e.mu.Unlock()

	exitCode := e.cmd.ProcessState.ExitCode()
	if exitEvent != nil {
		exitCode = *exitEvent
	}

	outcome := Outcome{ExitCode: exitCode}
	switch {
	case cause == causeStuck:
		outcome.Result = ResultStuck
		outcome.StopReason = reason
	case cause == causeStop:
		outcome.Result = ResultStopped
		outcome.StopReason = reason
	case exitCode == 0 && waitErr == nil:
		outcome.Result = ResultCompleted
	default:
		outcome.Detail = e.diagnostics(waitErr)
		if looksRateLimited(outcome.Detail, e.lastAssistantContent()) {
			outcome.Result = ResultRateLimited
		} else {
			outcome.Result = ResultFailed
		}
	}
	e.outcome = outcome

	e.logger.Info("Agent process finished",
		"result", outcome.Result, "exit_code", outcome.ExitCode, "reason", outcome.StopReason)
	close(e.done)
}

// readStdout decodes the NDJSON stream. Activity is recorded per read, not
// per line, so a missing trailing newline or an oversized line cannot mask
// a live process from the stuck timer.
func (e *Execution) readStdout(ctx context.Context, pipe io.Reader) {
	defer e.wg.Done()

	r := &activityReader{r: pipe, touch: e.touch}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxEventLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		evt, err := ParseEvent(line)
		if err != nil {
			e.logger.Debug("Skipping undecodable agent output", "error", err)
			continue
		}
		e.dispatch(ctx, evt)
	}
	if err := scanner.Err(); err != nil {
		e.logger.Warn("Agent stdout stream error, draining remainder", "error", err)
		// Keep consuming so the child never blocks on a full pipe and the
		// activity clock keeps ticking.
		_, _ = io.Copy(io.Discard, r)
	}
}

func (e *Execution) dispatch(ctx context.Context, evt *Event) {
	switch evt.Type {
	case KindAssistantMessage:
		e.lastAssistant.Store(evt.Content)
	case KindExit:
		code := evt.Code
		e.mu.Lock()
		e.exitEvent = &code
		e.mu.Unlock()
	case KindToolUse, KindToolResult, KindUsage, KindPermissionRequest:
		e.markBusy()
	default:
		e.logger.Debug("Ignoring unknown agent event", "type", evt.Type)
		return
	}

	if e.spec.Handler != nil {
		e.spec.Handler(ctx, evt)
	}

	// Flush after the handler so persisted ordering matches the stream.
	if evt.Type == KindAssistantMessage {
		e.flushPending()
	}
}

func (e *Execution) markBusy() {
	e.mu.Lock()
	e.injectBusy = true
	e.mu.Unlock()
}

func (e *Execution) lastAssistantContent() string {
	if v := e.lastAssistant.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// readStderr keeps a bounded tail for diagnostics and rate-limit sniffing.
func (e *Execution) readStderr(pipe io.Reader) {
	defer e.wg.Done()

	buf := make([]byte, 4096)
	for {
		n, err := pipe.Read(buf)
		if n > 0 {
			e.stderrMu.Lock()
			e.stderrTail = append(e.stderrTail, buf[:n]...)
			if len(e.stderrTail) > maxStderrTailBytes {
				e.stderrTail = e.stderrTail[len(e.stderrTail)-maxStderrTailBytes:]
			}
			e.stderrMu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (e *Execution) diagnostics(waitErr error) string {
	e.stderrMu.Lock()
	tail := strings.TrimSpace(string(e.stderrTail))
	e.stderrMu.Unlock()
	if tail != "" {
		return tail
	}
	if waitErr != nil {
		return waitErr.Error()
	}
	return ""
}

// watchStuck enforces the hard no-output ceiling.
func (e *Execution) watchStuck(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	interval := timeout / 8
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			idle := time.Since(e.LastOutputAt())
			if idle >= timeout {
				e.stop(causeStuck, fmt.Sprintf("no output for %s", idle.Round(time.Second)))
				return
			}
		}
	}
}

// watchContext converts daemon shutdown into a graceful stop.
func (e *Execution) watchContext(ctx context.Context) {
	select {
	case <-ctx.Done():
		e.stop(causeStop, "shutting down")
	case <-e.done:
	}
}

const (
	maxEventLineBytes  = 4 * 1024 * 1024
	maxStderrTailBytes = 8 * 1024
)

// activityReader stamps the stuck clock on every successful read.
type activityReader struct {
	r     io.Reader
	touch func()
}

func (a *activityReader) Read(p []byte) (int, error) {
	n, err := a.r.Read(p)
	if n > 0 {
		a.touch()
	}
	return n, err
}

var rateLimitMarkers = []string{
	"rate limit",
	"rate_limit",
	"too many requests",
	"429",
	"overloaded",
	"quota exceeded",
}

// looksRateLimited sniffs failure diagnostics for upstream throttling so the
// scheduler can cool down without burning a retry.
func looksRateLimited(detail, lastAssistant string) bool {
	haystack := strings.ToLower(detail + "\n" + lastAssistant)
	for _, marker := range rateLimitMarkers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}
