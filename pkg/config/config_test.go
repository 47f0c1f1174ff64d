package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Initialize("")

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 3, cfg.Scheduler.MaxParallelProjects)
	assert.Equal(t, 2*time.Second, cfg.Scheduler.TickInterval)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.RetryCooldown)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.RateLimitCooldown)
	assert.Equal(t, "claude", cfg.Agent.Binary)
	assert.Equal(t, 10*time.Second, cfg.Agent.KillGrace)
	assert.Equal(t, 30*time.Minute, cfg.Agent.StuckTimeout)
	assert.Equal(t, 150_000, cfg.Context.TokenTarget)
	assert.Equal(t, 50_000, cfg.Context.SummarizeThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Review.AutoReviewDelay)
	assert.Equal(t, 10, cfg.Review.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Watchdog.Interval)
	assert.Equal(t, 10, cfg.Watchdog.MinMessages)
	assert.Equal(t, 30, cfg.Watchdog.WindowMessages)
}

func TestInitializeMissingFileFallsBack(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Initialize("/nonexistent/conductor.yaml")

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scheduler.MaxParallelProjects)
}

func TestInitializeYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conductor.yaml")

	content := `
scheduler:
  max_parallel_projects: 5
  tick_interval: 1s
agent:
  binary: fakeagent
review:
  deadline_days: 14
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Scheduler.MaxParallelProjects)
	assert.Equal(t, time.Second, cfg.Scheduler.TickInterval)
	assert.Equal(t, "fakeagent", cfg.Agent.Binary)
	assert.Equal(t, 14, cfg.Review.DeadlineDays)

	// Untouched sections keep defaults.
	assert.Equal(t, 150_000, cfg.Context.TokenTarget)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.RateLimitCooldown)
}

func TestInitializeEnvOverridesBeatYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conductor.yaml")

	content := `
scheduler:
  max_parallel_projects: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("MAX_PARALLEL_PROJECTS", "7")
	t.Setenv("RETRY_COOLDOWN_MINUTES", "2")
	t.Setenv("STUCK_TIMEOUT_MINUTES", "45")
	t.Setenv("NOTIFY_FAILED", "false")

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Scheduler.MaxParallelProjects)
	assert.Equal(t, 2*time.Minute, cfg.Scheduler.RetryCooldown)
	assert.Equal(t, 45*time.Minute, cfg.Agent.StuckTimeout)
	assert.False(t, cfg.Notify.OnFailed)
	assert.True(t, cfg.Notify.OnAwaitingInput)
}

func TestInitializeInvalidEnvIgnored(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("MAX_PARALLEL_PROJECTS", "lots")

	cfg, err := Initialize("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scheduler.MaxParallelProjects)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conductor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0644))

	_, err := Initialize(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}

func TestInitializeEnvTemplateExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conductor.yaml")

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("TEST_RULES_PATH", "/srv/rules.md")
	content := `
context:
  rules_path: "{{.TEST_RULES_PATH}}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/rules.md", cfg.Context.RulesPath)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero parallel projects",
			mutate:  func(c *Config) { c.Scheduler.MaxParallelProjects = 0 },
			wantErr: "max_parallel_projects",
		},
		{
			name:    "rate limit cooldown below retry cooldown",
			mutate:  func(c *Config) { c.Scheduler.RateLimitCooldown = time.Minute },
			wantErr: "rate_limit_cooldown",
		},
		{
			name:    "empty agent binary",
			mutate:  func(c *Config) { c.Agent.Binary = "" },
			wantErr: "binary",
		},
		{
			name:    "summarize threshold above target",
			mutate:  func(c *Config) { c.Context.SummarizeThreshold = 200_000 },
			wantErr: "summarize_threshold",
		},
		{
			name:    "watchdog window below minimum",
			mutate:  func(c *Config) { c.Watchdog.WindowMessages = 5 },
			wantErr: "window_messages",
		},
		{
			name:    "missing fast model",
			mutate:  func(c *Config) { c.LLM.FastModel = "" },
			wantErr: "fast_model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.LLM.APIKeyEnv = "" // skip env presence check in unit tests
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSlackRequiresToken(t *testing.T) {
	cfg := Default()
	cfg.LLM.APIKeyEnv = ""
	cfg.Notify.Slack.Enabled = true
	cfg.Notify.Slack.Channel = "#agents"

	t.Setenv("SLACK_BOT_TOKEN", "")
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SLACK_BOT_TOKEN")

	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	require.NoError(t, cfg.Validate())
}

func TestExpandEnvLeavesDollarAlone(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"`)
	out := ExpandEnv(in)
	assert.Equal(t, in, out)
}

func TestExpandEnvMissingVarBecomesEmpty(t *testing.T) {
	out := ExpandEnv([]byte(`value: "{{.DEFINITELY_NOT_SET_XYZ}}"`))
	assert.Equal(t, `value: ""`, string(out))
}
