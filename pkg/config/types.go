package config

import "time"

// SchedulerConfig controls the tick loop and dispatch behavior.
type SchedulerConfig struct {
	// MaxParallelProjects is the global cap on concurrent workers.
	// At most one worker runs per project regardless of this value.
	MaxParallelProjects int `yaml:"max_parallel_projects"`

	// TickInterval is the scheduler loop period.
	TickInterval time.Duration `yaml:"tick_interval"`

	// RetryCooldown is the backoff applied after a generic failure
	// (spawn error, agent fatal). Increments retry_count.
	RetryCooldown time.Duration `yaml:"retry_cooldown"`

	// RateLimitCooldown is the backoff applied after an upstream
	// rate-limit signal. Does NOT increment retry_count.
	RateLimitCooldown time.Duration `yaml:"rate_limit_cooldown"`

	// ShutdownGrace is how long to wait for in-flight workers on shutdown.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// AgentConfig describes how the external agent subprocess is launched.
type AgentConfig struct {
	// Binary is the agent executable (resolved via PATH when relative).
	Binary string `yaml:"binary"`

	// BaseArgs are always passed before mode-specific flags.
	BaseArgs []string `yaml:"base_args"`

	// SkipPermissionsFlag is appended in autonomous mode.
	SkipPermissionsFlag string `yaml:"skip_permissions_flag"`

	// PromptViaStdin sends the composed prompt on stdin instead of argv.
	PromptViaStdin bool `yaml:"prompt_via_stdin"`

	// KillGrace is the delay between SIGTERM and SIGKILL on stop.
	KillGrace time.Duration `yaml:"kill_grace"`

	// StuckTimeout is the hard no-stdout ceiling; the runner self-kills
	// when no output arrives for this long.
	StuckTimeout time.Duration `yaml:"stuck_timeout"`

	// EnvPassthrough lists environment variables forwarded to the child.
	// Everything else of the daemon environment is withheld.
	EnvPassthrough []string `yaml:"env_passthrough"`

	// HookDir is the project-local directory the hook config is written
	// to in semi-autonomous mode.
	HookDir string `yaml:"hook_dir"`
}

// ContextConfig bounds the prompt envelope.
type ContextConfig struct {
	// TokenTarget is the envelope ceiling.
	TokenTarget int `yaml:"token_target"`

	// SummarizeThreshold triggers summarization when unsummarized
	// conversation tokens exceed it.
	SummarizeThreshold int `yaml:"summarize_threshold"`

	// RulesPath points at the per-installation global rules file.
	RulesPath string `yaml:"rules_path"`

	// GitHintCommits is how many recent commit subjects to include.
	GitHintCommits int `yaml:"git_hint_commits"`

	// MapMaxAge is how long a project map stays fresh.
	MapMaxAge time.Duration `yaml:"map_max_age"`
}

// SummarizerConfig controls the periodic compression sweep.
type SummarizerConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// ReviewConfig controls delayed auto-close review.
type ReviewConfig struct {
	// AutoReviewDelay is how long after an agent turn the classifier runs.
	AutoReviewDelay time.Duration `yaml:"auto_review_delay"`

	// SweepInterval is how often due reviews are processed.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// MaxAttempts bounds classifier retries before giving up.
	MaxAttempts int `yaml:"max_attempts"`

	// DeadlineDays auto-closes tickets stuck in awaiting_input for this
	// many days. Zero disables the deadline sweep.
	DeadlineDays int `yaml:"deadline_days"`
}

// WatchdogConfig controls semantic stuck detection.
type WatchdogConfig struct {
	Interval time.Duration `yaml:"interval"`

	// MinMessages is the minimum conversation length before a ticket is
	// examined.
	MinMessages int `yaml:"min_messages"`

	// WindowMessages is how many trailing messages the classifier sees.
	WindowMessages int `yaml:"window_messages"`

	// StuckToAwaiting transitions positive tickets to awaiting_input with
	// reason stuck instead of the terminal-ish stuck status.
	StuckToAwaiting bool `yaml:"stuck_to_awaiting"`
}

// LLMConfig configures the utility model used by the summarizer, reviewer,
// watchdog, and notification queries. This is independent of the agent
// subprocess, which brings its own credentials.
type LLMConfig struct {
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// FastModel is the cheap classification/summarization model.
	FastModel string `yaml:"fast_model"`

	// SmartModel is used where quality matters (project map regeneration).
	SmartModel string `yaml:"smart_model"`

	// MaxTokens caps utility completions.
	MaxTokens int `yaml:"max_tokens"`

	// RequestTimeout bounds a single call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// SlackConfig configures the Slack notification adapter.
type SlackConfig struct {
	Enabled bool `yaml:"enabled"`

	// TokenEnv names the env var with the bot token (xoxb-).
	TokenEnv string `yaml:"token_env"`

	// AppTokenEnv names the env var with the app-level token (xapp-)
	// required for Socket Mode inbound replies. Empty disables inbound.
	AppTokenEnv string `yaml:"app_token_env"`

	Channel string `yaml:"channel"`
}

// TelegramConfig configures the Telegram notification adapter.
type TelegramConfig struct {
	Enabled bool `yaml:"enabled"`

	// TokenEnv names the env var with the bot token.
	TokenEnv string `yaml:"token_env"`

	// ChatID is the chat notifications go to; inbound messages from other
	// chats are ignored.
	ChatID int64 `yaml:"chat_id"`
}

// NotifyConfig gates which events reach the notification sink.
type NotifyConfig struct {
	OnAwaitingInput bool `yaml:"on_awaiting_input"`
	OnFailed        bool `yaml:"on_failed"`
	OnStuck         bool `yaml:"on_stuck"`

	Slack    *SlackConfig    `yaml:"slack"`
	Telegram *TelegramConfig `yaml:"telegram"`
}

// ServerConfig configures the HTTP/WebSocket surface.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// AllowedWSOrigins are extra origin patterns for the event stream.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// RetentionConfig controls the cleanup loop.
type RetentionConfig struct {
	// SessionRetentionDays is how long finished ExecutionSession rows are
	// kept before deletion.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// SweepInterval is how often the cleanup loop runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// MaskingConfig controls credential masking of persisted agent output.
type MaskingConfig struct {
	Enabled bool `yaml:"enabled"`

	// ExtraPatterns are additional regexes masked on top of the built-ins.
	ExtraPatterns []string `yaml:"extra_patterns"`
}

// HeartbeatConfig controls the DaemonStatus updater.
type HeartbeatConfig struct {
	Interval time.Duration `yaml:"interval"`

	// FilePath, when set, also writes a liveness file for supervisors.
	FilePath string `yaml:"file_path"`
}
