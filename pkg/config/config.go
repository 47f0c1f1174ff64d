// Package config loads and validates daemon configuration from an optional
// YAML file overlaid with environment variables. The resulting Config is an
// immutable snapshot passed to every component at construction.
package config

import "time"

// Config is the root configuration snapshot.
type Config struct {
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Agent      AgentConfig      `yaml:"agent"`
	Context    ContextConfig    `yaml:"context"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Review     ReviewConfig     `yaml:"review"`
	Watchdog   WatchdogConfig   `yaml:"watchdog"`
	LLM        LLMConfig        `yaml:"llm"`
	Notify     NotifyConfig     `yaml:"notify"`
	Server     ServerConfig     `yaml:"server"`
	Retention  RetentionConfig  `yaml:"retention"`
	Masking    MaskingConfig    `yaml:"masking"`
	Heartbeat  HeartbeatConfig  `yaml:"heartbeat"`
}

// Default returns the built-in configuration. Every value can be overridden
// by YAML and then by environment variables (see env.go for the recognized
// keys).
func Default() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			MaxParallelProjects: 3,
			TickInterval:        2 * time.Second,
			RetryCooldown:       5 * time.Minute,
			RateLimitCooldown:   30 * time.Minute,
			ShutdownGrace:       30 * time.Second,
		},
		Agent: AgentConfig{
			Binary:              "claude",
			BaseArgs:            []string{"--output-format", "stream-json", "--verbose"},
			SkipPermissionsFlag: "--dangerously-skip-permissions",
			PromptViaStdin:      false,
			KillGrace:           10 * time.Second,
			StuckTimeout:        30 * time.Minute,
			EnvPassthrough:      []string{"HOME", "PATH", "LANG", "ANTHROPIC_API_KEY"},
			HookDir:             ".conductor",
		},
		Context: ContextConfig{
			TokenTarget:        150_000,
			SummarizeThreshold: 50_000,
			RulesPath:          "",
			GitHintCommits:     10,
			MapMaxAge:          7 * 24 * time.Hour,
		},
		Summarizer: SummarizerConfig{
			SweepInterval: 5 * time.Minute,
		},
		Review: ReviewConfig{
			AutoReviewDelay: 5 * time.Minute,
			SweepInterval:   30 * time.Second,
			MaxAttempts:     10,
			DeadlineDays:    7,
		},
		Watchdog: WatchdogConfig{
			Interval:        30 * time.Minute,
			MinMessages:     10,
			WindowMessages:  30,
			StuckToAwaiting: false,
		},
		LLM: LLMConfig{
			APIKeyEnv:      "ANTHROPIC_API_KEY",
			FastModel:      "claude-3-5-haiku-latest",
			SmartModel:     "claude-sonnet-4-5",
			MaxTokens:      4096,
			RequestTimeout: 60 * time.Second,
		},
		Notify: NotifyConfig{
			OnAwaitingInput: true,
			OnFailed:        true,
			OnStuck:         true,
			Slack: &SlackConfig{
				TokenEnv:    "SLACK_BOT_TOKEN",
				AppTokenEnv: "SLACK_APP_TOKEN",
			},
			Telegram: &TelegramConfig{
				TokenEnv: "TELEGRAM_BOT_TOKEN",
			},
		},
		Server: ServerConfig{
			ListenAddr: ":8090",
		},
		Retention: RetentionConfig{
			SessionRetentionDays: 180,
			SweepInterval:        12 * time.Hour,
		},
		Masking: MaskingConfig{
			Enabled: true,
		},
		Heartbeat: HeartbeatConfig{
			Interval: 30 * time.Second,
		},
	}
}
