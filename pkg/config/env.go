package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// applyEnvOverrides applies the documented operational environment variables
// on top of whatever the YAML file provided. Interval keys use minutes to
// stay shell-friendly.
func applyEnvOverrides(cfg *Config) {
	setInt(&cfg.Scheduler.MaxParallelProjects, "MAX_PARALLEL_PROJECTS")
	setMinutes(&cfg.Scheduler.RetryCooldown, "RETRY_COOLDOWN_MINUTES")
	setMinutes(&cfg.Scheduler.RateLimitCooldown, "RATE_LIMIT_COOLDOWN_MINUTES")
	setSeconds(&cfg.Scheduler.TickInterval, "TICK_INTERVAL_SECONDS")

	setMinutes(&cfg.Agent.StuckTimeout, "STUCK_TIMEOUT_MINUTES")
	setSeconds(&cfg.Agent.KillGrace, "KILL_GRACE_SECONDS")
	setString(&cfg.Agent.Binary, "AGENT_BINARY")

	setInt(&cfg.Context.TokenTarget, "CONTEXT_TOKEN_TARGET")
	setInt(&cfg.Context.SummarizeThreshold, "SUMMARIZE_TOKEN_THRESHOLD")
	setString(&cfg.Context.RulesPath, "GLOBAL_RULES_PATH")

	setMinutes(&cfg.Review.AutoReviewDelay, "AUTO_REVIEW_DELAY_MINUTES")
	setInt(&cfg.Review.DeadlineDays, "REVIEW_DEADLINE_DAYS")

	setMinutes(&cfg.Watchdog.Interval, "WATCHDOG_INTERVAL_MINUTES")

	setBool(&cfg.Notify.OnAwaitingInput, "NOTIFY_AWAITING_INPUT")
	setBool(&cfg.Notify.OnFailed, "NOTIFY_FAILED")
	setBool(&cfg.Notify.OnStuck, "NOTIFY_STUCK")
	if cfg.Notify.Slack != nil {
		setBool(&cfg.Notify.Slack.Enabled, "SLACK_ENABLED")
		setString(&cfg.Notify.Slack.Channel, "SLACK_CHANNEL")
	}
	if cfg.Notify.Telegram != nil {
		setBool(&cfg.Notify.Telegram.Enabled, "TELEGRAM_ENABLED")
		setInt64(&cfg.Notify.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	}

	setString(&cfg.Server.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.LLM.FastModel, "LLM_FAST_MODEL")
	setString(&cfg.LLM.SmartModel, "LLM_SMART_MODEL")
	setString(&cfg.Heartbeat.FilePath, "HEARTBEAT_FILE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment variable", "key", key, "value", v)
		return
	}
	*dst = n
}

func setInt64(dst *int64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment variable", "key", key, "value", v)
		return
	}
	*dst = n
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean environment variable", "key", key, "value", v)
		return
	}
	*dst = b
}

func setMinutes(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("Ignoring invalid minutes environment variable", "key", key, "value", v)
		return
	}
	*dst = time.Duration(n) * time.Minute
}

func setSeconds(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("Ignoring invalid seconds environment variable", "key", key, "value", v)
		return
	}
	*dst = time.Duration(n) * time.Second
}
