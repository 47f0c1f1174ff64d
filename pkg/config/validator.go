package config

import (
	"fmt"
	"os"
)

// Validate performs fail-fast validation of the assembled configuration.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validateScheduler,
		c.validateAgent,
		c.validateContext,
		c.validateReview,
		c.validateWatchdog,
		c.validateLLM,
		c.validateNotify,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateScheduler() error {
	if c.Scheduler.MaxParallelProjects < 1 {
		return NewValidationError("scheduler", "max_parallel_projects", fmt.Errorf("must be at least 1"))
	}
	if c.Scheduler.TickInterval <= 0 {
		return NewValidationError("scheduler", "tick_interval", fmt.Errorf("must be positive"))
	}
	if c.Scheduler.RetryCooldown < 0 {
		return NewValidationError("scheduler", "retry_cooldown", fmt.Errorf("must not be negative"))
	}
	if c.Scheduler.RateLimitCooldown < c.Scheduler.RetryCooldown {
		return NewValidationError("scheduler", "rate_limit_cooldown", fmt.Errorf("must be at least retry_cooldown"))
	}
	return nil
}

func (c *Config) validateAgent() error {
	if c.Agent.Binary == "" {
		return NewValidationError("agent", "binary", ErrMissingRequiredField)
	}
	if c.Agent.KillGrace <= 0 {
		return NewValidationError("agent", "kill_grace", fmt.Errorf("must be positive"))
	}
	if c.Agent.StuckTimeout <= 0 {
		return NewValidationError("agent", "stuck_timeout", fmt.Errorf("must be positive"))
	}
	if c.Agent.HookDir == "" {
		return NewValidationError("agent", "hook_dir", ErrMissingRequiredField)
	}
	return nil
}

func (c *Config) validateContext() error {
	if c.Context.TokenTarget < 1000 {
		return NewValidationError("context", "token_target", fmt.Errorf("must be at least 1000"))
	}
	if c.Context.SummarizeThreshold < 1000 {
		return NewValidationError("context", "summarize_threshold", fmt.Errorf("must be at least 1000"))
	}
	if c.Context.SummarizeThreshold >= c.Context.TokenTarget {
		return NewValidationError("context", "summarize_threshold", fmt.Errorf("must be below token_target"))
	}
	return nil
}

func (c *Config) validateReview() error {
	if c.Review.MaxAttempts < 1 {
		return NewValidationError("review", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if c.Review.DeadlineDays < 1 {
		return NewValidationError("review", "deadline_days", fmt.Errorf("must be at least 1"))
	}
	if c.Review.SweepInterval <= 0 {
		return NewValidationError("review", "sweep_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

func (c *Config) validateWatchdog() error {
	if c.Watchdog.Interval <= 0 {
		return NewValidationError("watchdog", "interval", fmt.Errorf("must be positive"))
	}
	if c.Watchdog.MinMessages < 1 {
		return NewValidationError("watchdog", "min_messages", fmt.Errorf("must be at least 1"))
	}
	if c.Watchdog.WindowMessages < c.Watchdog.MinMessages {
		return NewValidationError("watchdog", "window_messages", fmt.Errorf("must be at least min_messages"))
	}
	return nil
}

func (c *Config) validateLLM() error {
	if c.LLM.FastModel == "" {
		return NewValidationError("llm", "fast_model", ErrMissingRequiredField)
	}
	if c.LLM.SmartModel == "" {
		return NewValidationError("llm", "smart_model", ErrMissingRequiredField)
	}
	if c.LLM.APIKeyEnv != "" {
		if value := os.Getenv(c.LLM.APIKeyEnv); value == "" {
			return NewValidationError("llm", "api_key_env", fmt.Errorf("environment variable %s is not set", c.LLM.APIKeyEnv))
		}
	}
	if c.LLM.MaxTokens < 256 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("must be at least 256"))
	}
	return nil
}

func (c *Config) validateNotify() error {
	if c.Notify.Slack != nil && c.Notify.Slack.Enabled {
		if c.Notify.Slack.TokenEnv == "" {
			return NewValidationError("notify.slack", "token_env", ErrMissingRequiredField)
		}
		if value := os.Getenv(c.Notify.Slack.TokenEnv); value == "" {
			return NewValidationError("notify.slack", "token_env", fmt.Errorf("environment variable %s is not set", c.Notify.Slack.TokenEnv))
		}
		if c.Notify.Slack.Channel == "" {
			return NewValidationError("notify.slack", "channel", ErrMissingRequiredField)
		}
	}
	if c.Notify.Telegram != nil && c.Notify.Telegram.Enabled {
		if c.Notify.Telegram.TokenEnv == "" {
			return NewValidationError("notify.telegram", "token_env", ErrMissingRequiredField)
		}
		if value := os.Getenv(c.Notify.Telegram.TokenEnv); value == "" {
			return NewValidationError("notify.telegram", "token_env", fmt.Errorf("environment variable %s is not set", c.Notify.Telegram.TokenEnv))
		}
		if c.Notify.Telegram.ChatID == 0 {
			return NewValidationError("notify.telegram", "chat_id", ErrMissingRequiredField)
		}
	}
	return nil
}
