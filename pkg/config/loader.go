package config

import (
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, and validates configuration.
//
// Precedence, lowest to highest:
//  1. Built-in defaults (Default)
//  2. YAML file at path (optional; empty path or missing file is fine)
//  3. Environment variables (the documented CONDUCTOR_* / operational keys)
//
// YAML content may reference environment variables with {{.VAR}} syntax.
func Initialize(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadYAML(path)
		if err != nil {
			return nil, NewLoadError(path, err)
		}
		if fileCfg != nil {
			if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	slog.Info("Configuration initialized",
		"config_file", path,
		"max_parallel_projects", cfg.Scheduler.MaxParallelProjects,
		"tick_interval", cfg.Scheduler.TickInterval,
		"agent_binary", cfg.Agent.Binary)

	return cfg, nil
}

// loadYAML reads and parses a config file. A missing file returns (nil, nil)
// so installs without a file fall back to defaults + env.
func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Config file not found, using defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}
