package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// hookConfigFile is the project-local file the agent CLI reads to discover
// its pre-tool hook.
const hookConfigFile = "hooks.json"

type hookConfig struct {
	Hooks map[string]hookEntry `json:"hooks"`
}

type hookEntry struct {
	Command string `json:"command"`
}

// WriteHookConfig writes the pre-tool hook configuration for semi-autonomous
// runs into <workdir>/<hookDir>/hooks.json and returns the written path. The
// hook shells back into this binary, which consults the daemon over HTTP.
func WriteHookConfig(workdir, hookDir string, ticketID int, endpoint string) (string, error) {
	dir := filepath.Join(workdir, hookDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating hook dir: %w", err)
	}

	cfg := hookConfig{
		Hooks: map[string]hookEntry{
			"pre_tool_use": {
				Command: fmt.Sprintf("conductor hook --ticket %d --endpoint %s", ticketID, endpoint),
			},
		},
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, hookConfigFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing hook config: %w", err)
	}
	return path, nil
}
