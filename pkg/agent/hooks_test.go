package agent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHookConfig(t *testing.T) {
	workdir := t.TempDir()

	path, err := WriteHookConfig(workdir, ".conductor", 7, "http://127.0.0.1:8090")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workdir, ".conductor", "hooks.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg hookConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, "conductor hook --ticket 7 --endpoint http://127.0.0.1:8090",
		cfg.Hooks["pre_tool_use"].Command)
}

func TestWriteHookConfig_BadWorkdir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := WriteHookConfig(file, ".conductor", 7, "http://127.0.0.1:8090")
	require.Error(t, err)
}
