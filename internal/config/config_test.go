package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "todo.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Seed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("listen_addr: \":9090\"\ndb_path: /tmp/todos.db\nlog_level: debug\nseed: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/todos.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Seed)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	t.Setenv("TODO_API_LOG_LEVEL", "error")
	t.Setenv("TODO_API_SEED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Seed)
	// Defaults still cover what neither source sets.
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [unclosed\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
