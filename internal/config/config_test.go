package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitdojo.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ".gitdojo-data/sessions.db", cfg.BoltPath)
	assert.Equal(t, "lessons", cfg.LessonsDir)
	assert.False(t, cfg.LessonsWatch)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = :9090

[store]
backend = bolt
bolt_path = /var/lib/gitdojo/sessions.db

[lessons]
dir = /srv/lessons
watch = true
`)
	t.Setenv("GITDOJO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	// Test 1: file values override the defaults.
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "bolt", cfg.StoreBackend)
	assert.Equal(t, "/var/lib/gitdojo/sessions.db", cfg.BoltPath)
	assert.Equal(t, "/srv/lessons", cfg.LessonsDir)
	assert.True(t, cfg.LessonsWatch)

	// Test 2: untouched keys keep their defaults.
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)

	// Test 3: Load publishes the result as the global instance.
	assert.Same(t, cfg, Global)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = :9090

[store]
backend = bolt
`)
	t.Setenv("GITDOJO_CONFIG", path)
	t.Setenv("GITDOJO_ADDR", ":7070")
	t.Setenv("GITDOJO_STORE_BACKEND", "redis")
	t.Setenv("GITDOJO_REDIS_ADDR", "redis.internal:6379")
	t.Setenv("GITDOJO_LESSONS_WATCH", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
	assert.True(t, cfg.LessonsWatch)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("GITDOJO_STORE_BACKEND", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown store backend "cassandra"`)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("GITDOJO_CONFIG", filepath.Join(t.TempDir(), "absent.ini"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadRejectsBadWatchValue(t *testing.T) {
	path := writeConfig(t, `
[lessons]
watch = maybe
`)
	t.Setenv("GITDOJO_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lessons.watch")
}
