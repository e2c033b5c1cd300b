package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  token: file-token
gemini:
  api_key: file-key
  model: gemini-2.5-flash
redis:
  addr: redis.example:6379
  db: 2
quiz:
  time_limit: 90s
  leaderboard_size: 5
  topic_hint: geography
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Discord.Token)
	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "redis.example:6379", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.TimeLimit(time.Minute))
	assert.Equal(t, 5, cfg.Quiz.LeaderboardSize)
	assert.Equal(t, "geography", cfg.Quiz.TopicHint)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  token: file-token
redis:
  addr: redis.example:6379
`)

	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("REDIS_ADDR", "other.example:6379")
	t.Setenv("QUIZ_TIME_LIMIT", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "other.example:6379", cfg.RedisAddr())
	assert.Equal(t, 2*time.Minute, cfg.TimeLimit(time.Minute))
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "env-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestTimeLimitFallback(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, time.Minute, cfg.TimeLimit(time.Minute))

	cfg.Quiz.TimeLimit = "garbage"
	assert.Equal(t, time.Minute, cfg.TimeLimit(time.Minute))

	cfg.Quiz.TimeLimit = "-5s"
	assert.Equal(t, time.Minute, cfg.TimeLimit(time.Minute))
}
