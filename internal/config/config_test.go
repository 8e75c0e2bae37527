package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicYaml = `
listen_addr: ":9090"
store: "memory"
moderation_url: "https://api.apilayer.com/bad_words"
moderation_timeout_seconds: 5
token_ttl_hours: 24
allowed_origins:
  - "http://localhost:8081"
log_level: "debug"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BADWORDS_API_KEY", "k3y")

	cfg, err := Load(writeConfig(t, publicYaml))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Public.ListenAddr)
	assert.Equal(t, "memory", cfg.Public.Store)
	assert.Equal(t, "https://api.apilayer.com/bad_words", cfg.Public.ModerationURL)
	assert.Equal(t, 5*time.Second, cfg.ModerationTimeout())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.Public.AllowedOrigins)
	assert.Equal(t, "s3cret", cfg.TokenSecret())
	assert.Equal(t, "k3y", cfg.BadWordsKey())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BADWORDS_API_KEY", "k3y")

	cfg, err := Load(writeConfig(t, `moderation_url: "https://example.com/check"`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Public.ListenAddr)
	assert.Equal(t, "pg", cfg.Public.Store)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 10*time.Second, cfg.ModerationTimeout())
}

func TestLoadMissingSecretsFailsFast(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")
	t.Setenv("BADWORDS_API_KEY", "k3y")

	_, err := Load(writeConfig(t, publicYaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")

	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BADWORDS_API_KEY", "")

	_, err = Load(writeConfig(t, publicYaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BADWORDS_API_KEY")
}

func TestLoadMissingModerationURL(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BADWORDS_API_KEY", "k3y")

	_, err := Load(writeConfig(t, `listen_addr: ":8080"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moderation_url")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BADWORDS_API_KEY", "k3y")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
