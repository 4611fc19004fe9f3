package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  address: ":8080"
whatsapp:
  verify_token: file-token
  messages_url: https://graph.example/v18.0/600700800/messages
  media_url: https://graph.example/v18.0
catalog:
  path: configs/options.json
services:
  foundation_recs: https://edge.example/foundation
  hair_color_try_on: https://edge.example/hair-color
retry:
  max_attempts: 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "file-token", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, "https://graph.example/v18.0/600700800/messages", cfg.WhatsApp.MessagesURL)
	assert.Equal(t, "https://edge.example/foundation", cfg.Services.FoundationRecs)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.WhatsApp.SendDelay)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "static", cfg.Fallback.Mode)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
}

func TestLoadEnvOverridesSecrets(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "env-api-token")
	t.Setenv("APP_TOKEN", "env-verify-token")
	t.Setenv("OPENAI_API_KEY", "env-openai-key")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-api-token", cfg.WhatsApp.Token)
	assert.Equal(t, "env-verify-token", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, "env-openai-key", cfg.OpenAI.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
