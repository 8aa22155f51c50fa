package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENSOLAR_USERNAME", "")
	t.Setenv("GOOGLE_SOLAR_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "fallback-key")
	t.Setenv("INTEGRATION_TIMEOUT", "")
	t.Setenv("TASKMAGIC_WEBHOOK_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.IntegrationTimeout)
	assert.Equal(t, DefaultTaskMagicWebhookURL, cfg.TaskMagicWebhookURL)
	assert.Equal(t, "fallback-key", cfg.GoogleSolarAPIKey)
	assert.False(t, cfg.IsOpenSolarConfigured())
}

func TestOpenSolarNeedsAllCredentials(t *testing.T) {
	cfg := &Config{OpenSolarUsername: "u", OpenSolarPassword: "p"}
	assert.False(t, cfg.IsOpenSolarConfigured())

	cfg.OpenSolarOrgID = "42"
	assert.True(t, cfg.IsOpenSolarConfigured())
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("INTEGRATION_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a, ,b "))
}
