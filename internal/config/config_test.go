package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("LINKEDIN_CLIENT_ID", "client-id")
	t.Setenv("LINKEDIN_CLIENT_SECRET", "client-secret")
	t.Setenv("LINKEDIN_REDIRECT_URL", "https://cms.example/oauth/callback/linkedin?action=login")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "/admin", cfg.AdminURL)
	require.Equal(t, "/login", cfg.LoginURL)
	require.Equal(t, 10*time.Minute, cfg.StateTTL)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.ExchangeViaQuery)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LINKEDIN_EXCHANGE_VIA_QUERY", "true")
	t.Setenv("POST_LOGIN_REDIRECT_URL", "https://example.com/welcome")
	t.Setenv("STATE_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.ExchangeViaQuery)
	require.Equal(t, "https://example.com/welcome", cfg.PostLoginRedirectURL)
	require.Equal(t, 5*time.Minute, cfg.StateTTL)
}

func TestLoadRequiresProviderCredentials(t *testing.T) {
	t.Setenv("LINKEDIN_CLIENT_ID", "")
	t.Setenv("LINKEDIN_CLIENT_SECRET", "")
	t.Setenv("LINKEDIN_REDIRECT_URL", "")

	_, err := Load()
	require.Error(t, err)
}
