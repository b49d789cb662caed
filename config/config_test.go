package config_test

import (
	"testing"
	"time"

	"RoleMatrix/config"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DISCORD_TOKEN", "GUILD_ID", "APP_ENV", "LOG_LEVEL", "DASHBOARD_TIMEOUT", "ROLES_RATE_LIMIT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.ErrorIs(t, err, config.ErrMissingToken)
	require.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "  secret-token ")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "secret-token", cfg.Token)
	require.Empty(t, cfg.GuildID)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, 60*time.Second, cfg.DashboardTimeout)
	require.Equal(t, 15, cfg.RolesPerMinute)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "secret-token")
	t.Setenv("GUILD_ID", "123456789012345678")
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DASHBOARD_TIMEOUT", "2m")
	t.Setenv("ROLES_RATE_LIMIT", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "123456789012345678", cfg.GuildID)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2*time.Minute, cfg.DashboardTimeout)
	require.Equal(t, 0, cfg.RolesPerMinute)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparseable timeout", key: "DASHBOARD_TIMEOUT", value: "sixty"},
		{name: "negative timeout", key: "DASHBOARD_TIMEOUT", value: "-5s"},
		{name: "unparseable rate limit", key: "ROLES_RATE_LIMIT", value: "lots"},
		{name: "negative rate limit", key: "ROLES_RATE_LIMIT", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DISCORD_TOKEN", "secret-token")
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}
