package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingToken is returned by Load when DISCORD_TOKEN is not set.
var ErrMissingToken = errors.New("DISCORD_TOKEN environment variable is missing")

const (
	defaultAppEnv           = "production"
	defaultDashboardTimeout = 60 * time.Second
	defaultRolesPerMinute   = 15
)

// Config holds the bot configuration read from the environment.
// A .env file is loaded by the caller before Load runs.
type Config struct {
	Token   string
	GuildID string // empty registers slash commands globally

	AppEnv   string // development, production
	LogLevel string // optional logrus level override

	// DashboardTimeout is the inactivity window after which a dashboard stops accepting interactions.
	DashboardTimeout time.Duration
	// RolesPerMinute caps /roles invocations per user; 0 disables throttling.
	RolesPerMinute int
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Token:            strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		GuildID:          strings.TrimSpace(os.Getenv("GUILD_ID")),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		DashboardTimeout: defaultDashboardTimeout,
		RolesPerMinute:   defaultRolesPerMinute,
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	if v := os.Getenv("DASHBOARD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid DASHBOARD_TIMEOUT %q: must be a positive duration like 60s", v)
		}
		cfg.DashboardTimeout = d
	}

	if v := os.Getenv("ROLES_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid ROLES_RATE_LIMIT %q: must be a non-negative integer", v)
		}
		cfg.RolesPerMinute = n
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
