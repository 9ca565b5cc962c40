// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"DATABASE_HOST":     "db.internal",
		"DATABASE_PORT":     "5433",
		"DATABASE_USER":     "shareabouts",
		"DATABASE_PASSWORD": "db_secret",
		"DATABASE_NAME":     "shareabouts_api",
		"DATABASE_SSLMODE":  "require",

		"CACHE_HOST":     "cache.internal",
		"CACHE_PORT":     "6380",
		"CACHE_PASSWORD": "cache_secret",

		"SHAREABOUTS_AWS_KEY":    "AKIA_TEST",
		"SHAREABOUTS_AWS_SECRET": "aws_secret",
		"SHAREABOUTS_AWS_BUCKET": "shareabouts-static",

		"SHAREABOUTS_TWITTER_KEY":     "tw_key",
		"SHAREABOUTS_TWITTER_SECRET":  "tw_secret",
		"SHAREABOUTS_FACEBOOK_KEY":    "fb_key",
		"SHAREABOUTS_FACEBOOK_SECRET": "fb_secret",

		"DEBUG":                   "True",
		"SHAREABOUTS_ADMIN_EMAIL": "admin@example.com",
		"CONSOLE_LOG_LEVEL":       "DEBUG",

		// Deploy has the DEPLOY_ prefix
		"DEPLOY_DATA_DIR":          "/srv/data",
		"DEPLOY_SETTINGS_PATH":     "/srv/app/local_settings.py",
		"DEPLOY_NGINX_PATH":        "/srv/nginx/site.conf",
		"DEPLOY_STATIC_ROOT":       "/srv/static",
		"DEPLOY_CREATEDB_CMD":      "./createdb.sh",
		"DEPLOY_MIGRATE_CMD":       "python manage.py migrate",
		"DEPLOY_COLLECTSTATIC_CMD": "python manage.py collectstatic --noinput",
		"DEPLOY_VERIFY_URL":        "http://localhost/health",
		"DEPLOY_DB_WAIT_TIMEOUT":   "90s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "shareabouts", cfg.Database.User)
	assert.Equal(t, "db_secret", cfg.Database.Password)
	assert.Equal(t, "shareabouts_api", cfg.Database.Name)
	assert.Equal(t, "require", cfg.Database.SSLMode)

	assert.Equal(t, "cache.internal", cfg.Cache.Host)
	assert.Equal(t, 6380, cfg.Cache.Port)
	assert.Equal(t, "cache_secret", cfg.Cache.Password)

	assert.Equal(t, "AKIA_TEST", cfg.Storage.Key)
	assert.Equal(t, "aws_secret", cfg.Storage.Secret)
	assert.Equal(t, "shareabouts-static", cfg.Storage.Bucket)

	assert.Equal(t, "tw_key", cfg.Social.TwitterKey)
	assert.Equal(t, "tw_secret", cfg.Social.TwitterSecret)
	assert.Equal(t, "fb_key", cfg.Social.FacebookKey)
	assert.Equal(t, "fb_secret", cfg.Social.FacebookSecret)

	assert.Equal(t, "True", cfg.Site.Debug)
	assert.Equal(t, "admin@example.com", cfg.Site.AdminEmail)
	assert.Equal(t, "DEBUG", cfg.Site.ConsoleLogLevel)

	assert.Equal(t, "/srv/data", cfg.Deploy.DataDir)
	assert.Equal(t, "/srv/app/local_settings.py", cfg.Deploy.SettingsPath)
	assert.Equal(t, "/srv/nginx/site.conf", cfg.Deploy.NginxPath)
	assert.Equal(t, "/srv/static", cfg.Deploy.StaticRoot)
	assert.Equal(t, "./createdb.sh", cfg.Deploy.CreateDBCmd)
	assert.Equal(t, "python manage.py migrate", cfg.Deploy.MigrateCmd)
	assert.Equal(t, "python manage.py collectstatic --noinput", cfg.Deploy.CollectStaticCmd)
	assert.Equal(t, "http://localhost/health", cfg.Deploy.VerifyURL)
	assert.Equal(t, 90*time.Second, cfg.Deploy.DBWaitTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"DATABASE_HOST":           "db.internal",
		"SHAREABOUTS_ADMIN_EMAIL": "admin@example.com",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Database partially filled
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Zero(t, cfg.Database.Port)
	assert.Empty(t, cfg.Database.User)

	// Site partially filled
	assert.Equal(t, "admin@example.com", cfg.Site.AdminEmail)
	assert.Empty(t, cfg.Site.Debug)

	// Others untouched
	assert.Equal(t, Cache{}, cfg.Cache)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Social{}, cfg.Social)
	assert.Equal(t, Deploy{}, cfg.Deploy)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// All nested fields are non-pointer values, so "empty" state is
	// represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, Database{}, cfg.Database)
	assert.Equal(t, Cache{}, cfg.Cache)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Social{}, cfg.Social)
	assert.Equal(t, Site{}, cfg.Site)
	assert.Equal(t, Deploy{}, cfg.Deploy)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"DATABASE_PORT": "not_a_port",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"DEPLOY_DB_WAIT_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "45s", 45 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"DEPLOY_DB_WAIT_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Deploy.DBWaitTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"DATABASE_HOST",
		"DATABASE_PORT",
		"DATABASE_USER",
		"DATABASE_PASSWORD",
		"DATABASE_NAME",

		"CACHE_HOST",
		"CACHE_PORT",
		"CACHE_PASSWORD",

		"SHAREABOUTS_AWS_KEY",
		"SHAREABOUTS_AWS_SECRET",
		"SHAREABOUTS_AWS_BUCKET",

		"SHAREABOUTS_TWITTER_KEY",
		"SHAREABOUTS_TWITTER_SECRET",
		"SHAREABOUTS_FACEBOOK_KEY",
		"SHAREABOUTS_FACEBOOK_SECRET",

		"DEBUG",
		"SHAREABOUTS_ADMIN_EMAIL",
		"CONSOLE_LOG_LEVEL",

		"DEPLOY_DATA_DIR",
		"DEPLOY_SETTINGS_PATH",
		"DEPLOY_NGINX_PATH",
		"DEPLOY_STATIC_ROOT",
		"DEPLOY_CREATEDB_CMD",
		"DEPLOY_MIGRATE_CMD",
		"DEPLOY_COLLECTSTATIC_CMD",
		"DEPLOY_VERIFY_URL",
		"DEPLOY_DB_WAIT_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
