// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-site-deploy tool. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Database holds the PostgreSQL connection settings for the deployed
	// application.
	Database Database `envPrefix:"DATABASE_"`

	// Cache holds the Redis connection settings backing sessions and the
	// API cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Storage holds the S3 credentials for static assets and attachments.
	Storage Storage `envPrefix:"SHAREABOUTS_AWS_"`

	// Social holds OAuth application keys for third-party sign-in.
	Social Social `envPrefix:"SHAREABOUTS_"`

	// Site holds site-wide values: debug flag, admin contact and the
	// console log level forwarded into the generated settings file.
	Site Site

	// Deploy holds hook-specific values: target paths, the external
	// provisioning commands, and the database wait budget.
	Deploy Deploy `envPrefix:"DEPLOY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Database holds connection settings for the application database.
type Database struct {
	// Host is the database server host.
	// Env: DATABASE_HOST
	Host string `env:"HOST"`

	// Port is the database server TCP port.
	// Env: DATABASE_PORT (default 5432)
	Port int `env:"PORT"`

	// User is the role the application connects as.
	// Env: DATABASE_USER
	User string `env:"USER"`

	// Password is the password for User. Must be kept confidential.
	// Env: DATABASE_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the application database name.
	// Env: DATABASE_NAME
	Name string `env:"NAME"`

	// SSLMode is the libpq sslmode parameter used when connecting
	// (e.g. "disable", "require", "verify-full").
	// Env: DATABASE_SSLMODE (default "disable")
	SSLMode string `env:"SSLMODE"`
}

// Cache holds connection settings for the Redis cache.
type Cache struct {
	// Host is the Redis server host.
	// Env: CACHE_HOST
	Host string `env:"HOST"`

	// Port is the Redis server TCP port.
	// Env: CACHE_PORT (default 6379)
	Port int `env:"PORT"`

	// Password is the Redis AUTH password. Must be kept confidential.
	// Env: CACHE_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage holds S3 credentials for the static/attachment bucket.
type Storage struct {
	// Key is the S3 access key ID.
	// Env: SHAREABOUTS_AWS_KEY
	Key string `env:"KEY"`

	// Secret is the S3 secret access key. Must be kept confidential.
	// Env: SHAREABOUTS_AWS_SECRET
	Secret string `env:"SECRET"`

	// Bucket is the S3 bucket name. Also determines the served static URL.
	// Env: SHAREABOUTS_AWS_BUCKET
	Bucket string `env:"BUCKET"`
}

// Social holds OAuth application keys for social sign-in providers.
type Social struct {
	// TwitterKey is the Twitter OAuth consumer key.
	// Env: SHAREABOUTS_TWITTER_KEY
	TwitterKey string `env:"TWITTER_KEY"`

	// TwitterSecret is the Twitter OAuth consumer secret.
	// Env: SHAREABOUTS_TWITTER_SECRET
	TwitterSecret string `env:"TWITTER_SECRET"`

	// FacebookKey is the Facebook application ID.
	// Env: SHAREABOUTS_FACEBOOK_KEY
	FacebookKey string `env:"FACEBOOK_KEY"`

	// FacebookSecret is the Facebook application secret.
	// Env: SHAREABOUTS_FACEBOOK_SECRET
	FacebookSecret string `env:"FACEBOOK_SECRET"`
}

// Site holds site-wide values consumed by the settings renderer.
type Site struct {
	// Debug is the raw debug toggle. The framework debug mode is enabled
	// only when the value compares case-insensitively equal to "true";
	// any other value (including empty) disables it.
	// Env: DEBUG
	Debug string `env:"DEBUG"`

	// AdminEmail receives error notifications from the application.
	// Env: SHAREABOUTS_ADMIN_EMAIL
	AdminEmail string `env:"SHAREABOUTS_ADMIN_EMAIL"`

	// ConsoleLogLevel is the console handler log level written into the
	// generated settings file (e.g. "INFO", "DEBUG").
	// Env: CONSOLE_LOG_LEVEL (default "INFO")
	ConsoleLogLevel string `env:"CONSOLE_LOG_LEVEL"`
}

// Deploy holds deployment-hook-specific paths, commands and budgets.
type Deploy struct {
	// DataDir is the data directory provisioned before anything else runs.
	// Env: DEPLOY_DATA_DIR (default "./data")
	DataDir string `env:"DATA_DIR"`

	// SettingsPath is where the generated framework settings file is
	// written.
	// Env: DEPLOY_SETTINGS_PATH (default "./src/project/local_settings.py")
	SettingsPath string `env:"SETTINGS_PATH"`

	// NginxPath is where the generated web-server fragment is written.
	// Env: DEPLOY_NGINX_PATH (default "./nginx.site.conf")
	NginxPath string `env:"NGINX_PATH"`

	// StaticRoot is the directory static assets are collected into.
	// Env: DEPLOY_STATIC_ROOT (default "./static")
	StaticRoot string `env:"STATIC_ROOT"`

	// CreateDBCmd is the external database-creation command.
	// Env: DEPLOY_CREATEDB_CMD (default "./scripts/createdb.sh")
	CreateDBCmd string `env:"CREATEDB_CMD"`

	// MigrateCmd is the external migration command.
	// Env: DEPLOY_MIGRATE_CMD
	// (default "python manage.py syncdb --migrate --noinput")
	MigrateCmd string `env:"MIGRATE_CMD"`

	// CollectStaticCmd is the external static collection command.
	// Env: DEPLOY_COLLECTSTATIC_CMD
	// (default "python manage.py collectstatic --noinput")
	CollectStaticCmd string `env:"COLLECTSTATIC_CMD"`

	// VerifyURL is an optional health URL checked after all provisioning
	// steps succeed. Empty disables the check.
	// Env: DEPLOY_VERIFY_URL
	VerifyURL string `env:"VERIFY_URL"`

	// DBWaitTimeout bounds the wait for the database server to accept
	// connections before provisioning starts (e.g. "60s", "2m").
	// Env: DEPLOY_DB_WAIT_TIMEOUT (default 60s)
	DBWaitTimeout time.Duration `env:"DB_WAIT_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (the first
// source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
