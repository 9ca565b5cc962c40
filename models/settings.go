// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SiteSettings is the fully resolved settings document for one deployment
// run. It is assembled from configuration once, after validation, and is the
// only input to the settings and web-server template renderers.
type SiteSettings struct {
	// Database holds the PostgreSQL/PostGIS connection settings written
	// into the DATABASES block of the generated settings file.
	Database DatabaseSettings `json:"database"`

	// Cache holds the Redis connection settings for the CACHES block and
	// the cache-backed session engine.
	Cache CacheSettings `json:"cache"`

	// Storage holds the S3 credentials for served static files and
	// uploaded attachments.
	Storage StorageSettings `json:"storage"`

	// Social holds the OAuth application keys for third-party sign-in.
	Social SocialSettings `json:"social"`

	// Site holds site-wide values: debug flag, admin contact, console log
	// level and the static file root served by the web server.
	Site SiteOptions `json:"site"`
}

// DatabaseSettings describes the application database connection.
type DatabaseSettings struct {
	// Host is the database server host name or IP address.
	Host string `json:"host"`

	// Port is the database server TCP port.
	Port int `json:"port"`

	// User is the role the application connects as.
	User string `json:"user"`

	// Password is the password for User. Never logged.
	Password string `json:"-"`

	// Name is the application database name.
	Name string `json:"name"`

	// SSLMode is the libpq sslmode parameter of the built connection
	// strings (e.g. "disable", "require"). Empty means "disable".
	SSLMode string `json:"sslmode"`
}

// MaintenanceDSN returns a connection string against the server's
// maintenance database ("postgres"). Used for readiness checks and catalog
// queries before the application database is guaranteed to exist.
func (d DatabaseSettings) MaintenanceDSN() string {
	return d.dsn("postgres")
}

// DSN returns a connection string against the application database.
func (d DatabaseSettings) DSN() string {
	return d.dsn(d.Name)
}

// CacheSettings describes the Redis cache backing sessions and the API
// cache.
type CacheSettings struct {
	// Host is the Redis server host name or IP address.
	Host string `json:"host"`

	// Port is the Redis server TCP port.
	Port int `json:"port"`

	// Password is the Redis AUTH password. Never logged.
	Password string `json:"-"`
}

// StorageSettings describes the S3 bucket used for static assets and
// attachments.
type StorageSettings struct {
	// AccessKey is the S3 access key ID.
	AccessKey string `json:"access_key"`

	// SecretKey is the S3 secret access key. Never logged.
	SecretKey string `json:"-"`

	// Bucket is the S3 bucket name. Also determines the served STATIC_URL.
	Bucket string `json:"bucket"`
}

// SocialSettings holds OAuth application credentials for social sign-in
// providers.
type SocialSettings struct {
	// TwitterKey is the Twitter OAuth consumer key.
	TwitterKey string `json:"twitter_key"`

	// TwitterSecret is the Twitter OAuth consumer secret. Never logged.
	TwitterSecret string `json:"-"`

	// FacebookKey is the Facebook application ID.
	FacebookKey string `json:"facebook_key"`

	// FacebookSecret is the Facebook application secret. Never logged.
	FacebookSecret string `json:"-"`
}

// SiteOptions holds site-wide toggles and contact information.
type SiteOptions struct {
	// Debug enables framework debug mode in the generated settings file.
	Debug bool `json:"debug"`

	// AdminEmail receives error notifications from the application.
	AdminEmail string `json:"admin_email"`

	// ConsoleLogLevel is the log level for the application's console
	// handler (e.g. "INFO", "DEBUG").
	ConsoleLogLevel string `json:"console_log_level"`

	// StaticRoot is the directory static assets are collected into and
	// served from by the web server.
	StaticRoot string `json:"static_root"`
}
