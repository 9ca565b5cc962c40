package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. Each is wrapped with the
// names of the offending environment variables, so callers can match with
// [errors.Is] and operators can read the missing variable from the message.
var (
	// ErrInvalidDatabaseConfigs indicates incomplete database settings
	// (for example, missing DATABASE_HOST or an out-of-range port).
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")
	// ErrInvalidCacheConfigs indicates incomplete cache settings
	// (for example, missing CACHE_HOST or CACHE_PASSWORD).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidStorageConfigs indicates incomplete S3 storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSocialConfigs indicates incomplete social-auth settings.
	ErrInvalidSocialConfigs = errors.New("invalid social auth configuration")
	// ErrInvalidSiteConfigs indicates invalid site-wide settings
	// (for example, missing admin email or an unknown log level).
	ErrInvalidSiteConfigs = errors.New("invalid site configuration")
	// ErrInvalidDeployConfigs indicates invalid hook settings
	// (for example, an empty target path or a non-positive wait budget).
	ErrInvalidDeployConfigs = errors.New("invalid deploy configuration")
)
