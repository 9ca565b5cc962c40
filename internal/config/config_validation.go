// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// consoleLogLevels are the handler levels the framework's logging config
// accepts.
var consoleLogLevels = map[string]struct{}{
	"DEBUG":    {},
	"INFO":     {},
	"WARNING":  {},
	"ERROR":    {},
	"CRITICAL": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before any file is written or any external command runs.
// All problems are reported at once (joined), each naming the environment
// variable that must be set to fix it.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Database.validate(),
		cfg.Cache.validate(),
		cfg.Storage.validate(),
		cfg.Social.validate(),
		cfg.Site.validate(),
		cfg.Deploy.validate(),
	)
}

func (d Database) validate() error {
	var errs []error

	for envName, value := range map[string]string{
		"DATABASE_HOST":     d.Host,
		"DATABASE_USER":     d.User,
		"DATABASE_PASSWORD": d.Password,
		"DATABASE_NAME":     d.Name,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidDatabaseConfigs, envName))
		}
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: DATABASE_PORT %d is out of range", ErrInvalidDatabaseConfigs, d.Port))
	}

	return errors.Join(errs...)
}

func (c Cache) validate() error {
	var errs []error

	for envName, value := range map[string]string{
		"CACHE_HOST":     c.Host,
		"CACHE_PASSWORD": c.Password,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidCacheConfigs, envName))
		}
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: CACHE_PORT %d is out of range", ErrInvalidCacheConfigs, c.Port))
	}

	return errors.Join(errs...)
}

func (s Storage) validate() error {
	var errs []error

	for envName, value := range map[string]string{
		"SHAREABOUTS_AWS_KEY":    s.Key,
		"SHAREABOUTS_AWS_SECRET": s.Secret,
		"SHAREABOUTS_AWS_BUCKET": s.Bucket,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidStorageConfigs, envName))
		}
	}

	return errors.Join(errs...)
}

func (s Social) validate() error {
	var errs []error

	for envName, value := range map[string]string{
		"SHAREABOUTS_TWITTER_KEY":     s.TwitterKey,
		"SHAREABOUTS_TWITTER_SECRET":  s.TwitterSecret,
		"SHAREABOUTS_FACEBOOK_KEY":    s.FacebookKey,
		"SHAREABOUTS_FACEBOOK_SECRET": s.FacebookSecret,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidSocialConfigs, envName))
		}
	}

	return errors.Join(errs...)
}

func (s Site) validate() error {
	var errs []error

	if strings.TrimSpace(s.AdminEmail) == "" {
		errs = append(errs, fmt.Errorf("%w: SHAREABOUTS_ADMIN_EMAIL is required", ErrInvalidSiteConfigs))
	}
	if _, ok := consoleLogLevels[strings.ToUpper(s.ConsoleLogLevel)]; !ok {
		errs = append(errs, fmt.Errorf("%w: CONSOLE_LOG_LEVEL %q is not a known level", ErrInvalidSiteConfigs, s.ConsoleLogLevel))
	}

	return errors.Join(errs...)
}

func (d Deploy) validate() error {
	var errs []error

	for envName, value := range map[string]string{
		"DEPLOY_DATA_DIR":          d.DataDir,
		"DEPLOY_SETTINGS_PATH":     d.SettingsPath,
		"DEPLOY_NGINX_PATH":        d.NginxPath,
		"DEPLOY_STATIC_ROOT":       d.StaticRoot,
		"DEPLOY_CREATEDB_CMD":      d.CreateDBCmd,
		"DEPLOY_MIGRATE_CMD":       d.MigrateCmd,
		"DEPLOY_COLLECTSTATIC_CMD": d.CollectStaticCmd,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidDeployConfigs, envName))
		}
	}
	if d.DBWaitTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: DEPLOY_DB_WAIT_TIMEOUT must be positive", ErrInvalidDeployConfigs))
	}

	return errors.Join(errs...)
}
