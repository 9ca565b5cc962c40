// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-site-deploy/models"
)

// SiteSettings materializes the validated configuration into the settings
// document consumed by the template renderers. This is the only place the
// raw DEBUG string is interpreted: debug mode is on iff the value equals
// "true" case-insensitively.
func (cfg *StructuredConfig) SiteSettings() models.SiteSettings {
	return models.SiteSettings{
		Database: models.DatabaseSettings{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Name:     cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		},
		Cache: models.CacheSettings{
			Host:     cfg.Cache.Host,
			Port:     cfg.Cache.Port,
			Password: cfg.Cache.Password,
		},
		Storage: models.StorageSettings{
			AccessKey: cfg.Storage.Key,
			SecretKey: cfg.Storage.Secret,
			Bucket:    cfg.Storage.Bucket,
		},
		Social: models.SocialSettings{
			TwitterKey:     cfg.Social.TwitterKey,
			TwitterSecret:  cfg.Social.TwitterSecret,
			FacebookKey:    cfg.Social.FacebookKey,
			FacebookSecret: cfg.Social.FacebookSecret,
		},
		Site: models.SiteOptions{
			Debug:           strings.EqualFold(cfg.Site.Debug, "true"),
			AdminEmail:      cfg.Site.AdminEmail,
			ConsoleLogLevel: strings.ToUpper(cfg.Site.ConsoleLogLevel),
			StaticRoot:      cfg.Deploy.StaticRoot,
		},
	}
}
