package config

import "time"

// Built-in defaults for every optional field. Merged last, so they only
// take effect when no other source set the field.
const (
	defaultDatabasePort     = 5432
	defaultDatabaseSSLMode  = "disable"
	defaultCachePort        = 6379
	defaultConsoleLogLevel  = "INFO"
	defaultDataDir          = "./data"
	defaultSettingsPath     = "./src/project/local_settings.py"
	defaultNginxPath        = "./nginx.site.conf"
	defaultStaticRoot       = "./static"
	defaultCreateDBCmd      = "./scripts/createdb.sh"
	defaultMigrateCmd       = "python manage.py syncdb --migrate --noinput"
	defaultCollectStaticCmd = "python manage.py collectstatic --noinput"
	defaultDBWaitTimeout    = 60 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Database: Database{
			Port:    defaultDatabasePort,
			SSLMode: defaultDatabaseSSLMode,
		},
		Cache: Cache{
			Port: defaultCachePort,
		},
		Site: Site{
			ConsoleLogLevel: defaultConsoleLogLevel,
		},
		Deploy: Deploy{
			DataDir:          defaultDataDir,
			SettingsPath:     defaultSettingsPath,
			NginxPath:        defaultNginxPath,
			StaticRoot:       defaultStaticRoot,
			CreateDBCmd:      defaultCreateDBCmd,
			MigrateCmd:       defaultMigrateCmd,
			CollectStaticCmd: defaultCollectStaticCmd,
			DBWaitTimeout:    defaultDBWaitTimeout,
		},
	}
}
