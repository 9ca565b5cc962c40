package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags cover only non-secret values; credentials always come from the
// environment or the JSON config file.
//
// Flags:
//
//	-c/-config json file path with configs
//	-data-dir data directory to provision
//	-settings generated settings file path
//	-nginx generated web-server fragment path
//	-static-root static asset collection directory
//	-createdb-cmd external database creation command
//	-migrate-cmd external migration command
//	-collectstatic-cmd external static collection command
//	-verify-url post-deploy health check URL
//	-db-wait-timeout database readiness budget (e.g., "60s", "2m")
func ParseFlags() *StructuredConfig {
	var jsonConfigPath string
	var dataDir string
	var settingsPath string
	var nginxPath string
	var staticRoot string
	var createDBCmd string
	var migrateCmd string
	var collectStaticCmd string
	var verifyURL string
	var dbWaitTimeout time.Duration

	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&dataDir, "data-dir", "", "Data directory to provision")
	flag.StringVar(&settingsPath, "settings", "", "Generated settings file path")
	flag.StringVar(&nginxPath, "nginx", "", "Generated web-server fragment path")
	flag.StringVar(&staticRoot, "static-root", "", "Static asset collection directory")
	flag.StringVar(&createDBCmd, "createdb-cmd", "", "External database creation command")
	flag.StringVar(&migrateCmd, "migrate-cmd", "", "External migration command")
	flag.StringVar(&collectStaticCmd, "collectstatic-cmd", "", "External static collection command")
	flag.StringVar(&verifyURL, "verify-url", "", "Post-deploy health check URL")
	flag.DurationVar(&dbWaitTimeout, "db-wait-timeout", 0, "Database readiness budget (e.g., 60s, 2m)")

	flag.Parse()

	return &StructuredConfig{
		Deploy: Deploy{
			DataDir:          dataDir,
			SettingsPath:     settingsPath,
			NginxPath:        nginxPath,
			StaticRoot:       staticRoot,
			CreateDBCmd:      createDBCmd,
			MigrateCmd:       migrateCmd,
			CollectStaticCmd: collectStaticCmd,
			VerifyURL:        verifyURL,
			DBWaitTimeout:    dbWaitTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
