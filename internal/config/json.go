package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Database struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Name     string `json:"name"`
		SSLMode  string `json:"sslmode"`
	} `json:"database,omitempty"`

	Cache struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Password string `json:"password"`
	} `json:"cache,omitempty"`

	Storage struct {
		Key    string `json:"key"`
		Secret string `json:"secret"`
		Bucket string `json:"bucket"`
	} `json:"storage,omitempty"`

	Social struct {
		TwitterKey     string `json:"twitter_key"`
		TwitterSecret  string `json:"twitter_secret"`
		FacebookKey    string `json:"facebook_key"`
		FacebookSecret string `json:"facebook_secret"`
	} `json:"social,omitempty"`

	Site struct {
		Debug           string `json:"debug"`
		AdminEmail      string `json:"admin_email"`
		ConsoleLogLevel string `json:"console_log_level"`
	} `json:"site,omitempty"`

	Deploy struct {
		DataDir          string   `json:"data_dir"`
		SettingsPath     string   `json:"settings_path"`
		NginxPath        string   `json:"nginx_path"`
		StaticRoot       string   `json:"static_root"`
		CreateDBCmd      string   `json:"createdb_cmd"`
		MigrateCmd       string   `json:"migrate_cmd"`
		CollectStaticCmd string   `json:"collectstatic_cmd"`
		VerifyURL        string   `json:"verify_url"`
		DBWaitTimeout    Duration `json:"db_wait_timeout"`
	} `json:"deploy,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Database: Database{
			Host:     jsonCfg.Database.Host,
			Port:     jsonCfg.Database.Port,
			User:     jsonCfg.Database.User,
			Password: jsonCfg.Database.Password,
			Name:     jsonCfg.Database.Name,
			SSLMode:  jsonCfg.Database.SSLMode,
		},
		Cache: Cache{
			Host:     jsonCfg.Cache.Host,
			Port:     jsonCfg.Cache.Port,
			Password: jsonCfg.Cache.Password,
		},
		Storage: Storage{
			Key:    jsonCfg.Storage.Key,
			Secret: jsonCfg.Storage.Secret,
			Bucket: jsonCfg.Storage.Bucket,
		},
		Social: Social{
			TwitterKey:     jsonCfg.Social.TwitterKey,
			TwitterSecret:  jsonCfg.Social.TwitterSecret,
			FacebookKey:    jsonCfg.Social.FacebookKey,
			FacebookSecret: jsonCfg.Social.FacebookSecret,
		},
		Site: Site{
			Debug:           jsonCfg.Site.Debug,
			AdminEmail:      jsonCfg.Site.AdminEmail,
			ConsoleLogLevel: jsonCfg.Site.ConsoleLogLevel,
		},
		Deploy: Deploy{
			DataDir:          jsonCfg.Deploy.DataDir,
			SettingsPath:     jsonCfg.Deploy.SettingsPath,
			NginxPath:        jsonCfg.Deploy.NginxPath,
			StaticRoot:       jsonCfg.Deploy.StaticRoot,
			CreateDBCmd:      jsonCfg.Deploy.CreateDBCmd,
			MigrateCmd:       jsonCfg.Deploy.MigrateCmd,
			CollectStaticCmd: jsonCfg.Deploy.CollectStaticCmd,
			VerifyURL:        jsonCfg.Deploy.VerifyURL,
			DBWaitTimeout:    time.Duration(jsonCfg.Deploy.DBWaitTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
