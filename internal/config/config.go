package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	Share   ShareConfig   `yaml:"share"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type HistoryConfig struct {
	// Path of the sqlite database file. ":memory:" is accepted for tests.
	DBPath string `yaml:"db_path"`
}

type ShareConfig struct {
	// BaseURL is the public URL embedded in share links and copy text.
	BaseURL string `yaml:"base_url"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		History: HistoryConfig{
			DBPath: "calcsuite.db",
		},
		Share: ShareConfig{
			BaseURL: "https://your-calculator-app.com",
		},
	}
}

// Load reads the YAML config at path, if any, then applies environment
// overrides. A missing file is not an error, the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("CALCSUITE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CALCSUITE_DB_PATH"); v != "" {
		cfg.History.DBPath = v
	}
	if v := os.Getenv("CALCSUITE_SHARE_BASE_URL"); v != "" {
		cfg.Share.BaseURL = v
	}

	return cfg, nil
}
