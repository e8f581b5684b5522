package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		URL string `yaml:"url"` // empty means in-memory cache
	} `yaml:"redis"`
	Trends struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"trends"`
	News struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"news"`
	Ads struct {
		BaseURL string `yaml:"base_url"`
		Token   string `yaml:"token"`
	} `yaml:"ads"`
	ML struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ml"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Polling struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"polling"`
	Proxy string `yaml:"proxy"`
}

// MLTimeout is the bound on one prediction call.
func (c *Config) MLTimeout() time.Duration {
	return time.Duration(c.ML.TimeoutSeconds) * time.Second
}

// PollingInterval is the period of streaming re-evaluation cycles.
func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.Polling.IntervalSeconds) * time.Second
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("TRENDS_BASE_URL"); v != "" {
		cfg.Trends.BaseURL = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("GOOGLE_ADS_TOKEN"); v != "" {
		cfg.Ads.Token = v
	}
	if v := os.Getenv("ML_BASE_URL"); v != "" {
		cfg.ML.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":4000"
	}
	if cfg.Trends.BaseURL == "" {
		cfg.Trends.BaseURL = "https://trends.google.com/trends/api"
	}
	if cfg.News.BaseURL == "" {
		cfg.News.BaseURL = "https://newsapi.org"
	}
	if cfg.Ads.BaseURL == "" {
		cfg.Ads.BaseURL = "https://googleads.googleapis.com"
	}
	if cfg.ML.TimeoutSeconds == 0 {
		cfg.ML.TimeoutSeconds = 30
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/adpulse.db"
	}
	if cfg.Polling.IntervalSeconds == 0 {
		cfg.Polling.IntervalSeconds = 30
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.ML.BaseURL == "" {
		return fmt.Errorf("ml.base_url is required")
	}
	if c.Polling.IntervalSeconds < 1 {
		return fmt.Errorf("polling.interval_seconds must be at least 1")
	}
	return nil
}
