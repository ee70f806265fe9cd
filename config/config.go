// Package config loads the process-wide SDK configuration. It is read
// once at startup; nothing here is re-read during the process lifetime.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the SDK configuration loaded from the environment.
type Config struct {
	// APIBaseURL is the root from which all endpoint paths are resolved.
	// It must include the API root segment.
	APIBaseURL string `mapstructure:"cloud_api_base_url"`

	// SyncBackendURL addresses the local application backend handling
	// flush-and-push requests.
	SyncBackendURL string `mapstructure:"cloud_sync_backend_url"`

	UserAgent          string        `mapstructure:"cloud_user_agent"`
	LogLevel           string        `mapstructure:"log_level"`
	HTTPTimeoutSeconds int64         `mapstructure:"cloud_http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, with an optional
// .env file for development.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("cloud_api_base_url", "https://app.gitloom.com/api/")
	v.SetDefault("cloud_sync_backend_url", "http://127.0.0.1:52100")
	v.SetDefault("cloud_user_agent", "gitloom-cloud-go/1.0")
	v.SetDefault("log_level", "info")
	v.SetDefault("cloud_http_timeout_seconds", int64(30))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloud_api_base_url: %w", err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("cloud_api_base_url %q has no host", cfg.APIBaseURL)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid cloud_http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
