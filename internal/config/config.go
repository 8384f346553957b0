package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client settings. Values come from defaults, an optional
// config.yaml under the XDG config dir, and ROADPREP_* environment
// variables, in increasing priority.
type Config struct {
	// APIBaseURL is the backend root, e.g. https://api.roadprep.app.
	APIBaseURL string `mapstructure:"api_base_url"`

	// HTTPTimeout bounds every backend request.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// DBPath overrides the default local database location.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration. A missing config file is fine; a malformed
// one is not.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "https://api.roadprep.app")
	v.SetDefault("http_timeout", 15*time.Second)
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("ROADPREP")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return nil, errors.New("api_base_url must not be empty")
	}
	return &cfg, nil
}

// configDir resolves $XDG_CONFIG_HOME/roadprep, falling back to
// ~/.config/roadprep.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "roadprep"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "roadprep"), nil
}
