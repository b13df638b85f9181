package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".flickwatch"))
		}

		// Check /etc
		v.AddConfigPath("/etc/flickwatch/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// The watchlist path defaults next to the config in the home dir
	if cfg.Watchlist.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory for watchlist path: %w", err)
		}
		cfg.Watchlist.Path = filepath.Join(home, ".flickwatch", "watchlist")
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("omdb.url", "https://www.omdbapi.com")

	// Search defaults
	v.SetDefault("search.media_type", "movie")
	v.SetDefault("search.limit", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", "auto")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.OMDB.URL == "" {
		return fmt.Errorf("omdb.url is required")
	}

	if cfg.OMDB.APIKey == "" || cfg.OMDB.APIKey == "your-api-key-here" {
		return fmt.Errorf("omdb.api_key must be set to a valid API key")
	}

	if cfg.Search.Limit < 0 {
		return fmt.Errorf("search.limit must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	// Validate color mode
	validColor := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColor[cfg.Logging.Color] {
		return fmt.Errorf("invalid logging color mode: %s (must be auto, always or never)", cfg.Logging.Color)
	}

	return nil
}
