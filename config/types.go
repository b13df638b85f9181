package config

// Config represents the complete configuration structure
type Config struct {
	OMDB      OMDBConfig      `mapstructure:"omdb"`
	Search    SearchConfig    `mapstructure:"search"`
	Watchlist WatchlistConfig `mapstructure:"watchlist"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// OMDBConfig holds the movie-information API connection details
type OMDBConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// SearchConfig contains search behavior settings
type SearchConfig struct {
	MediaType string `mapstructure:"media_type"`
	Limit     int    `mapstructure:"limit"`
}

// WatchlistConfig holds local persistence settings
type WatchlistConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}
