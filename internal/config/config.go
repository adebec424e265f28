package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	ServerAddr  string `mapstructure:"SERVER_ADDR"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	BGGAPIURL            string        `mapstructure:"BGG_API_URL"`
	BGGDumpURL           string        `mapstructure:"BGG_DUMP_URL"`
	BGGRetryCount        int           `mapstructure:"BGG_RETRY_COUNT"`
	BGGRetryDelay        time.Duration `mapstructure:"BGG_RETRY_DELAY"`
	BGGDumpAttempts      int           `mapstructure:"BGG_DUMP_ATTEMPTS"`
	BGGRequestsPerSecond float64       `mapstructure:"BGG_REQUESTS_PER_SECOND"`
	BGGCacheDir          string        `mapstructure:"BGG_CACHE_DIR"`
	BGGCacheTTL          time.Duration `mapstructure:"BGG_CACHE_TTL"`
	BGGDumpDir           string        `mapstructure:"BGG_DUMP_DIR"`

	ImportLimit int `mapstructure:"IMPORT_LIMIT"`
}

var AppConfig *Config

var defaults = map[string]any{
	"SERVER_ADDR":             ":8080",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"BGG_API_URL":             "https://boardgamegeek.com/xmlapi2/",
	"BGG_DUMP_URL":            "https://raw.githubusercontent.com/beefsack/bgg-ranking-historicals/master/",
	"BGG_RETRY_COUNT":         3,
	"BGG_RETRY_DELAY":         500 * time.Millisecond,
	"BGG_DUMP_ATTEMPTS":       3,
	"BGG_REQUESTS_PER_SECOND": 2.0,
	"BGG_CACHE_DIR":           "",
	"BGG_CACHE_TTL":           24 * time.Hour,
	"BGG_DUMP_DIR":            "",
	"IMPORT_LIMIT":            0,
	"DATABASE_URL":            "",
	"JWT_SECRET":              "",
}

// LoadConfig loads the configuration from a .env file and environment variables
// and stores it in AppConfig.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Defaults double as the key list AutomaticEnv needs for Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.BGGRetryCount < 0 {
		return fmt.Errorf("BGG_RETRY_COUNT must not be negative, got %d", c.BGGRetryCount)
	}
	if c.BGGDumpAttempts < 1 {
		return fmt.Errorf("BGG_DUMP_ATTEMPTS must be at least 1, got %d", c.BGGDumpAttempts)
	}
	return nil
}
