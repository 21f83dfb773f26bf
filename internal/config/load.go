package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("data.catalog_file", "catalog.db")
	v.SetDefault("data.review_file", "reviews.json")
	v.SetDefault("data.daily_file", "daily.json")
	v.SetDefault("logging.level", "info")
	v.SetDefault("study.session_size", 20)
	v.SetDefault("study.default_new_cap", 10)

	// An optional config.yaml in the data directory or the working
	// directory; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDataDir())
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RIFTDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// defaultDataDir is ~/.riftdrill, falling back to the working
// directory when the home directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".riftdrill"
	}
	return filepath.Join(home, ".riftdrill")
}

// CatalogPath returns the catalog database path resolved against Dir.
func (d DataConfig) CatalogPath() string { return d.resolve(d.CatalogFile) }

// ReviewPath returns the review store path resolved against Dir.
func (d DataConfig) ReviewPath() string { return d.resolve(d.ReviewFile) }

// DailyPath returns the daily quota store path resolved against Dir.
func (d DataConfig) DailyPath() string { return d.resolve(d.DailyFile) }

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}
